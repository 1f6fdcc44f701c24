package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"mylibrary/internal/core"
	"mylibrary/internal/http/handler/middleware"
	"mylibrary/internal/http/payload"
)

var (
	Register    string = "register"
	ObtainToken string = "obtain_token"
	ListBooks   string = "list_books"
	CreateBook  string = "create_book"
	GetBook     string = "get_book"
	UpdateBook  string = "update_book"
	DeleteBook  string = "delete_book"
)

// BookHandler serves the catalog API endpoints.
type BookHandler struct {
	logs      *zap.SugaredLogger
	validator RequestValidator
	library   BookService
}

func NewBookHandler(logger *zap.SugaredLogger, validator RequestValidator, library BookService) *BookHandler {
	return &BookHandler{
		logs:      logger,
		validator: validator,
		library:   library,
	}
}

// Routes mounts every catalog endpoint. Book routes sit behind the given
// authentication middleware, registration and token issuance stay public.
func (h *BookHandler) Routes(auth func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()
	router.Post("/register/", h.HandleRegister)
	router.Post("/token/", h.HandleObtainToken)
	router.Group(func(r chi.Router) {
		r.Use(auth)
		r.Get("/books/", h.HandleListBooks)
		r.Post("/books/", h.HandleCreateBook)
		r.Get("/books/{id}/", h.HandleGetBook)
		r.Put("/books/{id}/", h.HandleUpdateBook)
		r.Delete("/books/{id}/", h.HandleDeleteBook)
	})
	return router
}

func (h *BookHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestID := chimw.GetReqID(r.Context())

	var request payload.RegisterRequest
	if err := h.validator.DecodeAndValidateJSONPayload(r, &request); err != nil {
		h.logs.Errorw("invalid register payload",
			"handler", Register,
			"request_id", requestID,
			"error", err)
		h.respondError(w, err.Error(), http.StatusBadRequest, Register, requestID)
		return
	}

	result, err := h.library.RegisterUser(r.Context(), request.ToMessage())
	if err != nil {
		h.logs.Errorw("register user",
			"handler", Register,
			"request_id", requestID,
			"error", err)
		switch {
		case errors.Is(err, core.ErrUsernameTaken), errors.Is(err, core.ErrWeakPassword):
			h.respondError(w, err.Error(), http.StatusBadRequest, Register, requestID)
		default:
			h.respondError(w, err.Error(), http.StatusInternalServerError, Register, requestID)
		}
		return
	}

	h.respond(w, tokenToResponse(result), http.StatusCreated, Register, requestID)
}

func (h *BookHandler) HandleObtainToken(w http.ResponseWriter, r *http.Request) {
	requestID := chimw.GetReqID(r.Context())

	var request payload.AuthRequest
	if err := h.validator.DecodeAndValidateJSONPayload(r, &request); err != nil {
		h.logs.Errorw("invalid credentials payload",
			"handler", ObtainToken,
			"request_id", requestID,
			"error", err)
		h.respondError(w, err.Error(), http.StatusBadRequest, ObtainToken, requestID)
		return
	}

	result, err := h.library.Authenticate(r.Context(), request.ToMessage())
	if err != nil {
		h.logs.Errorw("authenticate user",
			"handler", ObtainToken,
			"request_id", requestID,
			"error", err)
		switch {
		case errors.Is(err, core.ErrUserNotFound), errors.Is(err, core.ErrIncorrectPassword):
			h.respondError(w, "unable to log in with provided credentials", http.StatusUnauthorized, ObtainToken, requestID)
		default:
			h.respondError(w, err.Error(), http.StatusInternalServerError, ObtainToken, requestID)
		}
		return
	}

	h.respond(w, tokenToResponse(result), http.StatusOK, ObtainToken, requestID)
}

func (h *BookHandler) HandleListBooks(w http.ResponseWriter, r *http.Request) {
	requestID := chimw.GetReqID(r.Context())
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.respondError(w, "authentication required", http.StatusUnauthorized, ListBooks, requestID)
		return
	}

	page := core.Page{
		Number: queryInt(r, "page"),
		Size:   queryInt(r, "page_size"),
	}

	result, err := h.library.ListBooks(r.Context(), userID, page)
	if err != nil {
		h.logs.Errorw("list books",
			"handler", ListBooks,
			"request_id", requestID,
			"error", err)
		h.respondError(w, err.Error(), http.StatusInternalServerError, ListBooks, requestID)
		return
	}

	response := PageResponse{
		Count:   result.Count,
		Results: booksToResponses(result.Books),
	}
	if result.HasNext {
		response.Next = pageURL(r, result.Number+1, result.Size)
	}
	if result.HasPrev {
		response.Previous = pageURL(r, result.Number-1, result.Size)
	}

	h.respond(w, response, http.StatusOK, ListBooks, requestID)
}

func (h *BookHandler) HandleCreateBook(w http.ResponseWriter, r *http.Request) {
	requestID := chimw.GetReqID(r.Context())
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.respondError(w, "authentication required", http.StatusUnauthorized, CreateBook, requestID)
		return
	}

	var request payload.CreateBookRequest
	if err := h.validator.DecodeAndValidateJSONPayload(r, &request); err != nil {
		h.logs.Errorw("invalid book payload",
			"handler", CreateBook,
			"request_id", requestID,
			"error", err)
		h.respondError(w, err.Error(), http.StatusBadRequest, CreateBook, requestID)
		return
	}

	record, err := h.library.CreateBook(r.Context(), userID, request.ISBN)
	if err != nil {
		h.logs.Errorw("create book",
			"handler", CreateBook,
			"request_id", requestID,
			"error", err)
		if errors.Is(err, core.ErrBookDataNotFound) {
			h.respondError(w, err.Error(), http.StatusNotFound, CreateBook, requestID)
			return
		}
		h.respondError(w, err.Error(), http.StatusInternalServerError, CreateBook, requestID)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/books/%d/", record.ID))
	h.respond(w, bookToResponse(record), http.StatusCreated, CreateBook, requestID)
}

func (h *BookHandler) HandleGetBook(w http.ResponseWriter, r *http.Request) {
	requestID := chimw.GetReqID(r.Context())
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.respondError(w, "authentication required", http.StatusUnauthorized, GetBook, requestID)
		return
	}

	bookID, err := bookIDParam(r)
	if err != nil {
		h.respondError(w, core.ErrBookNotFound.Error(), http.StatusNotFound, GetBook, requestID)
		return
	}

	record, err := h.library.GetBook(r.Context(), userID, bookID)
	if err != nil {
		if errors.Is(err, core.ErrBookNotFound) {
			h.respondError(w, err.Error(), http.StatusNotFound, GetBook, requestID)
			return
		}
		h.logs.Errorw("get book",
			"handler", GetBook,
			"request_id", requestID,
			"error", err)
		h.respondError(w, err.Error(), http.StatusInternalServerError, GetBook, requestID)
		return
	}

	h.respond(w, bookToResponse(record), http.StatusOK, GetBook, requestID)
}

func (h *BookHandler) HandleUpdateBook(w http.ResponseWriter, r *http.Request) {
	requestID := chimw.GetReqID(r.Context())
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.respondError(w, "authentication required", http.StatusUnauthorized, UpdateBook, requestID)
		return
	}

	bookID, err := bookIDParam(r)
	if err != nil {
		h.respondError(w, core.ErrBookNotFound.Error(), http.StatusNotFound, UpdateBook, requestID)
		return
	}

	var request payload.UpdateBookRequest
	if err := h.validator.DecodeAndValidateJSONPayload(r, &request); err != nil {
		h.logs.Errorw("invalid book payload",
			"handler", UpdateBook,
			"request_id", requestID,
			"error", err)
		h.respondError(w, err.Error(), http.StatusBadRequest, UpdateBook, requestID)
		return
	}

	record, err := h.library.UpdateBook(r.Context(), userID, bookID, request.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrBookNotFound) {
			h.respondError(w, err.Error(), http.StatusNotFound, UpdateBook, requestID)
			return
		}
		h.logs.Errorw("update book",
			"handler", UpdateBook,
			"request_id", requestID,
			"error", err)
		h.respondError(w, err.Error(), http.StatusInternalServerError, UpdateBook, requestID)
		return
	}

	h.respond(w, bookToResponse(record), http.StatusOK, UpdateBook, requestID)
}

func (h *BookHandler) HandleDeleteBook(w http.ResponseWriter, r *http.Request) {
	requestID := chimw.GetReqID(r.Context())
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.respondError(w, "authentication required", http.StatusUnauthorized, DeleteBook, requestID)
		return
	}

	bookID, err := bookIDParam(r)
	if err != nil {
		h.respondError(w, core.ErrBookNotFound.Error(), http.StatusNotFound, DeleteBook, requestID)
		return
	}

	if err := h.library.DeleteBook(r.Context(), userID, bookID); err != nil {
		if errors.Is(err, core.ErrBookNotFound) {
			h.respondError(w, err.Error(), http.StatusNotFound, DeleteBook, requestID)
			return
		}
		h.logs.Errorw("delete book",
			"handler", DeleteBook,
			"request_id", requestID,
			"error", err)
		h.respondError(w, err.Error(), http.StatusInternalServerError, DeleteBook, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BookHandler) respond(w http.ResponseWriter, response any, statusCode int, handlerName, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logs.Errorw("write response",
			"handler", handlerName,
			"request_id", requestID,
			"error", err)
	}
}

func (h *BookHandler) respondError(w http.ResponseWriter, message string, statusCode int, handlerName, requestID string) {
	h.respond(w, ErrorResponse{Error: message}, statusCode, handlerName, requestID)
}

func tokenToResponse(result core.TokenResult) TokenResponse {
	return TokenResponse{
		Token:  result.Token,
		UserID: result.UserID,
		Email:  result.Email,
	}
}

func bookIDParam(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse book id: %w", err)
	}
	return uint(id), nil
}

// queryInt returns 0 for missing or malformed values so page defaults apply.
func queryInt(r *http.Request, key string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return value
}

func pageURL(r *http.Request, number, size int) *string {
	query := r.URL.Query()
	query.Set("page", strconv.Itoa(number))
	query.Set("page_size", strconv.Itoa(size))
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s%s?%s", scheme, r.Host, r.URL.Path, query.Encode())
	return &url
}
