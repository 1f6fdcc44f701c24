package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"mylibrary/internal/core"
	"mylibrary/internal/http/handler"
	"mylibrary/internal/http/handler/fake"
	"mylibrary/internal/http/handler/middleware"
)

var _ = Describe("BookHandler", func() {
	const userID = "11111111-2222-3333-4444-555555555555"

	var (
		service     *fake.BookService
		validator   *fake.RequestValidator
		bookHandler *handler.BookHandler
		router      http.Handler
		recorder    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		service = new(fake.BookService)
		validator = new(fake.RequestValidator)
		validator.DecodeAndValidateJSONPayloadStub = func(r *http.Request, object any) error {
			return json.NewDecoder(r.Body).Decode(object)
		}

		bookHandler = handler.NewBookHandler(zap.NewNop().Sugar(), validator, service)
		router = bookHandler.Routes(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(middleware.WithUserID(r.Context(), userID)))
			})
		})
		recorder = httptest.NewRecorder()
	})

	tokenResult := core.TokenResult{
		Token:  "746f6b656e",
		UserID: userID,
		Email:  "reader@example.com",
	}

	bookRecord := core.BookRecord{
		ID:              42,
		UserID:          userID,
		Title:           "Test Book",
		Author:          "Author X",
		ISBN:            "1234567890",
		PublicationDate: time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC),
	}

	Describe("HandleRegister", func() {
		When("registration succeeds", func() {
			It("returns the issued token with status 201", func() {
				service.RegisterUserReturns(tokenResult, nil)
				body := `{"username":"testuser","password":"testpassword","email":"reader@example.com"}`
				request := httptest.NewRequest(http.MethodPost, "/register/", strings.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))
				var response handler.TokenResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Token).To(Equal(tokenResult.Token))
				Expect(response.UserID).To(Equal(userID))
				Expect(response.Email).To(Equal(tokenResult.Email))

				_, msg := service.RegisterUserArgsForCall(0)
				Expect(msg.Username).To(Equal("testuser"))
				Expect(msg.Password).To(Equal("testpassword"))
			})
		})

		When("the payload is invalid", func() {
			It("returns status 400", func() {
				validator.DecodeAndValidateJSONPayloadStub = nil
				validator.DecodeAndValidateJSONPayloadReturns(errors.New("username: cannot be blank"))
				request := httptest.NewRequest(http.MethodPost, "/register/", strings.NewReader(`{}`))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(service.RegisterUserCallCount()).To(Equal(0))
			})
		})

		When("the username is already taken", func() {
			It("returns status 400 with the error message", func() {
				service.RegisterUserReturns(core.TokenResult{}, core.ErrUsernameTaken)
				body := `{"username":"testuser","password":"testpassword"}`
				request := httptest.NewRequest(http.MethodPost, "/register/", strings.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				var response handler.ErrorResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Error).To(Equal(core.ErrUsernameTaken.Error()))
			})
		})

		When("the service fails unexpectedly", func() {
			It("returns status 500 with the error message", func() {
				service.RegisterUserReturns(core.TokenResult{}, errors.New("db gone"))
				body := `{"username":"testuser","password":"testpassword"}`
				request := httptest.NewRequest(http.MethodPost, "/register/", strings.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
				var response handler.ErrorResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Error).To(Equal("db gone"))
			})
		})
	})

	Describe("HandleObtainToken", func() {
		When("the credentials are valid", func() {
			It("returns the token with status 200", func() {
				service.AuthenticateReturns(tokenResult, nil)
				body := `{"username":"testuser","password":"testpassword"}`
				request := httptest.NewRequest(http.MethodPost, "/token/", strings.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))
				var response handler.TokenResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Token).To(Equal(tokenResult.Token))
			})
		})

		When("the password does not match", func() {
			It("returns status 401", func() {
				service.AuthenticateReturns(core.TokenResult{}, core.ErrIncorrectPassword)
				body := `{"username":"testuser","password":"wrong"}`
				request := httptest.NewRequest(http.MethodPost, "/token/", strings.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the user does not exist", func() {
			It("returns status 401", func() {
				service.AuthenticateReturns(core.TokenResult{}, core.ErrUserNotFound)
				body := `{"username":"ghost","password":"testpassword"}`
				request := httptest.NewRequest(http.MethodPost, "/token/", strings.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleListBooks", func() {
		When("the user has books", func() {
			It("returns a paginated envelope", func() {
				service.ListBooksReturns(core.BookPage{
					Count:   25,
					Number:  2,
					Size:    10,
					HasNext: true,
					HasPrev: true,
					Books:   []core.BookRecord{bookRecord},
				}, nil)
				request := httptest.NewRequest(http.MethodGet, "/books/?page=2&page_size=10", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))
				var response handler.PageResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Count).To(Equal(int64(25)))
				Expect(response.Next).NotTo(BeNil())
				Expect(*response.Next).To(ContainSubstring("page=3"))
				Expect(response.Previous).NotTo(BeNil())
				Expect(*response.Previous).To(ContainSubstring("page=1"))
				Expect(response.Results).To(HaveLen(1))
				Expect(response.Results[0].Title).To(Equal("Test Book"))
				Expect(response.Results[0].PublicationDate).To(Equal("2024-05-17"))

				_, gotUser, gotPage := service.ListBooksArgsForCall(0)
				Expect(gotUser).To(Equal(userID))
				Expect(gotPage).To(Equal(core.Page{Number: 2, Size: 10}))
			})
		})

		When("the collection fits on one page", func() {
			It("omits next and previous links", func() {
				service.ListBooksReturns(core.BookPage{
					Count:  1,
					Number: 1,
					Size:   10,
					Books:  []core.BookRecord{bookRecord},
				}, nil)
				request := httptest.NewRequest(http.MethodGet, "/books/", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))
				var response handler.PageResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Next).To(BeNil())
				Expect(response.Previous).To(BeNil())
			})
		})

		When("the service fails", func() {
			It("returns status 500 with the error message", func() {
				service.ListBooksReturns(core.BookPage{}, errors.New("boom: storage exploded"))
				request := httptest.NewRequest(http.MethodGet, "/books/", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
				var response handler.ErrorResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Error).To(Equal("boom: storage exploded"))
			})
		})

		When("no user id is present in the context", func() {
			It("returns status 401", func() {
				request := httptest.NewRequest(http.MethodGet, "/books/", nil)

				bookHandler.HandleListBooks(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
				Expect(service.ListBooksCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleCreateBook", func() {
		When("the ISBN resolves to book data", func() {
			It("returns the stored book with status 201 and a Location header", func() {
				service.CreateBookReturns(bookRecord, nil)
				body := `{"isbn":"1234567890"}`
				request := httptest.NewRequest(http.MethodPost, "/books/", strings.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))
				Expect(recorder.Header().Get("Location")).To(Equal("/api/books/42/"))
				var response handler.BookResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.ID).To(Equal(uint(42)))
				Expect(response.User).To(Equal(userID))
				Expect(response.Author).To(Equal("Author X"))

				_, gotUser, gotISBN := service.CreateBookArgsForCall(0)
				Expect(gotUser).To(Equal(userID))
				Expect(gotISBN).To(Equal("1234567890"))
			})
		})

		When("the ISBN payload is missing", func() {
			It("returns status 400", func() {
				validator.DecodeAndValidateJSONPayloadStub = nil
				validator.DecodeAndValidateJSONPayloadReturns(errors.New("ISBN is required"))
				request := httptest.NewRequest(http.MethodPost, "/books/", strings.NewReader(`{}`))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(service.CreateBookCallCount()).To(Equal(0))
			})
		})

		When("no book data exists for the ISBN", func() {
			It("returns status 404", func() {
				service.CreateBookReturns(core.BookRecord{}, core.ErrBookDataNotFound)
				body := `{"isbn":"0000000000"}`
				request := httptest.NewRequest(http.MethodPost, "/books/", strings.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleGetBook", func() {
		When("the book belongs to the user", func() {
			It("returns the book with status 200", func() {
				service.GetBookReturns(bookRecord, nil)
				request := httptest.NewRequest(http.MethodGet, "/books/42/", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))
				var response handler.BookResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.ID).To(Equal(uint(42)))

				_, gotUser, gotID := service.GetBookArgsForCall(0)
				Expect(gotUser).To(Equal(userID))
				Expect(gotID).To(Equal(uint(42)))
			})
		})

		When("the book does not exist", func() {
			It("returns status 404", func() {
				service.GetBookReturns(core.BookRecord{}, core.ErrBookNotFound)
				request := httptest.NewRequest(http.MethodGet, "/books/42/", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the id is not numeric", func() {
			It("returns status 404 without hitting the service", func() {
				request := httptest.NewRequest(http.MethodGet, "/books/abc/", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
				Expect(service.GetBookCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleUpdateBook", func() {
		When("the update succeeds", func() {
			It("returns the updated book with status 200", func() {
				updated := bookRecord
				updated.Title = "Updated Book"
				service.UpdateBookReturns(updated, nil)
				body := `{"title":"Updated Book","author":"Author X","isbn":"1234567890"}`
				request := httptest.NewRequest(http.MethodPut, "/books/42/", strings.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))
				var response handler.BookResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Title).To(Equal("Updated Book"))

				_, gotUser, gotID, gotMsg := service.UpdateBookArgsForCall(0)
				Expect(gotUser).To(Equal(userID))
				Expect(gotID).To(Equal(uint(42)))
				Expect(gotMsg.Title).To(Equal("Updated Book"))
			})
		})

		When("the book belongs to another user", func() {
			It("returns status 404", func() {
				service.UpdateBookReturns(core.BookRecord{}, core.ErrBookNotFound)
				body := `{"title":"Updated Book"}`
				request := httptest.NewRequest(http.MethodPut, "/books/42/", strings.NewReader(body))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the payload is invalid", func() {
			It("returns status 400", func() {
				validator.DecodeAndValidateJSONPayloadStub = nil
				validator.DecodeAndValidateJSONPayloadReturns(errors.New("title: cannot be blank"))
				request := httptest.NewRequest(http.MethodPut, "/books/42/", strings.NewReader(`{}`))

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(service.UpdateBookCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleDeleteBook", func() {
		When("the book belongs to the user", func() {
			It("returns status 204 with an empty body", func() {
				service.DeleteBookReturns(nil)
				request := httptest.NewRequest(http.MethodDelete, "/books/42/", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNoContent))
				Expect(recorder.Body.Len()).To(BeZero())

				_, gotUser, gotID := service.DeleteBookArgsForCall(0)
				Expect(gotUser).To(Equal(userID))
				Expect(gotID).To(Equal(uint(42)))
			})
		})

		When("the book does not exist", func() {
			It("returns status 404", func() {
				service.DeleteBookReturns(core.ErrBookNotFound)
				request := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/books/%d/", 7), nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the service fails unexpectedly", func() {
			It("returns status 500 with the error message", func() {
				service.DeleteBookReturns(errors.New("delete book: no connection"))
				request := httptest.NewRequest(http.MethodDelete, "/books/42/", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
				var response handler.ErrorResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Error).To(Equal("delete book: no connection"))
			})
		})
	})
})
