package handler

import (
	"context"
	"net/http"

	"mylibrary/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BookService . BookService
type BookService interface {
	RegisterUser(ctx context.Context, msg core.RegisterMessage) (core.TokenResult, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (core.TokenResult, error)
	ListBooks(ctx context.Context, userID string, page core.Page) (core.BookPage, error)
	CreateBook(ctx context.Context, userID, isbn string) (core.BookRecord, error)
	GetBook(ctx context.Context, userID string, id uint) (core.BookRecord, error)
	UpdateBook(ctx context.Context, userID string, id uint, msg core.BookUpdate) (core.BookRecord, error)
	DeleteBook(ctx context.Context, userID string, id uint) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
