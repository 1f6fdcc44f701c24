package core

import (
	"context"
	"mylibrary/internal/openlibrary"
	"mylibrary/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user *repository.User) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByToken(ctx context.Context, key string) (repository.User, error)
	GetToken(ctx context.Context, userID string) (repository.AuthToken, error)
	CreateToken(ctx context.Context, token *repository.AuthToken) error
	SaveBook(ctx context.Context, book *repository.Book) error
	GetBook(ctx context.Context, id uint) (repository.Book, error)
	ListBooks(ctx context.Context, userID string, offset, limit int) ([]repository.Book, int64, error)
	UpdateBook(ctx context.Context, book *repository.Book) error
	DeleteBook(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name BookLookup . BookLookup
type BookLookup interface {
	Lookup(ctx context.Context, isbn string) (*openlibrary.BookData, error)
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate() (string, error)
}
