package repository

import (
	"context"
	"errors"
	"fmt"
	"mylibrary/internal/db"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrTokenNotFound error = errors.New("token not found")
var ErrBookNotFound error = errors.New("book not found")

// booksOrder keeps listings in insertion order.
const booksOrder = "id asc"

type LibraryRepository struct {
	db Storage
}

func NewLibraryRepository(db Storage) *LibraryRepository {
	return &LibraryRepository{
		db: db,
	}
}

func (r *LibraryRepository) MigrateAndSeed(ctx context.Context) error {

	err := r.db.MigrateTable(&User{}, &AuthToken{}, &Book{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("librarian"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     "demo",
			PasswordHash: string(hash),
			Email:        "demo@mylibrary.local",
			Bio:          "Seeded demo account",
		},
	}
	err = r.db.SeedTable(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *LibraryRepository) CreateUser(ctx context.Context, user *User) error {
	if err := r.db.CreateRecord(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *LibraryRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

// GetUserByToken resolves an opaque token key to its owning user.
func (r *LibraryRepository) GetUserByToken(ctx context.Context, key string) (User, error) {
	var token AuthToken

	err := r.db.GetOneBy(ctx, "key", key, &token)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrTokenNotFound
		}
		return User{}, fmt.Errorf("get token by key: %w", err)
	}

	var user User
	err = r.db.GetOneBy(ctx, "id", token.UserID, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrTokenNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (r *LibraryRepository) GetToken(ctx context.Context, userID string) (AuthToken, error) {
	var token AuthToken

	err := r.db.GetOneBy(ctx, "user_id", userID, &token)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return AuthToken{}, ErrTokenNotFound
		}
		return AuthToken{}, fmt.Errorf("get token by user id: %w", err)
	}

	return token, nil
}

func (r *LibraryRepository) CreateToken(ctx context.Context, token *AuthToken) error {
	if err := r.db.CreateRecord(ctx, token); err != nil {
		return fmt.Errorf("create token: %w", err)
	}

	return nil
}

func (r *LibraryRepository) SaveBook(ctx context.Context, book *Book) error {
	if err := r.db.CreateRecord(ctx, book); err != nil {
		return fmt.Errorf("save book: %w", err)
	}

	return nil
}

func (r *LibraryRepository) GetBook(ctx context.Context, id uint) (Book, error) {
	var book Book

	err := r.db.GetOneBy(ctx, "id", id, &book)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Book{}, ErrBookNotFound
		}
		return Book{}, fmt.Errorf("get book by id: %w", err)
	}

	return book, nil
}

// ListBooks returns one page of the user's books in insertion order together
// with the user's total book count.
func (r *LibraryRepository) ListBooks(ctx context.Context, userID string, offset, limit int) ([]Book, int64, error) {
	count, err := r.db.CountBy(ctx, &Book{}, "user_id", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	books := []Book{}
	err = r.db.GetPage(ctx, "user_id", userID, booksOrder, offset, limit, &books)
	if err != nil {
		return nil, 0, fmt.Errorf("get books page: %w", err)
	}

	return books, count, nil
}

func (r *LibraryRepository) UpdateBook(ctx context.Context, book *Book) error {
	if err := r.db.UpdateRecord(ctx, book); err != nil {
		return fmt.Errorf("update book: %w", err)
	}

	return nil
}

func (r *LibraryRepository) DeleteBook(ctx context.Context, id uint) error {
	affected, err := r.db.DeleteRecord(ctx, &Book{ID: id})
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}
