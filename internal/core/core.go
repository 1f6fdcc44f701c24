package core

import (
	"context"
	"errors"
	"fmt"
	"mylibrary/internal/repository"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUsernameTaken error = errors.New("username is already taken")
var ErrWeakPassword error = errors.New("password must be at least 8 characters")
var ErrTokenNotFound error = errors.New("invalid token")
var ErrBookNotFound error = errors.New("book not found")
var ErrBookDataNotFound error = errors.New("book details not found")

const minPasswordLength = 8

// Library implements the catalog operations: accounts, tokens and per-user
// book collections backed by the Open Library lookup.
type Library struct {
	logs   *zap.SugaredLogger
	repo   Repository
	tokens TokenIssuer
	lookup BookLookup
}

func NewLibrary(logger *zap.SugaredLogger, repo Repository, tokens TokenIssuer, lookup BookLookup) *Library {
	return &Library{
		logs:   logger,
		repo:   repo,
		tokens: tokens,
		lookup: lookup,
	}
}

// RegisterUser creates an account and issues its auth token right away.
func (l *Library) RegisterUser(ctx context.Context, msg RegisterMessage) (TokenResult, error) {
	if len(msg.Password) < minPasswordLength {
		return TokenResult{}, ErrWeakPassword
	}

	_, err := l.repo.GetUserByUsername(ctx, msg.Username)
	if err == nil {
		return TokenResult{}, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return TokenResult{}, fmt.Errorf("get user from db: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return TokenResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		ID:           uuid.NewString(),
		Username:     msg.Username,
		PasswordHash: string(hash),
		Email:        msg.Email,
		Bio:          msg.Bio,
	}
	if err := l.repo.CreateUser(ctx, &user); err != nil {
		return TokenResult{}, fmt.Errorf("create user: %w", err)
	}

	key, err := l.issueToken(ctx, user.ID)
	if err != nil {
		return TokenResult{}, fmt.Errorf("issue token: %w", err)
	}

	l.logs.Infow("user registered", "userId", user.ID, "username", user.Username)

	return TokenResult{Token: key, UserID: user.ID, Email: user.Email}, nil
}

// Authenticate checks the credentials and returns the user's token, creating
// one the first time it is requested.
func (l *Library) Authenticate(ctx context.Context, msg AuthMessage) (TokenResult, error) {
	user, err := l.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return TokenResult{}, ErrUserNotFound
		}
		return TokenResult{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return TokenResult{}, ErrIncorrectPassword
	}

	key, err := l.issueToken(ctx, user.ID)
	if err != nil {
		return TokenResult{}, fmt.Errorf("issue token: %w", err)
	}

	return TokenResult{Token: key, UserID: user.ID, Email: user.Email}, nil
}

// ResolveToken maps a bearer token key to the owning user.
func (l *Library) ResolveToken(ctx context.Context, key string) (UserRecord, error) {
	user, err := l.repo.GetUserByToken(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return UserRecord{}, ErrTokenNotFound
		}
		return UserRecord{}, fmt.Errorf("get user by token: %w", err)
	}

	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Bio:      user.Bio,
	}, nil
}

// ListBooks returns one page of the caller's books in insertion order.
func (l *Library) ListBooks(ctx context.Context, userID string, page Page) (BookPage, error) {
	page = page.normalize()
	offset := (page.Number - 1) * page.Size

	books, count, err := l.repo.ListBooks(ctx, userID, offset, page.Size)
	if err != nil {
		return BookPage{}, fmt.Errorf("list books: %w", err)
	}

	return BookPage{
		Count:   count,
		Number:  page.Number,
		Size:    page.Size,
		HasNext: int64(page.Number*page.Size) < count,
		HasPrev: page.Number > 1,
		Books:   l.repoBooksToRecords(books),
	}, nil
}

// CreateBook resolves the ISBN against Open Library and persists the result
// as a book owned by the caller. A lookup miss surfaces as
// ErrBookDataNotFound; only the looked-up title and author are stored.
func (l *Library) CreateBook(ctx context.Context, userID, isbn string) (BookRecord, error) {
	data, err := l.lookup.Lookup(ctx, isbn)
	if err != nil {
		return BookRecord{}, fmt.Errorf("lookup isbn: %w", err)
	}
	if data == nil {
		return BookRecord{}, ErrBookDataNotFound
	}

	book := repository.Book{
		UserID:          userID,
		Title:           data.Title,
		Author:          data.Author,
		ISBN:            isbn,
		PublicationDate: time.Now(),
	}
	if err := l.repo.SaveBook(ctx, &book); err != nil {
		return BookRecord{}, fmt.Errorf("save book: %w", err)
	}

	l.logs.Infow("book created", "userId", userID, "bookId", book.ID, "isbn", isbn)

	return l.repoBookToRecord(book), nil
}

// GetBook returns the caller's book. Books owned by other users read as
// absent so ids cannot be probed across accounts.
func (l *Library) GetBook(ctx context.Context, userID string, id uint) (BookRecord, error) {
	book, err := l.ownedBook(ctx, userID, id)
	if err != nil {
		return BookRecord{}, err
	}

	return l.repoBookToRecord(book), nil
}

// UpdateBook fully replaces the editable fields of the caller's book. The
// publication date is server-assigned at creation and never changes.
func (l *Library) UpdateBook(ctx context.Context, userID string, id uint, msg BookUpdate) (BookRecord, error) {
	book, err := l.ownedBook(ctx, userID, id)
	if err != nil {
		return BookRecord{}, err
	}

	book.Title = msg.Title
	book.Author = msg.Author
	book.ISBN = msg.ISBN

	if err := l.repo.UpdateBook(ctx, &book); err != nil {
		return BookRecord{}, fmt.Errorf("update book: %w", err)
	}

	l.logs.Infow("book updated", "userId", userID, "bookId", book.ID)

	return l.repoBookToRecord(book), nil
}

// DeleteBook removes the caller's book.
func (l *Library) DeleteBook(ctx context.Context, userID string, id uint) error {
	if _, err := l.ownedBook(ctx, userID, id); err != nil {
		return err
	}

	if err := l.repo.DeleteBook(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return ErrBookNotFound
		}
		return fmt.Errorf("delete book: %w", err)
	}

	l.logs.Infow("book deleted", "userId", userID, "bookId", id)

	return nil
}

func (l *Library) issueToken(ctx context.Context, userID string) (string, error) {
	existing, err := l.repo.GetToken(ctx, userID)
	if err == nil {
		return existing.Key, nil
	}
	if !errors.Is(err, repository.ErrTokenNotFound) {
		return "", fmt.Errorf("get token from db: %w", err)
	}

	key, err := l.tokens.Generate()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	if err := l.repo.CreateToken(ctx, &repository.AuthToken{Key: key, UserID: userID}); err != nil {
		return "", fmt.Errorf("create token: %w", err)
	}

	return key, nil
}

func (l *Library) ownedBook(ctx context.Context, userID string, id uint) (repository.Book, error) {
	book, err := l.repo.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return repository.Book{}, ErrBookNotFound
		}
		return repository.Book{}, fmt.Errorf("get book from db: %w", err)
	}

	if book.UserID != userID {
		return repository.Book{}, ErrBookNotFound
	}

	return book, nil
}

func (l *Library) repoBookToRecord(book repository.Book) BookRecord {
	return BookRecord{
		ID:              book.ID,
		UserID:          book.UserID,
		Title:           book.Title,
		Author:          book.Author,
		ISBN:            book.ISBN,
		PublicationDate: book.PublicationDate,
	}
}

func (l *Library) repoBooksToRecords(books []repository.Book) []BookRecord {
	records := make([]BookRecord, len(books))
	for i, book := range books {
		records[i] = l.repoBookToRecord(book)
	}
	return records
}
