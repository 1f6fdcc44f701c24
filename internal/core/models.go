package core

import "time"

const (
	// DefaultPageSize applies when the client does not ask for a page size.
	DefaultPageSize = 10
	// MaxPageSize caps client-requested page sizes; larger requests clamp.
	MaxPageSize = 100
)

type AuthMessage struct {
	Username string
	Password string
}

type RegisterMessage struct {
	Username string
	Password string
	Email    string
	Bio      string
}

// TokenResult is returned by both registration and authentication.
type TokenResult struct {
	Token  string
	UserID string
	Email  string
}

type UserRecord struct {
	ID       string
	Username string
	Email    string
	Bio      string
}

type BookRecord struct {
	ID              uint
	UserID          string
	Title           string
	Author          string
	ISBN            string
	PublicationDate time.Time
}

// BookUpdate carries the client-editable book fields for a full replace.
type BookUpdate struct {
	Title  string
	Author string
	ISBN   string
}

type Page struct {
	Number int
	Size   int
}

func (p Page) normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

type BookPage struct {
	Count   int64
	Number  int
	Size    int
	HasNext bool
	HasPrev bool
	Books   []BookRecord
}
