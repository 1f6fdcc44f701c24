package payload

import (
	"mylibrary/internal/core"

	"github.com/jellydator/validation"
)

// CreateBookRequest carries only the ISBN: title and author come from the
// Open Library lookup, never from the client.
type CreateBookRequest struct {
	ISBN string `json:"isbn"`
}

func (c CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ISBN, validation.Required.Error("ISBN is required")),
	)
}

// UpdateBookRequest is a full replacement of the editable book fields.
type UpdateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

func (u UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Title, validation.Required, validation.Length(1, 250)),
		validation.Field(&u.Author, validation.Length(0, 250)),
		validation.Field(&u.ISBN, validation.Length(0, 100)),
	)
}

func (u UpdateBookRequest) ToMessage() core.BookUpdate {
	return core.BookUpdate{
		Title:  u.Title,
		Author: u.Author,
		ISBN:   u.ISBN,
	}
}
