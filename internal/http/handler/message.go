package handler

import "mylibrary/internal/core"

// dateLayout renders publication dates as calendar dates.
const dateLayout = "2006-01-02"

type ErrorResponse struct {
	Error string `json:"error"`
}

type TokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type BookResponse struct {
	ID              uint   `json:"id"`
	User            string `json:"user"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	PublicationDate string `json:"publication_date"`
}

type PageResponse struct {
	Count    int64          `json:"count"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
	Results  []BookResponse `json:"results"`
}

func bookToResponse(record core.BookRecord) BookResponse {
	return BookResponse{
		ID:              record.ID,
		User:            record.UserID,
		Title:           record.Title,
		Author:          record.Author,
		ISBN:            record.ISBN,
		PublicationDate: record.PublicationDate.Format(dateLayout),
	}
}

func booksToResponses(records []core.BookRecord) []BookResponse {
	responses := make([]BookResponse, len(records))
	for i, record := range records {
		responses[i] = bookToResponse(record)
	}
	return responses
}
