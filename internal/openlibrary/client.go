package openlibrary

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const lookupPath = "/api/books"

// Client queries the Open Library books API by ISBN.
type Client struct {
	logs   *zap.SugaredLogger
	client *resty.Client
}

func NewClient(logger *zap.SugaredLogger, baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &Client{
		logs:   logger,
		client: client,
	}
}

// Lookup fetches bibliographic data for an ISBN. A nil result means the ISBN
// could not be resolved: transport failures, timeouts and non-success statuses
// are logged and read as a miss, so an Open Library outage degrades to "book
// not found". A single attempt is made, no retries.
func (c *Client) Lookup(ctx context.Context, isbn string) (*BookData, error) {
	bibkey := "ISBN:" + isbn

	var result map[string]bookPayload
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"bibkeys": bibkey,
			"format":  "json",
			"jscmd":   "data",
		}).
		SetResult(&result).
		Get(lookupPath)
	if err != nil {
		c.logs.Errorw("open library request failed", "isbn", isbn, "error", err)
		return nil, nil
	}
	if !resp.IsSuccess() {
		c.logs.Errorw("open library returned non-success status", "isbn", isbn, "status", resp.StatusCode())
		return nil, nil
	}

	data, ok := result[bibkey]
	if !ok {
		c.logs.Infow("open library has no record for isbn", "isbn", isbn)
		return nil, nil
	}

	names := make([]string, 0, len(data.Authors))
	for _, author := range data.Authors {
		names = append(names, author.Name)
	}

	return &BookData{
		Title:  data.Title,
		Author: strings.Join(names, ", "),
		ISBN:   isbn,
	}, nil
}
