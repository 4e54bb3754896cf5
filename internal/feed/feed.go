package feed

import (
	"context"
	"errors"
)

// Fetcher loads feed pages. Implementations must honor ctx cancellation.
type Fetcher interface {
	Fetch(ctx context.Context, page, size int) (Page, error)
}

// ErrInvalidPage reports a page number below 1 or a non-positive size.
var ErrInvalidPage = errors.New("invalid page request")

var (
	_ Fetcher = (*Client)(nil)
	_ Fetcher = (*Generator)(nil)
)

func validate(page, size int) error {
	if page < 1 || size < 1 {
		return ErrInvalidPage
	}
	return nil
}
