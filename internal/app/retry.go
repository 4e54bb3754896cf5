package app

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/five82/refresher/internal/feed"
)

const (
	defaultAttempts = 3
	defaultBackoff  = 250 * time.Millisecond
	maxBackoff      = 2 * time.Second
)

// retryFetcher retries failed page fetches with exponential backoff so a
// single dropped request does not end a refresh with an error.
type retryFetcher struct {
	next     feed.Fetcher
	attempts int
	base     time.Duration
	wait     func(ctx context.Context, d time.Duration) error
}

func newRetryFetcher(next feed.Fetcher, attempts int, base time.Duration) *retryFetcher {
	if attempts < 1 {
		attempts = 1
	}
	return &retryFetcher{next: next, attempts: attempts, base: base, wait: sleepCtx}
}

func (r *retryFetcher) Fetch(ctx context.Context, page, size int) (feed.Page, error) {
	var lastErr error
	for attempt := 0; attempt < r.attempts; attempt++ {
		if attempt > 0 {
			if err := r.wait(ctx, calculateBackoff(attempt-1, r.base)); err != nil {
				return feed.Page{}, err
			}
		}
		p, err := r.next.Fetch(ctx, page, size)
		if err == nil {
			return p, nil
		}
		if errors.Is(err, feed.ErrInvalidPage) || ctx.Err() != nil {
			return feed.Page{}, err
		}
		lastErr = err
		log.Printf("feed: page %d attempt %d/%d failed: %v", page, attempt+1, r.attempts, err)
	}
	return feed.Page{}, lastErr
}

// calculateBackoff doubles base for each prior failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
