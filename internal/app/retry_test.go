package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/five82/refresher/internal/feed"
)

func TestCalculateBackoff(t *testing.T) {
	base := 250 * time.Millisecond

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 250 * time.Millisecond},
		{"negative failures", -1, 250 * time.Millisecond},
		{"one failure", 1, 500 * time.Millisecond},
		{"two failures", 2, time.Second},
		{"three failures capped", 3, 2 * time.Second},
		{"many failures capped", 40, 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calculateBackoff(tt.failures, base); got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, base, got, tt.want)
			}
		})
	}
}

type scriptedFetcher struct {
	errs  []error
	calls int
}

func (s *scriptedFetcher) Fetch(_ context.Context, page, _ int) (feed.Page, error) {
	s.calls++
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		if err != nil {
			return feed.Page{}, err
		}
	}
	return feed.Page{Number: page, HasMore: true}, nil
}

func newTestRetry(next feed.Fetcher, attempts int) (*retryFetcher, *[]time.Duration) {
	var waits []time.Duration
	r := newRetryFetcher(next, attempts, 100*time.Millisecond)
	r.wait = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return r, &waits
}

func TestRetryFetcher_RecoversAfterFailures(t *testing.T) {
	next := &scriptedFetcher{errs: []error{errors.New("a"), errors.New("b")}}
	r, waits := newTestRetry(next, 3)

	page, err := r.Fetch(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if page.Number != 2 || next.calls != 3 {
		t.Fatalf("page %d after %d calls, want page 2 after 3", page.Number, next.calls)
	}
	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}
	if len(*waits) != 2 || (*waits)[0] != want[0] || (*waits)[1] != want[1] {
		t.Fatalf("waits = %v, want %v", *waits, want)
	}
}

func TestRetryFetcher_GivesUp(t *testing.T) {
	last := errors.New("still down")
	next := &scriptedFetcher{errs: []error{errors.New("down"), last}}
	r, _ := newTestRetry(next, 2)

	if _, err := r.Fetch(context.Background(), 1, 10); !errors.Is(err, last) {
		t.Fatalf("Fetch error = %v, want %v", err, last)
	}
	if next.calls != 2 {
		t.Fatalf("calls = %d, want 2", next.calls)
	}
}

func TestRetryFetcher_NoRetryForInvalidPageOrCancel(t *testing.T) {
	next := &scriptedFetcher{errs: []error{feed.ErrInvalidPage}}
	r, _ := newTestRetry(next, 3)
	if _, err := r.Fetch(context.Background(), 0, 10); !errors.Is(err, feed.ErrInvalidPage) || next.calls != 1 {
		t.Fatalf("err=%v calls=%d, want ErrInvalidPage after 1 call", err, next.calls)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	next = &scriptedFetcher{errs: []error{errors.New("down")}}
	r, _ = newTestRetry(next, 3)
	if _, err := r.Fetch(ctx, 1, 10); err == nil || next.calls != 1 {
		t.Fatalf("err=%v calls=%d, want an error after 1 call", err, next.calls)
	}
}

func TestSleepCtx_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sleepCtx(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("sleepCtx error = %v, want context.Canceled", err)
	}
}
