package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/refresher/internal/feed"
)

// Snapshot represents the latest feed data available to the UI.
type Snapshot struct {
	Items               []feed.Item
	Page                int  // last page loaded, 0 before the first load
	Exhausted           bool // the feed reported no more pages
	Refreshes           int  // completed pull-to-refresh reloads
	Loads               int  // completed load-more appends
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the feed has failed several fetches in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// NextPage returns the page number a load-more should request.
func (s Snapshot) NextPage() int {
	return s.Page + 1
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Replace swaps the items for a freshly reloaded first page. When err is
// non-nil the previous data is kept but the error is recorded.
func (s *Store) Replace(page feed.Page, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.recordError(err) {
		return
	}
	s.snapshot.Items = cloneItems(page.Items)
	s.snapshot.Page = pageNumber(page, 1)
	s.snapshot.Exhausted = !page.HasMore || len(page.Items) == 0
	s.snapshot.Refreshes++
	s.recordSuccess()
}

// Append adds a load-more page. Items already present by ID are skipped so
// a page boundary shifting under a reload never duplicates rows.
func (s *Store) Append(page feed.Page, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.recordError(err) {
		return
	}
	seen := make(map[int64]struct{}, len(s.snapshot.Items))
	for _, it := range s.snapshot.Items {
		seen[it.ID] = struct{}{}
	}
	for _, it := range page.Items {
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}
		s.snapshot.Items = append(s.snapshot.Items, it)
	}
	s.snapshot.Page = pageNumber(page, s.snapshot.Page+1)
	s.snapshot.Exhausted = !page.HasMore || len(page.Items) == 0
	s.snapshot.Loads++
	s.recordSuccess()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Items = cloneItems(s.snapshot.Items)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func (s *Store) recordError(err error) bool {
	if err == nil {
		return false
	}
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures++
	return true
}

func (s *Store) recordSuccess() {
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

func pageNumber(p feed.Page, fallback int) int {
	if p.Number > 0 {
		return p.Number
	}
	return fallback
}

func cloneItems(items []feed.Item) []feed.Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]feed.Item, len(items))
	copy(dup, items)
	return dup
}
