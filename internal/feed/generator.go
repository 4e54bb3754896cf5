package feed

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Generator is a synthetic Fetcher. It serves maxPages pages and waits
// latency before each one so the refresh controls stay visible long
// enough to watch.
type Generator struct {
	maxPages int
	latency  time.Duration
	now      func() time.Time

	mu      sync.Mutex
	reloads int
}

// NewGenerator returns a Generator. maxPages below 1 means a single page.
func NewGenerator(maxPages int, latency time.Duration) *Generator {
	if maxPages < 1 {
		maxPages = 1
	}
	if latency < 0 {
		latency = 0
	}
	return &Generator{maxPages: maxPages, latency: latency, now: time.Now}
}

// Fetch returns page with size items. Every fetch of page 1 counts as a
// reload and shifts the titles so a refresh visibly changes the list.
func (g *Generator) Fetch(ctx context.Context, page, size int) (Page, error) {
	if err := validate(page, size); err != nil {
		return Page{}, err
	}
	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return Page{}, ctx.Err()
		case <-timer.C:
		}
	}

	g.mu.Lock()
	if page == 1 {
		g.reloads++
	}
	reload := g.reloads
	g.mu.Unlock()

	if page > g.maxPages {
		return Page{Number: page}, nil
	}

	stamp := g.now()
	items := make([]Item, 0, size)
	for i := 0; i < size; i++ {
		id := int64((page-1)*size + i + 1)
		items = append(items, Item{
			ID:        id,
			Title:     fmt.Sprintf("Item %d", id),
			Summary:   fmt.Sprintf("page %d, reload %d", page, reload),
			CreatedAt: stamp.Add(-time.Duration(id) * time.Minute),
		})
	}
	return Page{Number: page, Items: items, HasMore: page < g.maxPages}, nil
}
