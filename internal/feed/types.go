package feed

import "time"

// Item is one row of the feed.
type Item struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Page is one slice of the feed. Number starts at 1; page 1 is what a
// pull-to-refresh reloads.
type Page struct {
	Number  int    `json:"page"`
	Items   []Item `json:"items"`
	HasMore bool   `json:"has_more"`
}
