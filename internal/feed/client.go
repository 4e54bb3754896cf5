package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client reads pages from a JSON HTTP endpoint:
//
//	GET <feed_url>?page=N&size=M -> {"page":N,"items":[...],"has_more":true}
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "refresher/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for the given feed URL. A bare host:port is
// treated as http.
func NewClient(feedURL string) (*Client, error) {
	endpoint, err := parseFeedURL(feedURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		endpoint: endpoint,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Fetch retrieves one page.
func (c *Client) Fetch(ctx context.Context, page, size int) (Page, error) {
	if c == nil {
		return Page{}, fmt.Errorf("client is nil")
	}
	if err := validate(page, size); err != nil {
		return Page{}, err
	}

	reqURL := *c.endpoint
	values := reqURL.Query()
	values.Set("page", strconv.Itoa(page))
	values.Set("size", strconv.Itoa(size))
	reqURL.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return Page{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return Page{}, fmt.Errorf("feed page %d returned status %d", page, resp.StatusCode)
	}

	var payload Page
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Page{}, fmt.Errorf("decode response: %w", err)
	}
	if payload.Number == 0 {
		payload.Number = page
	}
	return payload, nil
}

func parseFeedURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("feed url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse feed_url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse feed_url %q: missing host", raw)
	}
	u.Fragment = ""
	return u, nil
}
