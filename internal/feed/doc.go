// Package feed provides the paged data sources behind the refresher list.
//
// Two Fetcher implementations exist:
//
//   - Client: GET <feed_url>?page=N&size=M against a JSON endpoint
//   - Generator: synthetic pages with simulated latency, used when no
//     feed_url is configured
//
// Pages are numbered from 1. An empty page, or HasMore=false, ends the
// feed; the UI moves its footer to the no-more-data state.
//
// Client requests set Accept: application/json and User-Agent:
// refresher/0.1, time out after five seconds and return wrapped errors.
package feed
