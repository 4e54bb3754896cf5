// Package state holds the feed data shared between fetch commands and the UI.
//
// Fetches run in Bubble Tea command goroutines and write through Replace
// (pull-to-refresh) or Append (load more). The UI reads with Snapshot,
// which returns copies, so rendering never races a fetch.
//
// A failed fetch keeps the previous items and records LastError and
// ConsecutiveFailures; IsOffline reports two or more failures in a row.
//
// The zero Store is ready to use.
package state
