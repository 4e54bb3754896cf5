// Package app is the composition root of the refresher TUI.
//
// Run loads the TOML config, applies command-line overrides, points the
// standard logger at a file (or discards it), picks a feed source and hands
// everything to ui.Run, which blocks until the user quits.
//
//	Run()
//	  ├─> config.Load()          ~/.config/refresher/config.toml
//	  ├─> setupLogging()         tea.LogToFile or io.Discard
//	  ├─> newFetcher()           feed.Generator, or feed.Client behind retries
//	  ├─> prefs.Load()           theme and help visibility
//	  └─> ui.Run()               blocks
//
// HTTP feeds are wrapped in a retrying fetcher: a failed page is retried
// with exponential backoff (250ms doubling, capped at 2s) before the error
// reaches the UI, where it ends the refresh and is shown in the status line.
// Invalid page requests and cancelled contexts are never retried.
package app
