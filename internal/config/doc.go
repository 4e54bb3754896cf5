// Package config loads the refresher TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/refresher/config.toml
//  3. If the config file doesn't exist, fall back to Default
//  4. If the file exists but fields are missing, zero or negative, use defaults
//
// # TOML Format
//
//	header_height = 3        # rows revealed by the pull-down header
//	footer_height = 1        # rows reserved below the content
//	trigger_percent = 1.0    # share of the footer that must scroll into view
//	auto_refresh = true      # load more while scrolling, not only on release
//	animation_ms = 250
//	feed_url = ""            # empty selects the synthetic generator
//	page_size = 20
//	max_pages = 5            # synthetic feed only
//	latency_ms = 600         # synthetic feed only; 0 disables the delay
//	log_file = ""            # empty discards log output
//
// Tilde expansion is applied to log_file.
//
// # Error Handling
//
// Missing files are not an error. Open, read and parse failures are wrapped
// with "open config", "read config" and "parse config".
package config
