package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/refresher/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	feedURL := flag.String("feed", "", "feed endpoint; empty uses the built-in generator")
	logFile := flag.String("log", "", "write debug logs to this file (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		FeedURL:    *feedURL,
		LogFile:    *logFile,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "refresher: %v\n", err)
		return 1
	}
	return 0
}
