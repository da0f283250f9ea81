package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nisaljde/VetPulzNext/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to config file (default ~/.config/vetpulz/config.toml)")
	prefsPath := flag.String("prefs", "", "path to preferences file (default ~/.config/vetpulz/prefs.toml)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := app.Run(ctx, app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "vetpulz: %v\n", err)
		return 1
	}
	return 0
}
