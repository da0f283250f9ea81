// Package app wires configuration, preferences, the record store, and
// the UI together.
package app

import (
	"context"
	"fmt"

	"github.com/Nisaljde/VetPulzNext/internal/config"
	"github.com/Nisaljde/VetPulzNext/internal/prefs"
	"github.com/Nisaljde/VetPulzNext/internal/store"
	"github.com/Nisaljde/VetPulzNext/internal/ui"
)

// Options are the command line inputs.
type Options struct {
	ConfigPath string
	PrefsPath  string
}

// Run loads configuration and preferences, seeds the in-memory record
// store, and runs the UI until the user quits or ctx is canceled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	p := prefs.Load(prefsPath)

	st := store.New()
	store.Seed(st)

	return ui.Run(ctx, ui.Options{
		Store:     st,
		Config:    &cfg,
		Prefs:     p,
		PrefsPath: prefsPath,
	})
}
