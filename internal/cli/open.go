package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/catalog"
	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/progress"
	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/storage"
	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/tracker"
)

// openTracker wires the runtime stack for a command: catalog artifact,
// progress database, hydrated progress store, tracker. The returned
// cleanup closes the database and must be called when non-nil.
func openTracker(ctx context.Context, opts *RootOptions, formatter *OutputFormatter) (*tracker.Tracker, func(), error) {
	cat, err := catalog.ReadFile(opts.config.Catalog)
	if err != nil {
		formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return nil, nil, WrapExitError(ExitCommandError, "loading catalog", err)
	}

	if dir := filepath.Dir(opts.config.Database); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			formatter.Error(ErrCodeStorage, err.Error(), nil)
			return nil, nil, WrapExitError(ExitCommandError, "creating database directory", err)
		}
	}

	st, err := storage.Open(opts.config.Database)
	if err != nil {
		formatter.Error(ErrCodeStorage, err.Error(), nil)
		return nil, nil, WrapExitError(ExitCommandError, "opening progress database", err)
	}

	store := progress.NewStore(st)
	store.Hydrate(ctx)
	slog.Debug("progress hydrated", "completed", store.Len())

	cleanup := func() {
		if err := st.Close(); err != nil {
			slog.Error("closing progress database", "error", err)
		}
	}
	return tracker.New(cat, store, st), cleanup, nil
}
