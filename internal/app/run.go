package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"tao-data/internal/merge"
	"tao-data/internal/model"
	"tao-data/internal/provider"
	"tao-data/internal/saver"
	"tao-data/internal/store"
)

// ErrMissingAPIKey aborts a fetch before any network call or store access.
var ErrMissingAPIKey = errors.New("COINGECKO is not set")

// RunFetch executes one pass of the pipeline: load the store, plan the fetch
// window, fetch, merge, commit. Any failure leaves the store untouched.
func RunFetch(ctx context.Context, cfg *Config, st *store.Store, src provider.MarketSource) error {
	if cfg.APIKey == "" {
		return ErrMissingAPIKey
	}

	existing, err := st.Load()
	if err != nil {
		return err
	}
	if last := existing.Last(); last > 0 {
		slog.Info("loaded store", "path", st.Path(), "entries", len(existing), "last_day", model.DayOf(last))
	} else {
		slog.Info("store is empty, starting fresh", "path", st.Path())
	}

	now := time.Now().UTC()
	days := merge.PlanWindow(existing.Last(), now)
	slog.Info("fetching daily prices", "provider", src.GetName(), "coin", cfg.CoinID, "days", days)

	raw, err := src.DailyPrices(ctx, days)
	if err != nil {
		return err
	}

	merged, added, err := merge.Merge(existing, raw, now)
	if err != nil {
		return err
	}
	if added == 0 {
		slog.Info("store already up to date", "entries", len(existing))
		return nil
	}

	if err := st.Write(merged); err != nil {
		return err
	}
	slog.Info("committed new points", "added", added, "total", len(merged))

	if cfg.ExportFormat != "" {
		path, err := writeSnapshot(cfg.CoinID, merged, cfg.ExportFormat, cfg.ExportDir, now)
		if err != nil {
			// The store commit already succeeded; a snapshot failure is not fatal.
			slog.Warn("snapshot export failed", "format", cfg.ExportFormat, "error", err)
		} else {
			slog.Info("exported snapshot", "path", path, "entries", len(merged))
		}
	}
	return nil
}

// RunVerify loads the store and checks its structural invariants. Read-only.
func RunVerify(cfg *Config, st *store.Store) error {
	ds, err := st.Load()
	if err != nil {
		return err
	}
	if err := merge.Validate(ds, time.Now().UTC()); err != nil {
		return fmt.Errorf("store %s: %w", st.Path(), err)
	}
	if len(ds) == 0 {
		slog.Info("store is empty", "path", st.Path())
		return nil
	}
	slog.Info("store is consistent",
		"path", st.Path(),
		"entries", len(ds),
		"first_day", ds[0].Day(),
		"last_day", ds[len(ds)-1].Day(),
	)
	return nil
}

// RunExport loads the store and writes a snapshot in the given format. The
// store file itself is not touched.
func RunExport(cfg *Config, st *store.Store, format, outDir string) error {
	ds, err := st.Load()
	if err != nil {
		return err
	}
	path, err := writeSnapshot(cfg.CoinID, ds, format, outDir, time.Now().UTC())
	if err != nil {
		return err
	}
	slog.Info("exported snapshot", "path", path, "entries", len(ds))
	return nil
}

func writeSnapshot(coinID string, ds model.Dataset, format, dir string, now time.Time) (string, error) {
	s := saver.New(format)
	if s == nil {
		return "", fmt.Errorf("unsupported export format %q (use: json, csv, parquet)", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.%s", coinID, now.Format("2006-01-02"), s.Extension()))
	if err := s.Save(ds, path); err != nil {
		return "", err
	}
	return path, nil
}
