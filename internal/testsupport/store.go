package testsupport

import (
	"context"
	"testing"

	"srtdiff/internal/config"
	"srtdiff/internal/history"
)

// MustOpenHistory opens the history store configured by cfg and registers
// cleanup.
func MustOpenHistory(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	store, err := history.Open(context.Background(), cfg.History.Path)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// RecordRun inserts run into store for tests.
func RecordRun(t testing.TB, store *history.Store, run *history.Run) *history.Run {
	t.Helper()

	if err := store.Record(context.Background(), run); err != nil {
		t.Fatalf("store.Record: %v", err)
	}
	return run
}
