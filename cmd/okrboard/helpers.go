// Shared helpers for okrboard CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/pulsework/okrboard/internal/sqlite"
)

// openStore opens the store with the resolved configuration. The caller
// must defer store.Close().
func openStore() (*sqlite.Store, error) {
	store, err := sqlite.Open(appConfig)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// withStore runs fn against an opened store, closing it afterwards. When the
// mutation succeeded the store is snapshotted so the fixed-key copy stays
// current.
func withStore(fn func(*sqlite.Store) error) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := fn(store); err != nil {
		return err
	}
	return store.Snapshot()
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
