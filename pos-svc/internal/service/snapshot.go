package service

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection keys shared with the web client's local storage layout.
const (
	KeyTenants      = "wbi_tenants"
	KeyMenu         = "wbi_menu"
	KeyTransactions = "wbi_transactions"
	KeyAccounts     = "wbi_admins"
)

func loadCollection[T any](ctx context.Context, store SnapshotStore, key string) ([]T, bool, error) {
	raw, found, err := store.Load(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	if !found {
		return nil, false, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return items, true, nil
}

func saveCollection[T any](ctx context.Context, store SnapshotStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := store.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("%w: save %s: %w", ErrPersistence, key, err)
	}
	return nil
}
