package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"foodcourt-pos/pos-svc/internal/service"
	"foodcourt-pos/pos-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// fixedNow is 2024-12-09 10:00 local, the "today" of the demo data.
var fixedNow = time.Date(2024, time.December, 9, 10, 0, 0, 0, time.Local)

func fixedClock() time.Time { return fixedNow }

func newRedisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func newRedisStore(t *testing.T) *storage.RedisSnapshotStore {
	t.Helper()
	_, client := newRedisClient(t)
	return storage.NewRedisSnapshotStore(client, "")
}

// sequentialIDs returns an id generator yielding prefix-1, prefix-2, ...
func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// seededCatalog returns a catalog and ledger loaded with the demo data on a
// fresh Redis snapshot store.
func seededCatalog(t *testing.T, store service.SnapshotStore) (*service.CatalogStore, *service.Ledger) {
	t.Helper()
	ctx := context.Background()

	catalog := service.NewCatalogStore(store)
	catalog.NewID = sequentialIDs("new")
	require.NoError(t, catalog.Load(ctx, true))

	ledger := service.NewLedger(store)
	require.NoError(t, ledger.Load(ctx, catalog.Seeded()))
	return catalog, ledger
}
