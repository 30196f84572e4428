package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZJAVED2012/PAKNet-AI/pkg/api"
)

// backends runs the same suite against every Store implementation.
func backends(t *testing.T, limit int) map[string]Store {
	t.Helper()

	sqlitePath := filepath.Join(t.TempDir(), "paknet.db")
	sq, err := OpenSQLite(context.Background(), sqlitePath, limit)
	require.NoError(t, err)
	t.Cleanup(func() { sq.Close() })

	return map[string]Store{
		"mem":    NewMem(limit),
		"sqlite": sq,
	}
}

func record(i int, model string) api.Blueprint {
	return api.NewBlueprint(
		fmt.Sprintf("id-%03d", i),
		model,
		fmt.Sprintf("# Blueprint %d for %s", i, model),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i)*time.Minute),
	)
}

func TestAppendDedupAndCap(t *testing.T) {
	ctx := context.Background()
	for name, store := range backends(t, 10) {
		t.Run(name, func(t *testing.T) {
			// 15 appends across 12 models, two of them repeated.
			models := []string{
				"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L",
				"B", "A", "C",
			}
			for i, m := range models {
				require.NoError(t, store.Append(ctx, record(i, m)))
			}

			items, err := store.List(ctx)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(items), 10, "cap must hold after any number of appends")

			seen := map[string]bool{}
			for _, it := range items {
				assert.False(t, seen[it.DeviceModel], "duplicate device model %q", it.DeviceModel)
				seen[it.DeviceModel] = true
			}

			// The re-appended models moved to the front, newest first.
			require.GreaterOrEqual(t, len(items), 3)
			assert.Equal(t, "C", items[0].DeviceModel)
			assert.Equal(t, "A", items[1].DeviceModel)
			assert.Equal(t, "B", items[2].DeviceModel)
			// Newest wins: the front record carries the replacement content.
			assert.Equal(t, "id-014", items[0].ID)
		})
	}
}

func TestAppendReplacesAndMovesToFront(t *testing.T) {
	ctx := context.Background()
	for name, store := range backends(t, 10) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Append(ctx, record(0, "MX-480")))
			require.NoError(t, store.Append(ctx, record(1, "Catalyst 9300")))
			require.NoError(t, store.Append(ctx, record(2, "MX-480")))

			items, err := store.List(ctx)
			require.NoError(t, err)
			require.Len(t, items, 2)
			assert.Equal(t, "MX-480", items[0].DeviceModel)
			assert.Equal(t, "id-002", items[0].ID, "replacement record wins")
			assert.Equal(t, "Catalyst 9300", items[1].DeviceModel)
		})
	}
}

func TestGetLatestClear(t *testing.T) {
	ctx := context.Background()
	for name, store := range backends(t, 5) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Latest(ctx)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Append(ctx, record(0, "MX-480")))
			require.NoError(t, store.Append(ctx, record(1, "SRX-345")))

			got, err := store.Get(ctx, "id-000")
			require.NoError(t, err)
			assert.Equal(t, "MX-480", got.DeviceModel)
			assert.Equal(t, "# Blueprint 0 for MX-480", got.Content)

			latest, err := store.Latest(ctx)
			require.NoError(t, err)
			assert.Equal(t, "SRX-345", latest.DeviceModel)

			_, err = store.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Clear(ctx))
			items, err := store.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "paknet.db")

	store, err := OpenSQLite(ctx, path, 10)
	require.NoError(t, err)
	require.NoError(t, store.Append(ctx, record(0, "MX-480")))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(ctx, path, 10)
	require.NoError(t, err)
	defer reopened.Close()

	items, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "MX-480", items[0].DeviceModel)
}

func TestOpenSQLiteRejectsMalformedFile(t *testing.T) {
	// A directory where the DB file should be makes open/init fail; the
	// caller treats that as empty history.
	dir := t.TempDir()
	_, err := OpenSQLite(context.Background(), dir, 10)
	assert.Error(t, err)
}
