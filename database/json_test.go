// path: database/json_test.go
package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcgaming-glitch/SafeNet-Blacklist/models"
)

func testReport(id string) models.Report {
	return models.Report{
		ID:                id,
		Person:            "Someone",
		UserID:            "someone#1",
		Reason:            "spam",
		ProofFilename:     id + ".png",
		ProofOriginalName: "proof.png",
		CreatedAt:         time.Now().UTC().Truncate(time.Second),
	}
}

func TestJSONStoreInitCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "reports.json")
	store, err := NewJSONStore(path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)

	reports, err := store.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store, err := NewJSONStore(filepath.Join(t.TempDir(), "reports.json"))
	require.NoError(t, err)

	want := testReport("r1")
	require.NoError(t, store.Append(context.Background(), want))

	got, err := store.All(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0])
}

func TestJSONStoreNewestFirst(t *testing.T) {
	store, err := NewJSONStore(filepath.Join(t.TempDir(), "reports.json"))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Append(ctx, testReport("first")))
	require.NoError(t, store.Append(ctx, testReport("second")))

	got, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].ID)
	assert.Equal(t, "first", got[1].ID)
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := NewJSONStore(path)
	require.NoError(t, err)

	_, err = store.All(context.Background())
	require.Error(t, err)
	var se *StorageError
	assert.ErrorAs(t, err, &se)

	err = store.Append(context.Background(), testReport("r1"))
	assert.ErrorAs(t, err, &se)
}

func TestJSONStoreConcurrentAppends(t *testing.T) {
	store, err := NewJSONStore(filepath.Join(t.TempDir(), "reports.json"))
	require.NoError(t, err)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, store.Append(context.Background(), testReport(fmt.Sprintf("r%d", i))))
		}(i)
	}
	wg.Wait()

	got, err := store.All(context.Background())
	require.NoError(t, err)
	require.Len(t, got, n)

	seen := make(map[string]bool, n)
	for _, r := range got {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
}
