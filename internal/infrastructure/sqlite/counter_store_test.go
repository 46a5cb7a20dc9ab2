package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/akontos/protokolo/internal/registry/domain"
)

// setupTestDB creates a new DB in a temp dir, closed when the test completes.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := NewDB(dbPath)
	require.NoError(t, err, "Failed to create test database")
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCounterStore_FirstAllocationReturnsStart(t *testing.T) {
	store := setupTestDB(t).CounterStore()
	ctx := context.Background()

	value, err := store.AllocateNext(ctx, "signals-protocol-2024", 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), value)

	value, err = store.AllocateNext(ctx, "common-confidential-protocol-2024", 40001)
	require.NoError(t, err)
	require.Equal(t, int64(40001), value)
}

func TestCounterStore_SequentialIncrements(t *testing.T) {
	store := setupTestDB(t).CounterStore()
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		value, err := store.AllocateNext(ctx, "draft-number", 1)
		require.NoError(t, err)
		require.Equal(t, want, value)
	}
}

func TestCounterStore_ScopesAreIndependent(t *testing.T) {
	store := setupTestDB(t).CounterStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.AllocateNext(ctx, "signals-protocol-2024", 1)
		require.NoError(t, err)
	}

	value, err := store.AllocateNext(ctx, "signals-protocol-2025", 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), value, "a new year starts over")

	value, err = store.AllocateNext(ctx, "common-confidential-protocol-2024", 40001)
	require.NoError(t, err)
	require.Equal(t, int64(40001), value, "the common pool is untouched by signals traffic")
}

func TestCounterStore_ConcurrentAllocationsAreDistinct(t *testing.T) {
	store := setupTestDB(t).CounterStore()
	ctx := context.Background()

	const workers = 20
	values := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := store.AllocateNext(ctx, "signals-protocol-2024", 1)
			require.NoError(t, err)
			values <- value
		}()
	}
	wg.Wait()
	close(values)

	var got []int64
	for v := range values {
		got = append(got, v)
	}
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })

	require.Len(t, got, workers)
	for i, v := range got {
		require.Equal(t, int64(i+1), v, "allocations must be gapless and duplicate-free")
	}
}

func TestCounterStore_MonotonicProperty(t *testing.T) {
	store := setupTestDB(t).CounterStore()
	ctx := context.Background()

	last := make(map[string]int64)
	rapid.Check(t, func(t *rapid.T) {
		scope := rapid.IntRange(0, 3).Draw(t, "scope")
		key := fmt.Sprintf("scope-%d", scope)

		value, err := store.AllocateNext(ctx, key, 1)
		if err != nil {
			t.Fatalf("AllocateNext failed: %v", err)
		}
		if prev, ok := last[key]; ok && value != prev+1 {
			t.Fatalf("scope %s: got %d after %d", key, value, prev)
		}
		last[key] = value
	})
}

func TestCounterStore_AllocationErrorWrapsCause(t *testing.T) {
	db := setupTestDB(t)
	store := db.CounterStore()
	require.NoError(t, db.Close())

	_, err := store.AllocateNext(context.Background(), "scope", 1)
	var aerr *domain.AllocationError
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, "scope", aerr.Key)
}
