package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dheemanth-SM-07/Modern-App-Assignment/models"
)

func TestMemoryInsertAssignsIDs(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	a := models.Product{Name: "A", Price: 1, CreatedAt: time.Now().UTC()}
	b := models.Product{Name: "B", Price: 2, CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Insert(ctx, &a))
	require.NoError(t, s.Insert(ctx, &b))

	assert.Equal(t, uint(1), a.ID)
	assert.Equal(t, uint(2), b.ID)

	got, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestMemoryGetNotFound(t *testing.T) {
	s := NewMemory()
	_, err := s.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryListNewestFirst(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	a := models.Product{Name: "A", Price: 1, CreatedAt: base}
	b := models.Product{Name: "B", Price: 2, CreatedAt: base.Add(time.Second)}
	c := models.Product{Name: "C", Price: 3, CreatedAt: base.Add(2 * time.Second)}
	for _, p := range []*models.Product{&a, &b, &c} {
		require.NoError(t, s.Insert(ctx, p))
	}

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestMemoryListTieBreakOnID(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, name := range []string{"A", "B", "C"} {
		p := models.Product{Name: name, Price: 1, CreatedAt: ts}
		require.NoError(t, s.Insert(ctx, &p))
	}

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Equal timestamps fall back to id descending.
	assert.Equal(t, []string{"C", "B", "A"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestMemoryReplace(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	p := models.Product{Name: "Pen", Price: 1.50, InStock: true, CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Insert(ctx, &p))

	now := time.Now().UTC()
	updated := p
	updated.Name = "Pen v2"
	updated.Price = 2.00
	updated.InStock = false
	updated.UpdatedAt = &now
	require.NoError(t, s.Replace(ctx, &updated))

	got, err := s.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pen v2", got.Name)
	assert.Equal(t, 2.00, got.Price)
	assert.False(t, got.InStock)
	assert.Equal(t, p.CreatedAt, got.CreatedAt)
	require.NotNil(t, got.UpdatedAt)
	assert.Equal(t, now, *got.UpdatedAt)
}

func TestMemoryReplaceNotFound(t *testing.T) {
	s := NewMemory()
	p := models.Product{ID: 99, Name: "Ghost", Price: 1}
	assert.ErrorIs(t, s.Replace(context.Background(), &p), ErrNotFound)
}

func TestMemoryRemoveIdempotentNotFound(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	p := models.Product{Name: "Pen", Price: 1, CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Insert(ctx, &p))
	require.NoError(t, s.Remove(ctx, p.ID))

	assert.ErrorIs(t, s.Remove(ctx, p.ID), ErrNotFound)
	assert.ErrorIs(t, s.Remove(ctx, p.ID), ErrNotFound)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMemoryConcurrentInserts(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := models.Product{Name: "Bulk", Price: 1, CreatedAt: time.Now().UTC()}
			_ = s.Insert(ctx, &p)
		}()
	}
	wg.Wait()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(100), n)

	got, err := s.List(ctx)
	require.NoError(t, err)
	seen := make(map[uint]bool, len(got))
	for _, p := range got {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestSeedOnlyWhenEmpty(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, s))
	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	// A second run must not duplicate the catalog.
	require.NoError(t, Seed(ctx, s))
	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	got, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mechanical Keyboard", got[0].Name)
}
