package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemStore_RejectsDuplicateIDs(t *testing.T) {
	ps := SeedProducts()
	ps = append(ps, Product{ID: " 3 ", Name: "Copy"})

	_, err := NewMemStore(ps)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestNewMemStore_RejectsEmptyID(t *testing.T) {
	_, err := NewMemStore([]Product{{ID: "  ", Name: "Nameless"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nameless")
}

func TestMemStore_KeepsInsertionOrder(t *testing.T) {
	s, err := NewMemStore([]Product{{ID: "b"}, {ID: "a"}, {ID: "c"}})
	require.NoError(t, err)

	got, err := s.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, ids(got))
	assert.Equal(t, 3, s.Len())
}

func TestMemStore_Get(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	p, ok, err := s.Get(ctx, "2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, CategoryMetal, p.Category)

	_, ok, err = s.Get(ctx, "42")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStore_SourceIsNotAliased(t *testing.T) {
	src := []Product{{ID: "x", Materials: []string{"Steel"}}}
	s, err := NewMemStore(src)
	require.NoError(t, err)

	src[0].Materials[0] = "Wood"

	p, _, err := s.Get(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"Steel"}, p.Materials)
}

func TestSeedProducts_AreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range SeedProducts() {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.True(t, p.Category.Valid(), "product %s has category %q", p.ID, p.Category)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Materials)
		assert.NotEmpty(t, p.Applications)
	}
	assert.Len(t, seen, 6)
}
