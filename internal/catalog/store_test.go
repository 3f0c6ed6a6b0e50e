package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/cleandrop/internal/models"
	"github.com/example/cleandrop/internal/seed"
)

func seedProducts(t *testing.T) []models.Product {
	t.Helper()
	data, err := seed.Load(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return data.Products
}

func newSeedStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(seedProducts(t))
	require.NoError(t, err)
	return store
}

func TestStore_All(t *testing.T) {
	store := newSeedStore(t)

	all := store.All()
	require.Len(t, all, 12)
	assert.Equal(t, 12, store.Len())
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "12", all[11].ID)

	// The returned slice is a copy.
	all[0] = models.Product{}
	first, ok := store.ByID("1")
	require.True(t, ok)
	assert.Equal(t, "Pure Essential", first.Name)
}

func TestStore_ReadsDoNotShareSlices(t *testing.T) {
	store := newSeedStore(t)

	all := store.All()
	require.NotEmpty(t, all[0].Features)
	require.NotEmpty(t, all[0].Reviews)
	all[0].Features[0] = "tampered"
	all[0].Reviews[0].Comment = "tampered"

	byID, ok := store.ByID("1")
	require.True(t, ok)
	assert.NotEqual(t, "tampered", byID.Features[0])
	assert.NotEqual(t, "tampered", byID.Reviews[0].Comment)

	byID.Features[0] = "tampered"
	queried := store.Query(QueryParams{Sort: SortPopularity})
	for _, p := range queried {
		if p.ID == "1" {
			assert.NotEqual(t, "tampered", p.Features[0])
		}
	}
}

func TestStore_Related(t *testing.T) {
	store := newSeedStore(t)

	assert.Equal(t, []string{"4", "5", "6", "8"}, ids(store.Related("2", RelatedLimit)))
	assert.Equal(t, []string{"7", "10", "11"}, ids(store.Related("3", RelatedLimit)))
	assert.Equal(t, []string{"4"}, ids(store.Related("2", 1)))
	assert.Empty(t, store.Related("1", RelatedLimit))
	assert.Empty(t, store.Related("999", RelatedLimit))
	assert.Empty(t, store.Related("2", 0))
}

func TestStore_ByID(t *testing.T) {
	store := newSeedStore(t)

	p, ok := store.ByID("7")
	require.True(t, ok)
	assert.Equal(t, "Rose Petal", p.Name)

	_, ok = store.ByID("999")
	assert.False(t, ok)
}

func TestStore_ByCategory(t *testing.T) {
	store := newSeedStore(t)

	premium := store.ByCategory(models.CategoryPremium)
	assert.Equal(t, []string{"3", "7", "10", "11"}, ids(premium))

	assert.Empty(t, store.ByCategory(models.CategoryBundle))
}

func TestStore_Featured(t *testing.T) {
	store := newSeedStore(t)

	featured := store.Featured()
	assert.Equal(t, []string{"1", "3", "5", "7"}, ids(featured))
	for _, p := range featured {
		assert.True(t, p.IsBestseller || p.IsNew)
	}
}

func TestStore_Query(t *testing.T) {
	store := newSeedStore(t)

	got := store.Query(QueryParams{Search: "charcoal", Sort: SortPriceDescending})
	assert.Equal(t, []string{"10", "4"}, ids(got))
}

func TestNewStore_Rejects(t *testing.T) {
	valid := models.Product{
		ID:       "a",
		Name:     "A",
		Category: models.CategoryEssential,
		Type:     models.TypeUnscented,
		Sheets:   10,
		Price:    decimal.RequireFromString("9.99"),
	}

	_, err := NewStore([]models.Product{valid, valid})
	assert.True(t, errors.Is(err, ErrInvalidProduct))

	negative := valid
	negative.ID = "b"
	negative.Price = decimal.RequireFromString("-1")
	_, err = NewStore([]models.Product{negative})
	assert.True(t, errors.Is(err, ErrInvalidProduct))

	store, err := NewStore([]models.Product{valid})
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestStore_Stats(t *testing.T) {
	store := newSeedStore(t)

	stats := store.Stats()
	assert.Equal(t, 12, stats.Products)
	assert.Equal(t, 2, stats.Bestsellers)
	assert.InDelta(t, 57.5/12, stats.AverageRating, 1e-9)

	empty, err := NewStore(nil)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, empty.Stats())
}
