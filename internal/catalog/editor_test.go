package catalog

import (
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/cleandrop/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestEditor_UpdateProduct(t *testing.T) {
	store := newSeedStore(t)
	editor := NewEditor(store)

	before, ok := store.ByID("5")
	require.True(t, ok)

	updated, err := editor.UpdateProduct("5", models.ProductUpdate{
		Price:         ptr(decimal.RequireFromString("11.49")),
		OriginalPrice: ptr(decimal.RequireFromString("14.99")),
		IsNew:         ptr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "11.49", updated.Price.StringFixed(2))
	assert.True(t, updated.IsNew)
	assert.Equal(t, before.Name, updated.Name)

	current, ok := store.ByID("5")
	require.True(t, ok)
	assert.Equal(t, "11.49", current.Price.StringFixed(2))

	// Values read before the edit are replacements, not aliases.
	assert.Equal(t, "14.99", before.Price.StringFixed(2))
	assert.False(t, before.IsNew)
	assert.Nil(t, before.OriginalPrice)
}

func TestEditor_UpdateProduct_NotFound(t *testing.T) {
	editor := NewEditor(newSeedStore(t))

	_, err := editor.UpdateProduct("404", models.ProductUpdate{Name: ptr("Ghost")})
	assert.True(t, errors.Is(err, ErrProductNotFound))
}

func TestEditor_UpdateProduct_Invalid(t *testing.T) {
	store := newSeedStore(t)
	editor := NewEditor(store)

	_, err := editor.UpdateProduct("1", models.ProductUpdate{Price: ptr(decimal.RequireFromString("-2"))})
	assert.True(t, errors.Is(err, ErrInvalidProduct))

	_, err = editor.UpdateProduct("1", models.ProductUpdate{OriginalPrice: ptr(decimal.RequireFromString("1.00"))})
	assert.True(t, errors.Is(err, ErrInvalidProduct))

	_, err = editor.UpdateProduct("1", models.ProductUpdate{Name: ptr("")})
	assert.True(t, errors.Is(err, ErrInvalidProduct))

	p, _ := store.ByID("1")
	assert.Equal(t, "12.99", p.Price.StringFixed(2))
	assert.Equal(t, "Pure Essential", p.Name)
}

func TestEditor_ConcurrentEdits(t *testing.T) {
	store := newSeedStore(t)
	editor := NewEditor(store)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := editor.UpdateProduct("2", models.ProductUpdate{InStock: ptr(i%2 == 0)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 12, store.Len())
	_, ok := store.ByID("2")
	assert.True(t, ok)
}
