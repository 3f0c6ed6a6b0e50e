package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/cleandrop/internal/models"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestLoad_Products(t *testing.T) {
	data, err := Load(fixedNow)
	require.NoError(t, err)

	require.Len(t, data.Products, 12)

	first := data.Products[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Pure Essential", first.Name)
	assert.Equal(t, "12.99", first.Price.StringFixed(2))
	assert.Equal(t, models.CategoryEssential, first.Category)
	assert.Equal(t, models.TypeUnscented, first.Type)
	assert.True(t, first.IsBestseller)
	assert.False(t, first.IsNew)
	assert.Nil(t, first.OriginalPrice)
	assert.Equal(t, []string{"50 biodegradable sheets", "Hypoallergenic", "Travel-friendly case", "Dissolves in seconds"}, first.Features)

	seen := make(map[string]bool)
	for _, p := range data.Products {
		assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
		assert.NoError(t, p.Validate())
	}
}

func TestLoad_Reviews(t *testing.T) {
	data, err := Load(fixedNow)
	require.NoError(t, err)

	reviews := data.Products[4].Reviews
	require.Len(t, reviews, 6)
	assert.Equal(t, "5-review-0", reviews[0].ID)
	assert.Equal(t, "user-0", reviews[0].UserID)
	assert.Equal(t, "Sarah M.", reviews[0].UserName)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, models.AvatarURL("Sarah M."), reviews[0].Avatar)

	for i, r := range reviews {
		assert.True(t, r.Date.Before(fixedNow), "review %d dated in the future", i)
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
	}
}

func TestLoad_Users(t *testing.T) {
	data, err := Load(fixedNow)
	require.NoError(t, err)

	require.Len(t, data.Users, 5)
	admin := data.Users[0]
	assert.Equal(t, "admin-1", admin.ID)
	assert.Equal(t, "admin@cleandrop.com", admin.Email)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), admin.CreatedAt)

	for _, u := range data.Users[1:] {
		assert.Equal(t, models.RoleCustomer, u.Role)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed yaml", "products: [\n"},
		{"bad price", "products:\n  - {id: x, name: X, price: abc, category: essential, type: scented, sheets: 1}\n"},
		{"unknown category", "products:\n  - {id: x, name: X, price: \"1\", category: soap, type: scented, sheets: 1}\n"},
		{"original below price", "products:\n  - {id: x, name: X, price: \"5\", original_price: \"4\", category: bundle, type: scented, sheets: 1}\n"},
		{"unknown role", "users:\n  - {id: u, email: a@b.c, role: owner}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw), fixedNow)
			assert.Error(t, err)
		})
	}
}

func TestDecode_OriginalPrice(t *testing.T) {
	raw := "products:\n  - {id: b1, name: Bundle, price: \"39.99\", original_price: \"44.97\", category: bundle, type: scented, sheets: 150}\n"
	data, err := Decode([]byte(raw), fixedNow)
	require.NoError(t, err)
	require.Len(t, data.Products, 1)
	require.NotNil(t, data.Products[0].OriginalPrice)
	assert.Equal(t, "44.97", data.Products[0].OriginalPrice.StringFixed(2))
	assert.Empty(t, data.Products[0].Reviews)
}
