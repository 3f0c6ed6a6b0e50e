package utils

import (
	"math"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/example/cleandrop/internal/models"
)

const testSecret = "test-secret"

func TestToken_RoundTrip(t *testing.T) {
	user := models.User{ID: "admin-1", Role: models.RoleAdmin}

	token, err := GenerateToken(testSecret, user, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, TokenClaims{UserID: "admin-1", Role: models.RoleAdmin}, claims)
}

func TestToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, models.User{ID: "customer-1", Role: models.RoleCustomer}, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestToken_Expired(t *testing.T) {
	token, err := GenerateToken(testSecret, models.User{ID: "customer-1"}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestToken_Garbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not.a.token")
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	PasswordCost = bcrypt.MinCost
	t.Cleanup(func() { PasswordCost = bcrypt.DefaultCost })

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))

	_, err = HashPassword(strings.Repeat("x", 100))
	assert.Error(t, err)
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query string
		want  Pagination
	}{
		{"", Pagination{Page: 1, Limit: 20, Offset: 0}},
		{"?page=3&limit=5", Pagination{Page: 3, Limit: 5, Offset: 10}},
		{"?page=0&limit=-1", Pagination{Page: 1, Limit: 20, Offset: 0}},
		{"?page=x&limit=500", Pagination{Page: 1, Limit: 100, Offset: 0}},
		{"?page=4611686018427387905&limit=3", Pagination{Page: 3074457345618258602, Limit: 3, Offset: 9223372036854775803}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			app := fiber.New()
			var got Pagination
			app.Get("/", func(c *fiber.Ctx) error {
				got = ParsePagination(c)
				return nil
			})

			_, err := app.Test(httptest.NewRequest("GET", "/"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, Pagination{Page: 1, Limit: 2, Offset: 0}))
	assert.Equal(t, []int{5}, Paginate(items, Pagination{Page: 3, Limit: 2, Offset: 4}))
	assert.Equal(t, []int{}, Paginate(items, Pagination{Page: 4, Limit: 2, Offset: 6}))
	assert.Equal(t, []int{}, Paginate(items, Pagination{Page: 1, Limit: 2, Offset: -4}))
	assert.Equal(t, []int{4, 5}, Paginate(items, Pagination{Page: 2, Limit: math.MaxInt, Offset: 3}))
}
