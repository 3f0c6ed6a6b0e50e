package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/cleandrop/internal/catalog"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "cleandrop", cmd.Use)
	assert.Contains(t, cmd.Long, "soap sheet catalog")
	for _, name := range []string{"products", "product"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestProducts_Text(t *testing.T) {
	out, err := execute(t, "products", "--category", "premium")
	require.NoError(t, err)

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "premium")
	assert.NotContains(t, out, "botanical")
	assert.Contains(t, out, "product(s)")
}

func TestProducts_JSONSortedByPrice(t *testing.T) {
	out, err := execute(t, "products", "--sort", "price-high", "--format", "json")
	require.NoError(t, err)

	var products []struct {
		ID    string  `json:"id"`
		Price float64 `json:"price,string"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	require.Len(t, products, 12)
	for i := 1; i < len(products); i++ {
		assert.GreaterOrEqual(t, products[i-1].Price, products[i].Price)
	}
}

func TestProducts_Search(t *testing.T) {
	out, err := execute(t, "products", "--search", "LAVENDER", "--format", "json")
	require.NoError(t, err)

	var products []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	for _, p := range products {
		text := strings.ToLower(p.Name + " " + p.Description)
		assert.Contains(t, text, "lavender")
	}
}

func TestProducts_InvalidInput(t *testing.T) {
	_, err := execute(t, "products", "--sort", "cheapest")
	assert.Error(t, err)

	_, err = execute(t, "products", "--category", "candles")
	assert.Error(t, err)

	_, err = execute(t, "products", "--format", "yaml")
	assert.Error(t, err)
}

func TestProduct_Show(t *testing.T) {
	out, err := execute(t, "product", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "(1)")
	assert.Contains(t, out, "price: $12.99")

	_, err = execute(t, "product", "999")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}
