package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/example/cleandrop/internal/models"
)

// SortKey selects the ordering of a product listing.
type SortKey string

const (
	SortPopularity      SortKey = "popularity"
	SortRating          SortKey = "rating"
	SortPriceAscending  SortKey = "price-ascending"
	SortPriceDescending SortKey = "price-descending"
)

// ParseSortKey accepts the canonical keys plus the storefront's short forms
// (popular, price-low, price-high). Empty input sorts by popularity.
func ParseSortKey(value string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "popularity", "popular":
		return SortPopularity, nil
	case "rating":
		return SortRating, nil
	case "price-ascending", "price-low":
		return SortPriceAscending, nil
	case "price-descending", "price-high":
		return SortPriceDescending, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", value)
	}
}

// QueryParams drives one product listing. Zero Category and Type match
// every product.
type QueryParams struct {
	Search   string
	Category models.Category
	Type     models.ProductType
	Sort     SortKey
}

// ParseQueryParams builds QueryParams from their textual forms.
func ParseQueryParams(search, category, productType, sort string) (QueryParams, error) {
	c, err := models.ParseCategory(category)
	if err != nil {
		return QueryParams{}, err
	}
	t, err := models.ParseProductType(productType)
	if err != nil {
		return QueryParams{}, err
	}
	key, err := ParseSortKey(sort)
	if err != nil {
		return QueryParams{}, err
	}
	return QueryParams{Search: search, Category: c, Type: t, Sort: key}, nil
}

// Query filters and sorts products. The input slice is not modified and ties
// keep their catalog order.
func Query(products []models.Product, params QueryParams) []models.Product {
	folder := cases.Fold()
	needle := folder.String(params.Search)

	res := make([]models.Product, 0, len(products))
	for _, p := range products {
		if needle != "" &&
			!strings.Contains(folder.String(p.Name), needle) &&
			!strings.Contains(folder.String(p.Description), needle) {
			continue
		}
		if params.Category != "" && p.Category != params.Category {
			continue
		}
		if params.Type != "" && p.Type != params.Type {
			continue
		}
		res = append(res, p)
	}

	slices.SortStableFunc(res, comparator(params.Sort))
	return res
}

func comparator(key SortKey) func(a, b models.Product) int {
	switch key {
	case SortRating:
		return func(a, b models.Product) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortPriceAscending:
		return func(a, b models.Product) int { return a.Price.Cmp(b.Price) }
	case SortPriceDescending:
		return func(a, b models.Product) int { return b.Price.Cmp(a.Price) }
	default:
		return func(a, b models.Product) int { return cmp.Compare(b.ReviewCount, a.ReviewCount) }
	}
}
