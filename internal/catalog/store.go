// Package catalog holds the storefront's product fact table and the pure
// query that derives product listings from it.
package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/example/cleandrop/internal/models"
)

const (
	// featuredLimit caps the home page showcase.
	featuredLimit = 4
	// RelatedLimit is how many related products a product page shows.
	RelatedLimit = 4
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
)

// Store is the read-only product catalog. Entries are only ever replaced
// through an Editor, never mutated in place, and every read hands out
// clones so callers cannot reach the stored slices.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
	index    map[string]int
}

// NewStore validates products and builds a store that keeps their order.
func NewStore(products []models.Product) (*Store, error) {
	s := &Store{
		products: make([]models.Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidProduct, err)
		}
		if _, dup := s.index[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidProduct, p.ID)
		}
		s.index[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}

	return s, nil
}

// All returns every product in catalog order.
func (s *Store) All() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.Product, len(s.products))
	for i, p := range s.products {
		res[i] = p.Clone()
	}
	return res
}

// ByID looks a product up by id.
func (s *Store) ByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Product{}, false
	}
	return s.products[i].Clone(), true
}

// ByCategory returns the products of one category in catalog order.
func (s *Store) ByCategory(category models.Category) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			res = append(res, p.Clone())
		}
	}
	return res
}

// Related returns up to limit other products from the same category as id,
// in catalog order. An unknown id has no related products.
func (s *Store) Related(id string, limit int) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.Product, 0)
	i, ok := s.index[id]
	if !ok || limit <= 0 {
		return res
	}

	category := s.products[i].Category
	for _, p := range s.products {
		if len(res) == limit {
			break
		}
		if p.ID != id && p.Category == category {
			res = append(res, p.Clone())
		}
	}
	return res
}

// Featured returns up to four bestsellers or new arrivals.
func (s *Store) Featured() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.Product, 0, featuredLimit)
	for _, p := range s.products {
		if len(res) == featuredLimit {
			break
		}
		if p.IsBestseller || p.IsNew {
			res = append(res, p.Clone())
		}
	}
	return res
}

// Query runs params against the current catalog.
func (s *Store) Query(params QueryParams) []models.Product {
	return Query(s.All(), params)
}

// Len reports the number of products.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// swap replaces the product with the given id by the result of edit. The
// write lock is held across edit so concurrent edits never interleave.
func (s *Store) swap(id string, edit func(models.Product) (models.Product, error)) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}

	next, err := edit(s.products[i])
	if err != nil {
		return models.Product{}, err
	}
	next.ID = id
	s.products[i] = next
	return next.Clone(), nil
}
