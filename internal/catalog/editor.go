package catalog

import (
	"fmt"
	"log"

	"github.com/example/cleandrop/internal/models"
)

// Editor is the back-office write path into a Store. Every edit swaps in a
// replacement entry, so readers holding an earlier value keep seeing it.
type Editor struct {
	store *Store
}

// NewEditor constructs an Editor over store.
func NewEditor(store *Store) *Editor {
	return &Editor{store: store}
}

// UpdateProduct applies update to the product with the given id.
func (e *Editor) UpdateProduct(id string, update models.ProductUpdate) (models.Product, error) {
	next, err := e.store.swap(id, func(current models.Product) (models.Product, error) {
		next := update.Apply(current)
		if err := next.Validate(); err != nil {
			return models.Product{}, fmt.Errorf("%w: %v", ErrInvalidProduct, err)
		}
		return next, nil
	})
	if err != nil {
		return models.Product{}, err
	}

	log.Printf("[Catalog] product %s updated (price %s)", next.ID, next.Price.StringFixed(2))
	return next, nil
}

// Stats summarizes the catalog for the admin dashboard.
type Stats struct {
	Products      int     `json:"products"`
	Bestsellers   int     `json:"bestsellers"`
	AverageRating float64 `json:"average_rating"`
}

// Stats computes dashboard numbers over the current catalog.
func (s *Store) Stats() Stats {
	products := s.All()
	stats := Stats{Products: len(products)}
	if len(products) == 0 {
		return stats
	}

	var sum float64
	for _, p := range products {
		sum += p.Rating
		if p.IsBestseller {
			stats.Bestsellers++
		}
	}
	stats.AverageRating = sum / float64(len(products))
	return stats
}
