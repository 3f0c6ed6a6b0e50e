package routes

import (
	"github.com/example/cleandrop/internal/cart"
	"github.com/example/cleandrop/internal/catalog"
	"github.com/example/cleandrop/internal/seed"
	"github.com/example/cleandrop/internal/session"
)

// NewStorefront builds the engines from seed data. The cart resolves prices
// through the catalog so admin edits show up in open carts.
func NewStorefront(data seed.Data, opts ...session.Option) (Storefront, error) {
	store, err := catalog.NewStore(data.Products)
	if err != nil {
		return Storefront{}, err
	}

	return Storefront{
		Catalog:  store,
		Editor:   catalog.NewEditor(store),
		Cart:     cart.New(cart.WithResolver(store)),
		Sessions: session.NewManager(data.Users, opts...),
	}, nil
}
