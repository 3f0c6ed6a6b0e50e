package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products on the storefront shelves.
type Category string

const (
	CategoryEssential   Category = "essential"
	CategoryBotanical   Category = "botanical"
	CategoryPremium     Category = "premium"
	CategoryBundle      Category = "bundle"
	CategoryTherapeutic Category = "therapeutic"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryEssential,
	CategoryBotanical,
	CategoryPremium,
	CategoryBundle,
	CategoryTherapeutic,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a textual category. Empty input and "all" return the
// zero Category, which filters nothing.
func ParseCategory(value string) (Category, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || value == "all" {
		return "", nil
	}
	c := Category(value)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", value)
	}
	return c, nil
}

// ProductType describes the scent profile of a product.
type ProductType string

const (
	TypeUnscented   ProductType = "unscented"
	TypeScented     ProductType = "scented"
	TypeTherapeutic ProductType = "therapeutic"
)

// ProductTypes lists every product type.
var ProductTypes = []ProductType{TypeUnscented, TypeScented, TypeTherapeutic}

func (t ProductType) Valid() bool {
	for _, known := range ProductTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseProductType mirrors ParseCategory for product types.
func ParseProductType(value string) (ProductType, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || value == "all" {
		return "", nil
	}
	t := ProductType(value)
	if !t.Valid() {
		return "", fmt.Errorf("unknown product type %q", value)
	}
	return t, nil
}

// Product is an immutable catalog entry. Edits produce a new value.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Image         string           `json:"image"`
	Category      Category         `json:"category"`
	Type          ProductType      `json:"type"`
	Features      []string         `json:"features"`
	Sheets        int              `json:"sheets"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	InStock       bool             `json:"in_stock"`
	Rating        float64          `json:"rating"`
	ReviewCount   int              `json:"review_count"`
	Reviews       []Review         `json:"reviews,omitempty"`
	IsBestseller  bool             `json:"is_bestseller"`
	IsNew         bool             `json:"is_new"`
}

// Validate checks the catalog invariants of a single product.
func (p Product) Validate() error {
	switch {
	case p.ID == "":
		return fmt.Errorf("product id is required")
	case p.Name == "":
		return fmt.Errorf("product %s: name is required", p.ID)
	case !p.Category.Valid():
		return fmt.Errorf("product %s: unknown category %q", p.ID, p.Category)
	case !p.Type.Valid():
		return fmt.Errorf("product %s: unknown type %q", p.ID, p.Type)
	case p.Sheets <= 0:
		return fmt.Errorf("product %s: sheets must be positive", p.ID)
	case p.Price.IsNegative():
		return fmt.Errorf("product %s: price must not be negative", p.ID)
	case p.OriginalPrice != nil && p.OriginalPrice.LessThan(p.Price):
		return fmt.Errorf("product %s: original price below price", p.ID)
	case p.Rating < 0 || p.Rating > 5:
		return fmt.Errorf("product %s: rating out of range", p.ID)
	case p.ReviewCount < 0:
		return fmt.Errorf("product %s: review count must not be negative", p.ID)
	}
	return nil
}

// Review is a customer review attached to a product.
type Review struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	UserName string    `json:"user_name"`
	Avatar   string    `json:"avatar"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}

// ProductUpdate carries the fields an admin may change on a product.
type ProductUpdate struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Image         *string          `json:"image"`
	Price         *decimal.Decimal `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	InStock       *bool            `json:"in_stock"`
	IsBestseller  *bool            `json:"is_bestseller"`
	IsNew         *bool            `json:"is_new"`
}

// Clone returns a copy of p that shares no slices or pointers with it.
func (p Product) Clone() Product {
	c := p
	c.Features = slices.Clone(p.Features)
	c.Reviews = slices.Clone(p.Reviews)
	if p.OriginalPrice != nil {
		original := *p.OriginalPrice
		c.OriginalPrice = &original
	}
	return c
}

// Apply returns a copy of p with the update applied. p is left untouched.
func (u ProductUpdate) Apply(p Product) Product {
	next := p.Clone()

	if u.Name != nil {
		next.Name = *u.Name
	}
	if u.Description != nil {
		next.Description = *u.Description
	}
	if u.Image != nil {
		next.Image = *u.Image
	}
	if u.Price != nil {
		next.Price = *u.Price
	}
	if u.OriginalPrice != nil {
		original := *u.OriginalPrice
		next.OriginalPrice = &original
	}
	if u.InStock != nil {
		next.InStock = *u.InStock
	}
	if u.IsBestseller != nil {
		next.IsBestseller = *u.IsBestseller
	}
	if u.IsNew != nil {
		next.IsNew = *u.IsNew
	}
	return next
}
