// Package seed decodes the fixed storefront data set that ships inside the
// binary: the product catalog, review templates and demo accounts.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/example/cleandrop/internal/models"
)

//go:embed seed.yaml
var seedYAML []byte

// Data is the decoded fact table.
type Data struct {
	Products []models.Product
	Users    []models.User
}

type document struct {
	Products []productRecord  `yaml:"products"`
	Reviews  []reviewTemplate `yaml:"reviews"`
	Users    []userRecord     `yaml:"users"`
}

type productRecord struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Price         string   `yaml:"price"`
	OriginalPrice string   `yaml:"original_price"`
	Image         string   `yaml:"image"`
	Category      string   `yaml:"category"`
	Type          string   `yaml:"type"`
	Features      []string `yaml:"features"`
	Sheets        int      `yaml:"sheets"`
	InStock       bool     `yaml:"in_stock"`
	Rating        float64  `yaml:"rating"`
	ReviewCount   int      `yaml:"review_count"`
	IsBestseller  bool     `yaml:"is_bestseller"`
	IsNew         bool     `yaml:"is_new"`
}

type reviewTemplate struct {
	Name    string `yaml:"name"`
	Comment string `yaml:"comment"`
	Rating  int    `yaml:"rating"`
}

type userRecord struct {
	ID         string    `yaml:"id"`
	Email      string    `yaml:"email"`
	Name       string    `yaml:"name"`
	AvatarSeed string    `yaml:"avatar_seed"`
	Role       string    `yaml:"role"`
	CreatedAt  time.Time `yaml:"created_at"`
}

// Load decodes the embedded data set. Review dates are spread over the days
// before now.
func Load(now time.Time) (Data, error) {
	return Decode(seedYAML, now)
}

// Decode parses a seed document in the embedded format.
func Decode(raw []byte, now time.Time) (Data, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Data{}, fmt.Errorf("decode seed: %w", err)
	}

	data := Data{
		Products: make([]models.Product, 0, len(doc.Products)),
		Users:    make([]models.User, 0, len(doc.Users)),
	}

	for _, rec := range doc.Products {
		product, err := rec.toProduct()
		if err != nil {
			return Data{}, err
		}
		product.Reviews = generateReviews(product.ID, doc.Reviews, now)
		if err := product.Validate(); err != nil {
			return Data{}, fmt.Errorf("seed product: %w", err)
		}
		data.Products = append(data.Products, product)
	}

	for _, rec := range doc.Users {
		role, err := models.ParseRole(rec.Role)
		if err != nil {
			return Data{}, fmt.Errorf("seed user %s: %w", rec.ID, err)
		}
		data.Users = append(data.Users, models.User{
			ID:        rec.ID,
			Email:     rec.Email,
			Name:      rec.Name,
			Avatar:    models.AvatarURL(rec.AvatarSeed),
			Role:      role,
			CreatedAt: rec.CreatedAt.UTC(),
		})
	}

	return data, nil
}

func (rec productRecord) toProduct() (models.Product, error) {
	price, err := decimal.NewFromString(rec.Price)
	if err != nil {
		return models.Product{}, fmt.Errorf("seed product %s: invalid price %q: %w", rec.ID, rec.Price, err)
	}

	product := models.Product{
		ID:           rec.ID,
		Name:         rec.Name,
		Description:  rec.Description,
		Image:        rec.Image,
		Category:     models.Category(rec.Category),
		Type:         models.ProductType(rec.Type),
		Features:     rec.Features,
		Sheets:       rec.Sheets,
		Price:        price,
		InStock:      rec.InStock,
		Rating:       rec.Rating,
		ReviewCount:  rec.ReviewCount,
		IsBestseller: rec.IsBestseller,
		IsNew:        rec.IsNew,
	}

	if rec.OriginalPrice != "" {
		original, err := decimal.NewFromString(rec.OriginalPrice)
		if err != nil {
			return models.Product{}, fmt.Errorf("seed product %s: invalid original price %q: %w", rec.ID, rec.OriginalPrice, err)
		}
		product.OriginalPrice = &original
	}

	return product, nil
}

func generateReviews(productID string, templates []reviewTemplate, now time.Time) []models.Review {
	reviews := make([]models.Review, 0, len(templates))
	for i, tmpl := range templates {
		reviews = append(reviews, models.Review{
			ID:       fmt.Sprintf("%s-review-%d", productID, i),
			UserID:   fmt.Sprintf("user-%d", i),
			UserName: tmpl.Name,
			Avatar:   models.AvatarURL(tmpl.Name),
			Rating:   tmpl.Rating,
			Comment:  tmpl.Comment,
			Date:     now.Add(-time.Duration(i+1) * 4 * 24 * time.Hour),
		})
	}
	return reviews
}
