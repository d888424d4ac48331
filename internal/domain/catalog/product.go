package catalog

import (
	"fmt"
	"math"
	"time"

	"github.com/mohammadpnp/creations-admin/internal/domain/slug"
)

// ProductDraft is a validated product ready to be stored.
type ProductDraft struct {
	Name          string
	Slug          string
	Description   *string
	Price         float64
	ProductType   *string
	ImageURL      *string
	Images        []string
	StockQuantity int
}

// Validate checks the rules every stored product must satisfy.
func (d ProductDraft) Validate() error {
	switch {
	case d.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	case !slug.Valid(d.Slug):
		return fmt.Errorf("%w: slug %q is not normalized", ErrInvalidProduct, d.Slug)
	case math.IsNaN(d.Price) || math.IsInf(d.Price, 0):
		return fmt.Errorf("%w: price is not a finite number", ErrInvalidProduct)
	case d.Price < 0:
		return fmt.Errorf("%w: price %g is negative", ErrInvalidProduct, d.Price)
	case d.StockQuantity < 0:
		return fmt.Errorf("%w: stock quantity %d is negative", ErrInvalidProduct, d.StockQuantity)
	}
	return nil
}

// Path is the public page of the product.
func (d ProductDraft) Path() string {
	return ProductPath(d.ProductType, d.Slug)
}

type Product struct {
	ID int64
	ProductDraft
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	AdminProductsPath = "/admin/products"
	CreationsPath     = "/creations"
)

// ProductPath builds /creations/<type>/<slug>; untyped products live under "all".
func ProductPath(productType *string, productSlug string) string {
	return CreationsPath + "/" + typeSegment(productType) + "/" + productSlug
}

// ProductTypePath is the listing page of one category tag.
func ProductTypePath(productType *string) string {
	return CreationsPath + "/" + typeSegment(productType)
}

func typeSegment(productType *string) string {
	if productType == nil || *productType == "" {
		return "all"
	}
	return *productType
}

type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description *string
}
