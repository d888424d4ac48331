package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	domain "github.com/mohammadpnp/creations-admin/internal/domain/catalog"
	"github.com/mohammadpnp/creations-admin/internal/domain/slug"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ProductInput is the admin form. Images is a comma-separated URL list.
type ProductInput struct {
	Name          string `validate:"required"`
	Price         string `validate:"required"`
	Slug          string
	Description   string
	ProductType   string
	ImageURL      string `validate:"omitempty,url"`
	Images        string
	StockQuantity string
}

type ProductOutput struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   *string   `json:"description"`
	Price         float64   `json:"price"`
	ProductType   *string   `json:"product_type"`
	ImageURL      *string   `json:"image_url"`
	Images        []string  `json:"images"`
	StockQuantity int       `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (in ProductInput) trimmed() ProductInput {
	return ProductInput{
		Name:          strings.TrimSpace(in.Name),
		Price:         strings.TrimSpace(in.Price),
		Slug:          strings.TrimSpace(in.Slug),
		Description:   strings.TrimSpace(in.Description),
		ProductType:   strings.TrimSpace(in.ProductType),
		ImageURL:      strings.TrimSpace(in.ImageURL),
		Images:        strings.TrimSpace(in.Images),
		StockQuantity: strings.TrimSpace(in.StockQuantity),
	}
}

func buildProductDraft(raw ProductInput) (domain.ProductDraft, error) {
	in := raw.trimmed()
	if err := validate.Struct(in); err != nil {
		return domain.ProductDraft{}, fmt.Errorf("%w: %v", ErrInvalidProductInput, err)
	}

	price, ok := parsePrice(in.Price)
	if !ok {
		return domain.ProductDraft{}, fmt.Errorf("%w: invalid price %q", ErrInvalidProductInput, in.Price)
	}

	source := in.Name
	if in.Slug != "" {
		source = in.Slug
	}
	productSlug := slug.Normalize(source)
	if productSlug == "" {
		return domain.ProductDraft{}, ErrSlugUnresolvable
	}

	draft := domain.ProductDraft{
		Name:          in.Name,
		Slug:          productSlug,
		Description:   optionalText(in.Description),
		Price:         price,
		ProductType:   optionalText(in.ProductType),
		ImageURL:      optionalText(in.ImageURL),
		Images:        splitImageList(in.Images),
		StockQuantity: parseStock(in.StockQuantity),
	}
	if err := draft.Validate(); err != nil {
		return domain.ProductDraft{}, fmt.Errorf("%w: %v", ErrInvalidProductInput, err)
	}
	return draft, nil
}

func toProductOutput(p *domain.Product) ProductOutput {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProductOutput{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         p.Price,
		ProductType:   p.ProductType,
		ImageURL:      p.ImageURL,
		Images:        images,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
