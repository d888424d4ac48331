package catalog

import (
	"fmt"
	"maps"
	"time"

	domain "github.com/mohammadpnp/creations-admin/internal/domain/catalog"
	"github.com/mohammadpnp/creations-admin/internal/domain/slug"
)

const fallbackSlugPrefix = "product"

// rowValidator turns parsed rows into drafts. It remembers the slugs it has
// handed out so a file cannot collide with itself.
type rowValidator struct {
	now  func() time.Time
	seen map[string]int
}

func newRowValidator(now func() time.Time) *rowValidator {
	if now == nil {
		now = time.Now
	}
	return &rowValidator{now: now, seen: make(map[string]int)}
}

// Validate returns either a draft or a *domain.RowError, never both.
func (v *rowValidator) Validate(row domain.ImportRow) (domain.ProductDraft, error) {
	name, hasName := row.Value(domain.ColumnName)
	rawPrice, hasPrice := row.Value(domain.ColumnPrice)
	if !hasName || !hasPrice {
		return domain.ProductDraft{}, rowError(row, fmt.Sprintf("%s and %s are required", domain.ColumnName, domain.ColumnPrice))
	}

	price, ok := parsePrice(rawPrice)
	if !ok {
		return domain.ProductDraft{}, rowError(row, fmt.Sprintf("invalid price %q", rawPrice))
	}

	source := name
	if explicit, ok := row.Value(domain.ColumnSlug); ok {
		source = explicit
	}
	productSlug := slug.Normalize(source)
	if productSlug == "" {
		productSlug = slug.Fallback(fallbackSlugPrefix, v.now(), row.Number)
	}
	if first, dup := v.seen[productSlug]; dup {
		return domain.ProductDraft{}, rowError(row, fmt.Sprintf("duplicate slug %q, already used in row %d", productSlug, first))
	}

	rawImages, _ := row.Value(domain.ColumnImages)
	rawStock, _ := row.Value(domain.ColumnStockQuantity)

	draft := domain.ProductDraft{
		Name:          name,
		Slug:          productSlug,
		Description:   optionalText(row.Fields[domain.ColumnDescription]),
		Price:         price,
		ProductType:   optionalText(row.Fields[domain.ColumnProductType]),
		ImageURL:      optionalText(row.Fields[domain.ColumnImageURL]),
		Images:        parseGallery(rawImages),
		StockQuantity: parseStock(rawStock),
	}
	if err := draft.Validate(); err != nil {
		return domain.ProductDraft{}, rowError(row, err.Error())
	}

	v.seen[productSlug] = row.Number
	return draft, nil
}

func rowError(row domain.ImportRow, reason string) *domain.RowError {
	return &domain.RowError{Row: row.Number, Reason: reason, Raw: maps.Clone(row.Fields)}
}
