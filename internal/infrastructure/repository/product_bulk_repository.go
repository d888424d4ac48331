package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	domain "github.com/mohammadpnp/creations-admin/internal/domain/catalog"
)

var productCopyColumns = []string{
	"name",
	"slug",
	"description",
	"price",
	"product_type",
	"image_url",
	"images",
	"stock_quantity",
}

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ProductBulkRepository streams a validated batch into products with COPY.
type ProductBulkRepository struct {
	db txBeginner
}

func NewProductBulkRepository(db txBeginner) *ProductBulkRepository {
	return &ProductBulkRepository{db: db}
}

// InsertProducts writes all drafts in one transaction. The returned count is
// the number of rows the server confirmed.
func (r *ProductBulkRepository) InsertProducts(ctx context.Context, drafts []domain.ProductDraft) (int64, error) {
	if len(drafts) == 0 {
		return 0, nil
	}
	for i, d := range drafts {
		if err := d.Validate(); err != nil {
			return 0, fmt.Errorf("draft %d: %w", i, err)
		}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	rows := make([][]any, 0, len(drafts))
	for _, d := range drafts {
		rows = append(rows, []any{
			d.Name,
			d.Slug,
			d.Description,
			d.Price,
			d.ProductType,
			d.ImageURL,
			d.Images,
			d.StockQuantity,
		})
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{"products"}, productCopyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return 0, fmt.Errorf("%w: %s", domain.ErrSlugConflict, constraint)
		}
		return 0, fmt.Errorf("copy products: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit product import: %w", err)
	}

	return copied, nil
}
