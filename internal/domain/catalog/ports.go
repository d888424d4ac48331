package catalog

import "context"

// ProductBulkWriter stores a whole batch or nothing and returns the stored count.
type ProductBulkWriter interface {
	InsertProducts(ctx context.Context, drafts []ProductDraft) (int64, error)
}

type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, draft ProductDraft) (*Product, error)
	Update(ctx context.Context, id int64, draft ProductDraft) (*Product, error)
	Delete(ctx context.Context, id int64) error
	// List returns newest products first.
	List(ctx context.Context, offset, limit int) (ProductPage, error)
}

type ProductPage struct {
	Items []Product
	Total int64
}

type CategoryRepository interface {
	Create(ctx context.Context, category Category) (*Category, error)
	// List returns every category ordered by name.
	List(ctx context.Context) ([]Category, error)
}

// Revalidator signals that cached pages under the given paths are stale.
type Revalidator interface {
	Revalidate(ctx context.Context, paths ...string) error
}
