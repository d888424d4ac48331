package catalog_test

import (
	"context"
	"sync"

	domain "github.com/mohammadpnp/creations-admin/internal/domain/catalog"
)

type fakeBulkWriter struct {
	calls     int
	gotDrafts []domain.ProductDraft
	stored    int64
	err       error
}

func (f *fakeBulkWriter) InsertProducts(ctx context.Context, drafts []domain.ProductDraft) (int64, error) {
	f.calls++
	f.gotDrafts = drafts
	if f.err != nil {
		return 0, f.err
	}
	if f.stored > 0 {
		return f.stored, nil
	}
	return int64(len(drafts)), nil
}

type fakeRevalidator struct {
	mu    sync.Mutex
	paths []string
	err   error
}

func (f *fakeRevalidator) Revalidate(ctx context.Context, paths ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, paths...)
	return f.err
}

type fakeProductRepository struct {
	products  map[int64]*domain.Product
	nextID    int64
	createErr error
	updateErr error
	deleted   []int64
	listErr   error
	gotOffset int
	gotLimit  int
}

func newFakeProductRepository(existing ...*domain.Product) *fakeProductRepository {
	repo := &fakeProductRepository{products: make(map[int64]*domain.Product), nextID: 100}
	for _, p := range existing {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProductRepository) Create(ctx context.Context, draft domain.ProductDraft) (*domain.Product, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	p := &domain.Product{ID: f.nextID, ProductDraft: draft}
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeProductRepository) Update(ctx context.Context, id int64, draft domain.ProductDraft) (*domain.Product, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if _, ok := f.products[id]; !ok {
		return nil, domain.ErrProductNotFound
	}
	p := &domain.Product{ID: id, ProductDraft: draft}
	f.products[id] = p
	return p, nil
}

func (f *fakeProductRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := f.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(f.products, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeProductRepository) List(ctx context.Context, offset, limit int) (domain.ProductPage, error) {
	f.gotOffset = offset
	f.gotLimit = limit
	if f.listErr != nil {
		return domain.ProductPage{}, f.listErr
	}
	items := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		items = append(items, *p)
	}
	return domain.ProductPage{Items: items, Total: int64(len(items))}, nil
}

type fakeCategoryRepository struct {
	got    domain.Category
	err    error
	listed []domain.Category
}

func (f *fakeCategoryRepository) Create(ctx context.Context, category domain.Category) (*domain.Category, error) {
	f.got = category
	if f.err != nil {
		return nil, f.err
	}
	category.ID = 1
	return &category, nil
}

func (f *fakeCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.listed, nil
}
