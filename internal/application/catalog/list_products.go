package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/mohammadpnp/creations-admin/internal/domain/account"
	domain "github.com/mohammadpnp/creations-admin/internal/domain/catalog"
	"github.com/mohammadpnp/creations-admin/internal/domain/paging"
)

type ListProductsInput struct {
	Page  int
	Limit int
}

type ListProductsOutput struct {
	Items      []ProductOutput `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

type ListProducts interface {
	Execute(ctx context.Context, actor account.Principal, in ListProductsInput) (ListProductsOutput, error)
}

type GetProduct interface {
	Execute(ctx context.Context, actor account.Principal, id int64) (ProductOutput, error)
}

type ListCategories interface {
	Execute(ctx context.Context, actor account.Principal) ([]CategoryOutput, error)
}

type listProducts struct {
	repo domain.ProductRepository
}

func NewListProducts(repo domain.ProductRepository) ListProducts {
	return &listProducts{repo: repo}
}

func (uc *listProducts) Execute(ctx context.Context, actor account.Principal, in ListProductsInput) (ListProductsOutput, error) {
	if err := actor.RequireAdmin(); err != nil {
		return ListProductsOutput{}, err
	}

	req := paging.Normalize(in.Page, in.Limit)
	result, err := uc.repo.List(ctx, req.Offset(), req.Limit)
	if err != nil {
		return ListProductsOutput{}, fmt.Errorf("%w: %v", ErrListProducts, err)
	}

	items := make([]ProductOutput, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toProductOutput(&result.Items[i]))
	}

	return ListProductsOutput{
		Items:      items,
		Total:      result.Total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: req.TotalPages(result.Total),
	}, nil
}

type getProduct struct {
	repo domain.ProductRepository
}

func NewGetProduct(repo domain.ProductRepository) GetProduct {
	return &getProduct{repo: repo}
}

func (uc *getProduct) Execute(ctx context.Context, actor account.Principal, id int64) (ProductOutput, error) {
	if err := actor.RequireAdmin(); err != nil {
		return ProductOutput{}, err
	}

	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return ProductOutput{}, ErrProductNotFound
		}
		return ProductOutput{}, fmt.Errorf("%w: %v", ErrGetProduct, err)
	}
	return toProductOutput(product), nil
}

type listCategories struct {
	repo domain.CategoryRepository
}

func NewListCategories(repo domain.CategoryRepository) ListCategories {
	return &listCategories{repo: repo}
}

// Execute feeds the category pickers on the product and article forms.
func (uc *listCategories) Execute(ctx context.Context, actor account.Principal) ([]CategoryOutput, error) {
	if err := actor.RequireContentEditor(); err != nil {
		return nil, err
	}

	categories, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListCategories, err)
	}

	out := make([]CategoryOutput, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryOutput(&categories[i]))
	}
	return out, nil
}

func toCategoryOutput(c *domain.Category) CategoryOutput {
	return CategoryOutput{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}
