package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/mohammadpnp/creations-admin/internal/domain/account"
	domain "github.com/mohammadpnp/creations-admin/internal/domain/catalog"
	"go.uber.org/zap"
)

type CreateProduct interface {
	Execute(ctx context.Context, actor account.Principal, in ProductInput) (ProductOutput, error)
}

type UpdateProduct interface {
	Execute(ctx context.Context, actor account.Principal, id int64, in ProductInput) (ProductOutput, error)
}

type DeleteProduct interface {
	Execute(ctx context.Context, actor account.Principal, id int64) error
}

type createProduct struct {
	repo        domain.ProductRepository
	revalidator domain.Revalidator
	logger      *zap.Logger
}

func NewCreateProduct(repo domain.ProductRepository, revalidator domain.Revalidator, logger *zap.Logger) CreateProduct {
	return &createProduct{repo: repo, revalidator: revalidator, logger: logger}
}

func (uc *createProduct) Execute(ctx context.Context, actor account.Principal, in ProductInput) (ProductOutput, error) {
	if err := actor.RequireAdmin(); err != nil {
		return ProductOutput{}, err
	}

	draft, err := buildProductDraft(in)
	if err != nil {
		return ProductOutput{}, err
	}

	product, err := uc.repo.Create(ctx, draft)
	if err != nil {
		return ProductOutput{}, saveProductError(err)
	}

	revalidate(ctx, uc.logger, uc.revalidator,
		domain.AdminProductsPath,
		domain.CreationsPath,
		product.Path(),
	)

	return toProductOutput(product), nil
}

type updateProduct struct {
	repo        domain.ProductRepository
	revalidator domain.Revalidator
	logger      *zap.Logger
}

func NewUpdateProduct(repo domain.ProductRepository, revalidator domain.Revalidator, logger *zap.Logger) UpdateProduct {
	return &updateProduct{repo: repo, revalidator: revalidator, logger: logger}
}

func (uc *updateProduct) Execute(ctx context.Context, actor account.Principal, id int64, in ProductInput) (ProductOutput, error) {
	if err := actor.RequireAdmin(); err != nil {
		return ProductOutput{}, err
	}

	draft, err := buildProductDraft(in)
	if err != nil {
		return ProductOutput{}, err
	}

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return ProductOutput{}, saveProductError(err)
	}

	product, err := uc.repo.Update(ctx, id, draft)
	if err != nil {
		return ProductOutput{}, saveProductError(err)
	}

	paths := []string{
		domain.AdminProductsPath,
		domain.CreationsPath,
		product.Path(),
		domain.ProductTypePath(product.ProductType),
	}
	if oldPath := current.Path(); oldPath != product.Path() {
		paths = append(paths, oldPath, domain.ProductTypePath(current.ProductType))
	}
	revalidate(ctx, uc.logger, uc.revalidator, paths...)

	return toProductOutput(product), nil
}

type deleteProduct struct {
	repo        domain.ProductRepository
	revalidator domain.Revalidator
	logger      *zap.Logger
}

func NewDeleteProduct(repo domain.ProductRepository, revalidator domain.Revalidator, logger *zap.Logger) DeleteProduct {
	return &deleteProduct{repo: repo, revalidator: revalidator, logger: logger}
}

func (uc *deleteProduct) Execute(ctx context.Context, actor account.Principal, id int64) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("%w: %v", ErrDeleteProduct, err)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("%w: %v", ErrDeleteProduct, err)
	}

	revalidate(ctx, uc.logger, uc.revalidator,
		domain.AdminProductsPath,
		domain.CreationsPath,
		current.Path(),
		domain.ProductTypePath(current.ProductType),
	)
	return nil
}

func saveProductError(err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return ErrProductNotFound
	case errors.Is(err, domain.ErrSlugConflict):
		return ErrSlugConflict
	default:
		return fmt.Errorf("%w: %v", ErrSaveProduct, err)
	}
}
