package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mohammadpnp/creations-admin/internal/domain/account"
	domain "github.com/mohammadpnp/creations-admin/internal/domain/catalog"
	"github.com/mohammadpnp/creations-admin/internal/domain/slug"
	"go.uber.org/zap"
)

type CategoryInput struct {
	Name        string `validate:"required"`
	Slug        string
	Description string
}

type CategoryOutput struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

type AddCategory interface {
	Execute(ctx context.Context, actor account.Principal, in CategoryInput) (CategoryOutput, error)
}

type addCategory struct {
	repo        domain.CategoryRepository
	revalidator domain.Revalidator
	logger      *zap.Logger
}

func NewAddCategory(repo domain.CategoryRepository, revalidator domain.Revalidator, logger *zap.Logger) AddCategory {
	return &addCategory{repo: repo, revalidator: revalidator, logger: logger}
}

func (uc *addCategory) Execute(ctx context.Context, actor account.Principal, in CategoryInput) (CategoryOutput, error) {
	if err := actor.RequireAdmin(); err != nil {
		return CategoryOutput{}, err
	}

	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return CategoryOutput{}, fmt.Errorf("%w: %v", ErrInvalidCategoryInput, err)
	}

	source := in.Name
	if s := strings.TrimSpace(in.Slug); s != "" {
		source = s
	}
	categorySlug := slug.Normalize(source)
	if categorySlug == "" {
		return CategoryOutput{}, ErrSlugUnresolvable
	}

	category, err := uc.repo.Create(ctx, domain.Category{
		Name:        in.Name,
		Slug:        categorySlug,
		Description: optionalText(in.Description),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCategoryNameConflict):
			return CategoryOutput{}, ErrCategoryNameConflict
		case errors.Is(err, domain.ErrCategorySlugConflict):
			return CategoryOutput{}, ErrCategorySlugConflict
		}
		return CategoryOutput{}, fmt.Errorf("%w: %v", ErrSaveCategory, err)
	}

	revalidate(ctx, uc.logger, uc.revalidator,
		"/admin/categories/new",
		"/admin/articles/new",
		"/admin/articles/edit",
		"/articles",
	)

	return toCategoryOutput(category), nil
}
