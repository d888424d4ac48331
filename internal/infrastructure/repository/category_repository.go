package repository

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/creations-admin/internal/domain/catalog"
	"github.com/mohammadpnp/creations-admin/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

const categoryNameConstraint = "categories_name_key"

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category domain.Category) (*domain.Category, error) {
	row := models.Category{
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if constraint == categoryNameConstraint {
				return nil, fmt.Errorf("create category: %w", domain.ErrCategoryNameConflict)
			}
			return nil, fmt.Errorf("create category: %w", domain.ErrCategorySlugConflict)
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	return &domain.Category{
		ID:          row.ID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
	}, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var rows []models.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, domain.Category{
			ID:          row.ID,
			Name:        row.Name,
			Slug:        row.Slug,
			Description: row.Description,
		})
	}
	return categories, nil
}
