package repository

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/creations-admin/internal/domain/catalog"
	"github.com/mohammadpnp/creations-admin/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var row models.Product
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return toDomainProduct(row), nil
}

func (r *ProductRepository) Create(ctx context.Context, draft domain.ProductDraft) (*domain.Product, error) {
	row := toProductModel(draft)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, productWriteError("create product", err)
	}
	return toDomainProduct(row), nil
}

func (r *ProductRepository) Update(ctx context.Context, id int64, draft domain.ProductDraft) (*domain.Product, error) {
	row := toProductModel(draft)
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":           row.Name,
			"slug":           row.Slug,
			"description":    row.Description,
			"price":          row.Price,
			"product_type":   row.ProductType,
			"image_url":      row.ImageURL,
			"images":         row.Images,
			"stock_quantity": row.StockQuantity,
		})
	if result.Error != nil {
		return nil, productWriteError("update product", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrProductNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) List(ctx context.Context, offset, limit int) (domain.ProductPage, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return domain.ProductPage{}, fmt.Errorf("count products: %w", err)
	}

	var rows []models.Product
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return domain.ProductPage{}, fmt.Errorf("list products: %w", err)
	}

	items := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		items = append(items, *toDomainProduct(row))
	}
	return domain.ProductPage{Items: items, Total: total}, nil
}

func productWriteError(op string, err error) error {
	if constraint, ok := uniqueViolation(err); ok {
		return fmt.Errorf("%s: %w: %s", op, domain.ErrSlugConflict, constraint)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func toProductModel(d domain.ProductDraft) models.Product {
	return models.Product{
		Name:          d.Name,
		Slug:          d.Slug,
		Description:   d.Description,
		Price:         d.Price,
		ImageURL:      d.ImageURL,
		Images:        d.Images,
		ProductType:   d.ProductType,
		StockQuantity: d.StockQuantity,
	}
}

func toDomainProduct(row models.Product) *domain.Product {
	var images []string
	if len(row.Images) > 0 {
		images = []string(row.Images)
	}
	return &domain.Product{
		ID: row.ID,
		ProductDraft: domain.ProductDraft{
			Name:          row.Name,
			Slug:          row.Slug,
			Description:   row.Description,
			Price:         row.Price,
			ProductType:   row.ProductType,
			ImageURL:      row.ImageURL,
			Images:        images,
			StockQuantity: row.StockQuantity,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
