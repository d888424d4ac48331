package repository

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/creations-admin/internal/domain/media"
	"github.com/mohammadpnp/creations-admin/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(ctx context.Context, item domain.Item) (*domain.Item, error) {
	row := models.Media{
		StorageBucketID:   item.StorageBucketID,
		StorageObjectPath: item.StorageObjectPath,
		AltText:           item.AltText,
		Title:             item.Title,
		Caption:           item.Caption,
		OriginalFilename:  item.OriginalFilename,
		MimeType:          item.MimeType,
		SizeKB:            item.SizeKB,
		UploadedBy:        item.UploadedBy,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create media item: %w", err)
	}
	return toDomainMedia(row), nil
}

func (r *MediaRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	var row models.Media
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMediaNotFound
		}
		return nil, fmt.Errorf("get media item: %w", err)
	}
	return toDomainMedia(row), nil
}

func (r *MediaRepository) UpdateMetadata(ctx context.Context, id string, changes domain.MetadataChanges) (*domain.Item, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Media{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"alt_text": changes.AltText,
			"title":    changes.Title,
			"caption":  changes.Caption,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("update media item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrMediaNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *MediaRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Media{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete media item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMediaNotFound
	}
	return nil
}

func (r *MediaRepository) List(ctx context.Context, offset, limit int) (domain.Page, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Media{}).Count(&total).Error; err != nil {
		return domain.Page{}, fmt.Errorf("count media items: %w", err)
	}

	var rows []models.Media
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return domain.Page{}, fmt.Errorf("list media items: %w", err)
	}

	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, *toDomainMedia(row))
	}
	return domain.Page{Items: items, Total: total}, nil
}

func toDomainMedia(row models.Media) *domain.Item {
	return &domain.Item{
		ID:                row.ID,
		StorageBucketID:   row.StorageBucketID,
		StorageObjectPath: row.StorageObjectPath,
		AltText:           row.AltText,
		Title:             row.Title,
		Caption:           row.Caption,
		OriginalFilename:  row.OriginalFilename,
		MimeType:          row.MimeType,
		SizeKB:            row.SizeKB,
		UploadedBy:        row.UploadedBy,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
