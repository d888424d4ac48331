package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/mohammadpnp/creations-admin/internal/domain/account"
	"github.com/mohammadpnp/creations-admin/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	var row models.Profile
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile by id: %w", err)
	}

	return toDomainProfile(row), nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	var rows []models.Profile
	if err := r.db.WithContext(ctx).
		Order("role ASC").
		Order("username ASC NULLS LAST").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	profiles := make([]domain.Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, *toDomainProfile(row))
	}
	return profiles, nil
}

func (r *ProfileRepository) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	result := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(map[string]any{"role": string(role), "updated_at": time.Now()})
	if result.Error != nil {
		return fmt.Errorf("update role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, id string, changes domain.ProfileChanges) (*domain.Profile, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"username":   changes.Username,
			"full_name":  changes.FullName,
			"website":    changes.Website,
			"avatar_url": changes.AvatarURL,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		if _, ok := uniqueViolation(result.Error); ok {
			return nil, fmt.Errorf("update profile: %w", domain.ErrUsernameTaken)
		}
		return nil, fmt.Errorf("update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrProfileNotFound
	}
	return r.GetByID(ctx, id)
}

func toDomainProfile(row models.Profile) *domain.Profile {
	return &domain.Profile{
		ID:        row.ID,
		Username:  row.Username,
		FullName:  row.FullName,
		Website:   row.Website,
		AvatarURL: row.AvatarURL,
		Role:      domain.Role(row.Role),
		UpdatedAt: row.UpdatedAt,
	}
}
