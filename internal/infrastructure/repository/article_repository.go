package repository

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/creations-admin/internal/domain/content"
	"github.com/mohammadpnp/creations-admin/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	var row models.Article
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("get article by id: %w", err)
	}
	return toDomainArticle(row), nil
}

func (r *ArticleRepository) Create(ctx context.Context, draft domain.ArticleDraft) (*domain.Article, error) {
	row := models.Article{
		Title:    draft.Title,
		Slug:     draft.Slug,
		Excerpt:  draft.Excerpt,
		Content:  draft.Content,
		ImageURL: draft.ImageURL,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, articleWriteError("create article", err)
	}
	return toDomainArticle(row), nil
}

func (r *ArticleRepository) Update(ctx context.Context, id int64, draft domain.ArticleDraft) (*domain.Article, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":     draft.Title,
			"slug":      draft.Slug,
			"excerpt":   draft.Excerpt,
			"content":   draft.Content,
			"image_url": draft.ImageURL,
		})
	if result.Error != nil {
		return nil, articleWriteError("update article", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrArticleNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ArticleRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Article{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

func (r *ArticleRepository) List(ctx context.Context, offset, limit int) (domain.ArticlePage, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Article{}).Count(&total).Error; err != nil {
		return domain.ArticlePage{}, fmt.Errorf("count articles: %w", err)
	}

	var rows []models.Article
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return domain.ArticlePage{}, fmt.Errorf("list articles: %w", err)
	}

	items := make([]domain.Article, 0, len(rows))
	for _, row := range rows {
		items = append(items, *toDomainArticle(row))
	}
	return domain.ArticlePage{Items: items, Total: total}, nil
}

func articleWriteError(op string, err error) error {
	if _, ok := uniqueViolation(err); ok {
		return fmt.Errorf("%s: %w", op, domain.ErrSlugConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func toDomainArticle(row models.Article) *domain.Article {
	return &domain.Article{
		ID: row.ID,
		ArticleDraft: domain.ArticleDraft{
			Title:    row.Title,
			Slug:     row.Slug,
			Excerpt:  row.Excerpt,
			Content:  row.Content,
			ImageURL: row.ImageURL,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
