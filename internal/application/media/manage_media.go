package media

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mohammadpnp/creations-admin/internal/domain/account"
	domain "github.com/mohammadpnp/creations-admin/internal/domain/media"
	"github.com/mohammadpnp/creations-admin/internal/domain/paging"
	"go.uber.org/zap"
)

type MediaItemOutput struct {
	ID               string    `json:"id"`
	Path             string    `json:"path"`
	URL              string    `json:"url"`
	AltText          *string   `json:"alt_text"`
	Title            *string   `json:"title"`
	Caption          *string   `json:"caption"`
	OriginalFilename *string   `json:"original_filename"`
	MimeType         *string   `json:"mime_type"`
	SizeKB           *int64    `json:"size_kb"`
	CreatedAt        time.Time `json:"created_at"`
}

type ListMediaItemsInput struct {
	Page  int
	Limit int
}

type ListMediaItemsOutput struct {
	Items      []MediaItemOutput `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

type ListMediaItems interface {
	Execute(ctx context.Context, actor account.Principal, in ListMediaItemsInput) (ListMediaItemsOutput, error)
}

type listMediaItems struct {
	repo  domain.Repository
	store domain.ObjectStore
}

func NewListMediaItems(repo domain.Repository, store domain.ObjectStore) ListMediaItems {
	return &listMediaItems{repo: repo, store: store}
}

func (uc *listMediaItems) Execute(ctx context.Context, actor account.Principal, in ListMediaItemsInput) (ListMediaItemsOutput, error) {
	if err := actor.RequireAdmin(); err != nil {
		return ListMediaItemsOutput{}, err
	}

	req := paging.Normalize(in.Page, in.Limit)

	result, err := uc.repo.List(ctx, req.Offset(), req.Limit)
	if err != nil {
		return ListMediaItemsOutput{}, fmt.Errorf("%w: %v", ErrListMedia, err)
	}

	items := make([]MediaItemOutput, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toMediaItemOutput(&result.Items[i], uc.store))
	}

	return ListMediaItemsOutput{
		Items:      items,
		Total:      result.Total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: req.TotalPages(result.Total),
	}, nil
}

type UpdateMediaMetadataInput struct {
	ID      string
	AltText string
	Title   string
	Caption string
}

type UpdateMediaMetadata interface {
	Execute(ctx context.Context, actor account.Principal, in UpdateMediaMetadataInput) (MediaItemOutput, error)
}

type updateMediaMetadata struct {
	repo        domain.Repository
	store       domain.ObjectStore
	revalidator revalidator
	logger      *zap.Logger
}

func NewUpdateMediaMetadata(repo domain.Repository, store domain.ObjectStore, r revalidator, logger *zap.Logger) UpdateMediaMetadata {
	return &updateMediaMetadata{repo: repo, store: store, revalidator: r, logger: logger}
}

func (uc *updateMediaMetadata) Execute(ctx context.Context, actor account.Principal, in UpdateMediaMetadataInput) (MediaItemOutput, error) {
	if err := actor.RequireAdmin(); err != nil {
		return MediaItemOutput{}, err
	}
	if _, err := uuid.Parse(in.ID); err != nil {
		return MediaItemOutput{}, ErrInvalidMediaID
	}

	item, err := uc.repo.UpdateMetadata(ctx, in.ID, domain.MetadataChanges{
		AltText: optionalText(in.AltText),
		Title:   optionalText(in.Title),
		Caption: optionalText(in.Caption),
	})
	if err != nil {
		if errors.Is(err, domain.ErrMediaNotFound) {
			return MediaItemOutput{}, ErrMediaNotFound
		}
		return MediaItemOutput{}, fmt.Errorf("%w: %v", ErrUpdateMedia, err)
	}

	if err := uc.revalidator.Revalidate(ctx, adminMediaPath); err != nil {
		uc.logger.Error("revalidate paths", zap.String("path", adminMediaPath), zap.Error(err))
	}
	return toMediaItemOutput(item, uc.store), nil
}

type DeleteMediaItem interface {
	Execute(ctx context.Context, actor account.Principal, id string) error
}

type deleteMediaItem struct {
	repo        domain.Repository
	store       domain.ObjectStore
	revalidator revalidator
	logger      *zap.Logger
}

func NewDeleteMediaItem(repo domain.Repository, store domain.ObjectStore, r revalidator, logger *zap.Logger) DeleteMediaItem {
	return &deleteMediaItem{repo: repo, store: store, revalidator: r, logger: logger}
}

// Execute deletes the metadata row before the stored object.
func (uc *deleteMediaItem) Execute(ctx context.Context, actor account.Principal, id string) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidMediaID
	}

	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMediaNotFound) {
			return ErrMediaNotFound
		}
		return fmt.Errorf("%w: %v", ErrDeleteMedia, err)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrMediaNotFound) {
			return ErrMediaNotFound
		}
		return fmt.Errorf("%w: %v", ErrDeleteMedia, err)
	}

	if err := uc.revalidator.Revalidate(ctx, adminMediaPath); err != nil {
		uc.logger.Error("revalidate paths", zap.String("path", adminMediaPath), zap.Error(err))
	}

	if item.StorageBucketID != uc.store.Bucket() {
		uc.logger.Warn("media object left in foreign bucket",
			zap.String("media_id", id),
			zap.String("bucket", item.StorageBucketID),
		)
		return nil
	}
	if err := uc.store.Remove(ctx, item.StorageObjectPath); err != nil {
		return fmt.Errorf("%w: %v", ErrRemoveObject, err)
	}
	return nil
}

func toMediaItemOutput(item *domain.Item, store domain.ObjectStore) MediaItemOutput {
	return MediaItemOutput{
		ID:               item.ID,
		Path:             item.StorageObjectPath,
		URL:              store.PublicURL(item.StorageObjectPath),
		AltText:          item.AltText,
		Title:            item.Title,
		Caption:          item.Caption,
		OriginalFilename: item.OriginalFilename,
		MimeType:         item.MimeType,
		SizeKB:           item.SizeKB,
		CreatedAt:        item.CreatedAt,
	}
}

func optionalText(raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	return &v
}
