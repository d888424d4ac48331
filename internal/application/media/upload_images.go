package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mohammadpnp/creations-admin/internal/domain/account"
	domain "github.com/mohammadpnp/creations-admin/internal/domain/media"
	"go.uber.org/zap"
)

const (
	objectPrefix   = "public"
	adminMediaPath = "/admin/media"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type revalidator interface {
	Revalidate(ctx context.Context, paths ...string) error
}

type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type UploadImagesInput struct {
	Files []UploadFile
}

type UploadedImage struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

type UploadImagesOutput struct {
	Uploaded []UploadedImage `json:"uploaded"`
	Errors   []string        `json:"errors,omitempty"`
	Message  string          `json:"message"`
}

type UploadImages interface {
	Execute(ctx context.Context, actor account.Principal, in UploadImagesInput) (UploadImagesOutput, error)
}

type uploadImages struct {
	repo        domain.Repository
	store       domain.ObjectStore
	revalidator revalidator
	logger      *zap.Logger
	newID       func() string
}

func NewUploadImages(repo domain.Repository, store domain.ObjectStore, r revalidator, logger *zap.Logger) UploadImages {
	return &uploadImages{
		repo:        repo,
		store:       store,
		revalidator: r,
		logger:      logger,
		newID:       func() string { return uuid.NewString() },
	}
}

// Execute stores each file independently; one bad file does not stop the rest.
func (uc *uploadImages) Execute(ctx context.Context, actor account.Principal, in UploadImagesInput) (UploadImagesOutput, error) {
	if err := actor.RequireAdmin(); err != nil {
		return UploadImagesOutput{}, err
	}

	files := make([]UploadFile, 0, len(in.Files))
	for _, f := range in.Files {
		if f.Size > 0 && f.Body != nil {
			files = append(files, f)
		}
	}
	if len(files) == 0 {
		return UploadImagesOutput{}, ErrNoFiles
	}

	out := UploadImagesOutput{Uploaded: make([]UploadedImage, 0, len(files))}
	for _, f := range files {
		uploaded, err := uc.uploadOne(ctx, actor, f)
		if err != nil {
			uc.logger.Warn("image upload failed", zap.String("file", f.Filename), zap.Error(err))
			out.Errors = append(out.Errors, fmt.Sprintf("%s: %v", f.Filename, err))
			continue
		}
		out.Uploaded = append(out.Uploaded, uploaded)
	}

	if len(out.Uploaded) == 0 {
		out.Message = "no images were uploaded"
		return out, fmt.Errorf("%w: %s", ErrUploadFailed, strings.Join(out.Errors, "; "))
	}

	out.Message = fmt.Sprintf("uploaded %d images", len(out.Uploaded))
	if len(out.Errors) > 0 {
		out.Message = fmt.Sprintf("uploaded %d of %d images", len(out.Uploaded), len(files))
	}

	if err := uc.revalidator.Revalidate(ctx, adminMediaPath); err != nil {
		uc.logger.Error("revalidate paths", zap.String("path", adminMediaPath), zap.Error(err))
	}
	return out, nil
}

func (uc *uploadImages) uploadOne(ctx context.Context, actor account.Principal, f UploadFile) (UploadedImage, error) {
	contentType, ext, err := detectImageType(f.Filename, f.ContentType)
	if err != nil {
		return UploadedImage{}, err
	}

	key := objectPrefix + "/" + uc.newID() + ext
	if err := uc.store.Put(ctx, key, f.Body, f.Size, contentType); err != nil {
		return UploadedImage{}, fmt.Errorf("store object: %w", err)
	}

	name := f.Filename
	sizeKB := (f.Size + 1023) / 1024
	uploader := actor.UserID
	item, err := uc.repo.Create(ctx, domain.Item{
		StorageBucketID:   uc.store.Bucket(),
		StorageObjectPath: key,
		AltText:           &name,
		Title:             &name,
		OriginalFilename:  &name,
		MimeType:          &contentType,
		SizeKB:            &sizeKB,
		UploadedBy:        &uploader,
	})
	if err != nil {
		if rmErr := uc.store.Remove(ctx, key); rmErr != nil {
			err = errors.Join(err, rmErr)
		}
		return UploadedImage{}, fmt.Errorf("save metadata: %w", err)
	}

	return UploadedImage{
		ID:   item.ID,
		Name: name,
		Path: key,
		URL:  uc.store.PublicURL(key),
	}, nil
}

func detectImageType(filename, declared string) (string, string, error) {
	if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
		if ext, ok := imageExtensions[mediaType]; ok {
			return mediaType, ext, nil
		}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	for mediaType, known := range imageExtensions {
		if known == ext {
			return mediaType, ext, nil
		}
	}
	return "", "", ErrUnsupportedFormat
}
