package media

import (
	"errors"

	domain "github.com/mohammadpnp/creations-admin/internal/domain/media"
)

var (
	ErrNoFiles           = errors.New("please select at least one image")
	ErrUploadFailed      = errors.New("no images were uploaded")
	ErrInvalidMediaID    = errors.New("invalid media id")
	ErrUpdateMedia       = errors.New("failed to update media item")
	ErrDeleteMedia       = errors.New("failed to delete media item")
	ErrRemoveObject      = errors.New("media row deleted but the stored object could not be removed")
	ErrListMedia         = errors.New("failed to list media items")
	ErrMediaNotFound     = domain.ErrMediaNotFound
	ErrUnsupportedFormat = errors.New("unsupported image format")
)
