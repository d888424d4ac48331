package media

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	ErrMediaNotFound = errors.New("media item not found")
)

// Item is the metadata row describing one stored object.
type Item struct {
	ID                string
	StorageBucketID   string
	StorageObjectPath string
	AltText           *string
	Title             *string
	Caption           *string
	OriginalFilename  *string
	MimeType          *string
	SizeKB            *int64
	UploadedBy        *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// MetadataChanges are the editable descriptive fields.
type MetadataChanges struct {
	AltText *string
	Title   *string
	Caption *string
}

type Page struct {
	Items []Item
	Total int64
}

type Repository interface {
	Create(ctx context.Context, item Item) (*Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	UpdateMetadata(ctx context.Context, id string, changes MetadataChanges) (*Item, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) (Page, error)
}

// ObjectStore keeps the binary payloads addressed by key inside one bucket.
type ObjectStore interface {
	Bucket() string
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
	PublicURL(key string) string
}
