package content

import (
	"context"
	"errors"
	"time"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrSlugConflict    = errors.New("article slug already exists")
)

type ArticleDraft struct {
	Title    string
	Slug     string
	Excerpt  *string
	Content  string
	ImageURL *string
}

type Article struct {
	ID int64
	ArticleDraft
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	AdminArticlesPath = "/admin/articles"
	ArticlesPath      = "/articles"
	HomePath          = "/"
)

func ArticlePath(articleSlug string) string {
	return ArticlesPath + "/" + articleSlug
}

type ArticleRepository interface {
	GetByID(ctx context.Context, id int64) (*Article, error)
	Create(ctx context.Context, draft ArticleDraft) (*Article, error)
	Update(ctx context.Context, id int64, draft ArticleDraft) (*Article, error)
	Delete(ctx context.Context, id int64) error
	// List returns newest articles first.
	List(ctx context.Context, offset, limit int) (ArticlePage, error)
}

type ArticlePage struct {
	Items []Article
	Total int64
}
