package content

import (
	"errors"

	domain "github.com/mohammadpnp/creations-admin/internal/domain/content"
)

var (
	ErrInvalidArticleInput = errors.New("invalid article input")
	ErrSlugUnresolvable    = errors.New("slug could not be derived from the title, please provide an English slug")
	ErrSaveArticle         = errors.New("failed to save article")
	ErrDeleteArticle       = errors.New("failed to delete article")
	ErrListArticles        = errors.New("failed to list articles")
	ErrGetArticle          = errors.New("failed to get article")

	ErrArticleNotFound = domain.ErrArticleNotFound
	ErrSlugConflict    = domain.ErrSlugConflict
)
