package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mohammadpnp/creations-admin/internal/domain/account"
	domain "github.com/mohammadpnp/creations-admin/internal/domain/content"
	"github.com/mohammadpnp/creations-admin/internal/domain/slug"
	"go.uber.org/zap"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type revalidator interface {
	Revalidate(ctx context.Context, paths ...string) error
}

type ArticleInput struct {
	Title    string `validate:"required"`
	Content  string `validate:"required"`
	Slug     string
	Excerpt  string
	ImageURL string `validate:"omitempty,url"`
}

type ArticleOutput struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   *string   `json:"excerpt"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AddArticle interface {
	Execute(ctx context.Context, actor account.Principal, in ArticleInput) (ArticleOutput, error)
}

type UpdateArticle interface {
	Execute(ctx context.Context, actor account.Principal, id int64, in ArticleInput) (ArticleOutput, error)
}

type DeleteArticle interface {
	Execute(ctx context.Context, actor account.Principal, id int64) error
}

type articleUseCase struct {
	repo        domain.ArticleRepository
	revalidator revalidator
	logger      *zap.Logger
}

func NewAddArticle(repo domain.ArticleRepository, r revalidator, logger *zap.Logger) AddArticle {
	return &addArticle{articleUseCase{repo: repo, revalidator: r, logger: logger}}
}

func NewUpdateArticle(repo domain.ArticleRepository, r revalidator, logger *zap.Logger) UpdateArticle {
	return &updateArticle{articleUseCase{repo: repo, revalidator: r, logger: logger}}
}

func NewDeleteArticle(repo domain.ArticleRepository, r revalidator, logger *zap.Logger) DeleteArticle {
	return &deleteArticle{articleUseCase{repo: repo, revalidator: r, logger: logger}}
}

type addArticle struct{ articleUseCase }

func (uc *addArticle) Execute(ctx context.Context, actor account.Principal, in ArticleInput) (ArticleOutput, error) {
	if err := actor.RequireContentEditor(); err != nil {
		return ArticleOutput{}, err
	}

	draft, err := buildArticleDraft(in)
	if err != nil {
		return ArticleOutput{}, err
	}

	article, err := uc.repo.Create(ctx, draft)
	if err != nil {
		return ArticleOutput{}, saveArticleError(err)
	}

	uc.revalidate(ctx, article.Slug)
	return toArticleOutput(article), nil
}

type updateArticle struct{ articleUseCase }

func (uc *updateArticle) Execute(ctx context.Context, actor account.Principal, id int64, in ArticleInput) (ArticleOutput, error) {
	if err := actor.RequireContentEditor(); err != nil {
		return ArticleOutput{}, err
	}

	draft, err := buildArticleDraft(in)
	if err != nil {
		return ArticleOutput{}, err
	}

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return ArticleOutput{}, saveArticleError(err)
	}

	article, err := uc.repo.Update(ctx, id, draft)
	if err != nil {
		return ArticleOutput{}, saveArticleError(err)
	}

	if current.Slug != article.Slug {
		uc.revalidate(ctx, article.Slug, current.Slug)
	} else {
		uc.revalidate(ctx, article.Slug)
	}
	return toArticleOutput(article), nil
}

type deleteArticle struct{ articleUseCase }

func (uc *deleteArticle) Execute(ctx context.Context, actor account.Principal, id int64) error {
	if err := actor.RequireContentEditor(); err != nil {
		return err
	}

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("%w: %v", ErrDeleteArticle, err)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("%w: %v", ErrDeleteArticle, err)
	}

	uc.revalidate(ctx, current.Slug)
	return nil
}

func (uc *articleUseCase) revalidate(ctx context.Context, slugs ...string) {
	paths := []string{domain.AdminArticlesPath, domain.ArticlesPath, domain.HomePath}
	for _, s := range slugs {
		paths = append(paths, domain.ArticlePath(s))
	}
	if err := uc.revalidator.Revalidate(ctx, paths...); err != nil {
		uc.logger.Error("revalidate paths", zap.Strings("paths", paths), zap.Error(err))
	}
}

func buildArticleDraft(in ArticleInput) (domain.ArticleDraft, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	if err := validate.Struct(in); err != nil {
		return domain.ArticleDraft{}, fmt.Errorf("%w: %v", ErrInvalidArticleInput, err)
	}

	source := in.Title
	if s := strings.TrimSpace(in.Slug); s != "" {
		source = s
	}
	articleSlug := slug.Normalize(source)
	if articleSlug == "" {
		return domain.ArticleDraft{}, ErrSlugUnresolvable
	}

	return domain.ArticleDraft{
		Title:    in.Title,
		Slug:     articleSlug,
		Excerpt:  optionalText(in.Excerpt),
		Content:  in.Content,
		ImageURL: optionalText(in.ImageURL),
	}, nil
}

func saveArticleError(err error) error {
	switch {
	case errors.Is(err, domain.ErrArticleNotFound):
		return ErrArticleNotFound
	case errors.Is(err, domain.ErrSlugConflict):
		return ErrSlugConflict
	default:
		return fmt.Errorf("%w: %v", ErrSaveArticle, err)
	}
}

func optionalText(raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	return &v
}

func toArticleOutput(a *domain.Article) ArticleOutput {
	return ArticleOutput{
		ID:        a.ID,
		Title:     a.Title,
		Slug:      a.Slug,
		Excerpt:   a.Excerpt,
		Content:   a.Content,
		ImageURL:  a.ImageURL,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
