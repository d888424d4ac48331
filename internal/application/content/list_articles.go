package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/mohammadpnp/creations-admin/internal/domain/account"
	domain "github.com/mohammadpnp/creations-admin/internal/domain/content"
	"github.com/mohammadpnp/creations-admin/internal/domain/paging"
)

type ListArticlesInput struct {
	Page  int
	Limit int
}

type ListArticlesOutput struct {
	Items      []ArticleOutput `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

type ListArticles interface {
	Execute(ctx context.Context, actor account.Principal, in ListArticlesInput) (ListArticlesOutput, error)
}

type GetArticle interface {
	Execute(ctx context.Context, actor account.Principal, id int64) (ArticleOutput, error)
}

type listArticles struct {
	repo domain.ArticleRepository
}

func NewListArticles(repo domain.ArticleRepository) ListArticles {
	return &listArticles{repo: repo}
}

func (uc *listArticles) Execute(ctx context.Context, actor account.Principal, in ListArticlesInput) (ListArticlesOutput, error) {
	if err := actor.RequireContentEditor(); err != nil {
		return ListArticlesOutput{}, err
	}

	req := paging.Normalize(in.Page, in.Limit)
	result, err := uc.repo.List(ctx, req.Offset(), req.Limit)
	if err != nil {
		return ListArticlesOutput{}, fmt.Errorf("%w: %v", ErrListArticles, err)
	}

	items := make([]ArticleOutput, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toArticleOutput(&result.Items[i]))
	}

	return ListArticlesOutput{
		Items:      items,
		Total:      result.Total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: req.TotalPages(result.Total),
	}, nil
}

type getArticle struct {
	repo domain.ArticleRepository
}

func NewGetArticle(repo domain.ArticleRepository) GetArticle {
	return &getArticle{repo: repo}
}

func (uc *getArticle) Execute(ctx context.Context, actor account.Principal, id int64) (ArticleOutput, error) {
	if err := actor.RequireContentEditor(); err != nil {
		return ArticleOutput{}, err
	}

	article, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return ArticleOutput{}, ErrArticleNotFound
		}
		return ArticleOutput{}, fmt.Errorf("%w: %v", ErrGetArticle, err)
	}
	return toArticleOutput(article), nil
}
