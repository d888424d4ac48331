package content_test

import (
	"context"
	"errors"
	"testing"

	app "github.com/mohammadpnp/creations-admin/internal/application/content"
	"github.com/mohammadpnp/creations-admin/internal/domain/account"
	domain "github.com/mohammadpnp/creations-admin/internal/domain/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var editor = account.Principal{UserID: "0d5e3c1a-7b2f-4a9e-8c6d-1e2f3a4b5c6d", Role: account.RoleEditor}

type fakeArticleRepository struct {
	articles  map[int64]*domain.Article
	nextID    int64
	createErr error
	listErr   error
	gotOffset int
	gotLimit  int
}

func newFakeArticleRepository(existing ...*domain.Article) *fakeArticleRepository {
	repo := &fakeArticleRepository{articles: make(map[int64]*domain.Article)}
	for _, a := range existing {
		repo.articles[a.ID] = a
	}
	return repo
}

func (f *fakeArticleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	a, ok := f.articles[id]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeArticleRepository) Create(ctx context.Context, draft domain.ArticleDraft) (*domain.Article, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	a := &domain.Article{ID: f.nextID, ArticleDraft: draft}
	f.articles[a.ID] = a
	return a, nil
}

func (f *fakeArticleRepository) Update(ctx context.Context, id int64, draft domain.ArticleDraft) (*domain.Article, error) {
	if _, ok := f.articles[id]; !ok {
		return nil, domain.ErrArticleNotFound
	}
	a := &domain.Article{ID: id, ArticleDraft: draft}
	f.articles[id] = a
	return a, nil
}

func (f *fakeArticleRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := f.articles[id]; !ok {
		return domain.ErrArticleNotFound
	}
	delete(f.articles, id)
	return nil
}

func (f *fakeArticleRepository) List(ctx context.Context, offset, limit int) (domain.ArticlePage, error) {
	f.gotOffset = offset
	f.gotLimit = limit
	if f.listErr != nil {
		return domain.ArticlePage{}, f.listErr
	}
	items := make([]domain.Article, 0, len(f.articles))
	for _, a := range f.articles {
		items = append(items, *a)
	}
	return domain.ArticlePage{Items: items, Total: int64(len(items))}, nil
}

type fakeRevalidator struct {
	paths []string
	err   error
}

func (f *fakeRevalidator) Revalidate(ctx context.Context, paths ...string) error {
	f.paths = append(f.paths, paths...)
	return f.err
}

func TestAddArticle(t *testing.T) {
	t.Parallel()

	revalidator := &fakeRevalidator{}
	uc := app.NewAddArticle(newFakeArticleRepository(), revalidator, zap.NewNop())

	out, err := uc.Execute(context.Background(), editor, app.ArticleInput{
		Title:   "Caring for Pine Wood",
		Content: "Oil it twice a year.",
		Excerpt: "  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "caring-for-pine-wood", out.Slug)
	assert.Nil(t, out.Excerpt)
	assert.Equal(t, []string{"/admin/articles", "/articles", "/", "/articles/caring-for-pine-wood"}, revalidator.paths)
}

func TestAddArticleValidation(t *testing.T) {
	t.Parallel()

	uc := app.NewAddArticle(newFakeArticleRepository(), &fakeRevalidator{}, zap.NewNop())

	_, err := uc.Execute(context.Background(), editor, app.ArticleInput{Title: "Title"})
	assert.ErrorIs(t, err, app.ErrInvalidArticleInput)

	_, err = uc.Execute(context.Background(), editor, app.ArticleInput{Title: "ดูแลไม้สน", Content: "..."})
	assert.ErrorIs(t, err, app.ErrSlugUnresolvable)

	_, err = uc.Execute(context.Background(), editor, app.ArticleInput{Title: "ดูแลไม้สน", Slug: "pine-care", Content: "..."})
	assert.NoError(t, err)
}

func TestAddArticleSlugConflict(t *testing.T) {
	t.Parallel()

	repo := newFakeArticleRepository()
	repo.createErr = domain.ErrSlugConflict
	_, err := app.NewAddArticle(repo, &fakeRevalidator{}, zap.NewNop()).
		Execute(context.Background(), editor, app.ArticleInput{Title: "Pine", Content: "x"})
	assert.ErrorIs(t, err, app.ErrSlugConflict)
}

func TestUpdateArticleRevalidatesOldSlug(t *testing.T) {
	t.Parallel()

	repo := newFakeArticleRepository(&domain.Article{ID: 4, ArticleDraft: domain.ArticleDraft{Title: "Pine", Slug: "pine", Content: "x"}})
	revalidator := &fakeRevalidator{}

	out, err := app.NewUpdateArticle(repo, revalidator, zap.NewNop()).
		Execute(context.Background(), editor, 4, app.ArticleInput{Title: "Pine Care", Content: "y"})
	require.NoError(t, err)
	assert.Equal(t, "pine-care", out.Slug)
	assert.Contains(t, revalidator.paths, "/articles/pine")
	assert.Contains(t, revalidator.paths, "/articles/pine-care")
}

func TestDeleteArticle(t *testing.T) {
	t.Parallel()

	repo := newFakeArticleRepository(&domain.Article{ID: 9, ArticleDraft: domain.ArticleDraft{Title: "Oak", Slug: "oak", Content: "x"}})
	revalidator := &fakeRevalidator{err: errors.New("redis down")}
	uc := app.NewDeleteArticle(repo, revalidator, zap.NewNop())

	require.NoError(t, uc.Execute(context.Background(), editor, 9))
	assert.ErrorIs(t, uc.Execute(context.Background(), editor, 9), app.ErrArticleNotFound)
}

func TestArticlesRejectPlainUsers(t *testing.T) {
	t.Parallel()

	user := account.Principal{UserID: "u1", Role: account.RoleUser}
	_, err := app.NewAddArticle(newFakeArticleRepository(), &fakeRevalidator{}, zap.NewNop()).
		Execute(context.Background(), user, app.ArticleInput{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, account.ErrForbidden)
}
