package catalog_test

import (
	"context"
	"testing"

	app "github.com/mohammadpnp/creations-admin/internal/application/catalog"
	domain "github.com/mohammadpnp/creations-admin/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAddCategory(t *testing.T) {
	t.Parallel()

	repo := &fakeCategoryRepository{}
	revalidator := &fakeRevalidator{}
	uc := app.NewAddCategory(repo, revalidator, zap.NewNop())

	out, err := uc.Execute(context.Background(), admin, app.CategoryInput{Name: " Home Decor ", Description: " "})
	require.NoError(t, err)

	assert.Equal(t, "Home Decor", out.Name)
	assert.Equal(t, "home-decor", out.Slug)
	assert.Nil(t, out.Description)
	assert.Contains(t, revalidator.paths, "/articles")
}

func TestAddCategoryErrors(t *testing.T) {
	t.Parallel()

	uc := app.NewAddCategory(&fakeCategoryRepository{}, &fakeRevalidator{}, zap.NewNop())
	_, err := uc.Execute(context.Background(), admin, app.CategoryInput{Name: ""})
	assert.ErrorIs(t, err, app.ErrInvalidCategoryInput)

	_, err = uc.Execute(context.Background(), admin, app.CategoryInput{Name: "ของแต่งบ้าน"})
	assert.ErrorIs(t, err, app.ErrSlugUnresolvable)

	_, err = app.NewAddCategory(&fakeCategoryRepository{err: domain.ErrCategoryNameConflict}, &fakeRevalidator{}, zap.NewNop()).
		Execute(context.Background(), admin, app.CategoryInput{Name: "Decor"})
	assert.ErrorIs(t, err, app.ErrCategoryNameConflict)

	_, err = app.NewAddCategory(&fakeCategoryRepository{err: domain.ErrCategorySlugConflict}, &fakeRevalidator{}, zap.NewNop()).
		Execute(context.Background(), admin, app.CategoryInput{Name: "Decor"})
	assert.ErrorIs(t, err, app.ErrCategorySlugConflict)
}
