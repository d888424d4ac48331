package echo_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/labstack/echo/v4"
	accountapp "github.com/mohammadpnp/creations-admin/internal/application/account"
	catalogapp "github.com/mohammadpnp/creations-admin/internal/application/catalog"
	contentapp "github.com/mohammadpnp/creations-admin/internal/application/content"
	mediaapp "github.com/mohammadpnp/creations-admin/internal/application/media"
	"github.com/mohammadpnp/creations-admin/internal/domain/account"
	"github.com/mohammadpnp/creations-admin/internal/domain/catalog"
	"github.com/mohammadpnp/creations-admin/internal/infrastructure/auth"
	httpecho "github.com/mohammadpnp/creations-admin/internal/interfaces/http/echo"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	adminID  = "a3f91a91-7fdd-43bf-bfd2-00bc02f6c53e"
	editorID = "5b0f3c53-1d6c-4a55-9a7f-7b7f1f3e2d10"
	userID   = "0c2d6a9e-3b54-4f1e-8f0e-2a6b9f4c7d21"
)

type fakeVerifier struct{}

func (fakeVerifier) Verify(token string) (auth.Identity, error) {
	switch token {
	case "admin-token":
		return auth.Identity{UserID: adminID, Email: "admin@example.com"}, nil
	case "editor-token":
		return auth.Identity{UserID: editorID, Email: "editor@example.com"}, nil
	case "user-token":
		return auth.Identity{UserID: userID, Email: "user@example.com"}, nil
	}
	return auth.Identity{}, auth.ErrInvalidToken
}

type fakeGetProfile struct {
	err error
}

func (f *fakeGetProfile) Execute(ctx context.Context, in accountapp.GetProfileInput) (accountapp.ProfileOutput, error) {
	if f.err != nil {
		return accountapp.ProfileOutput{}, f.err
	}
	role := map[string]string{adminID: "admin", editorID: "editor"}[in.ID]
	if role == "" {
		return accountapp.ProfileOutput{}, accountapp.ErrProfileNotFound
	}
	return accountapp.ProfileOutput{ID: in.ID, Role: role}, nil
}

func newServer(h httpecho.Handlers) *echo.Echo {
	e := echo.New()
	e.Use(httpecho.Authenticate(fakeVerifier{}, &fakeGetProfile{}, zap.NewNop()))
	httpecho.RegisterRoutes(e, h)
	return e
}

func serve(e *echo.Echo, req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type part struct {
	field       string
	filename    string
	contentType string
	body        []byte
}

func multipartRequest(t *testing.T, method, target string, parts ...part) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+p.field+`"; filename="`+p.filename+`"`)
		h.Set("Content-Type", p.contentType)
		fw, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = fw.Write(p.body)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

type fakeImportUseCase struct {
	summary catalog.ImportSummary
	err     error

	gotActor account.Principal
	gotInput catalogapp.ImportProductsFromCSVInput
}

func (f *fakeImportUseCase) Execute(ctx context.Context, actor account.Principal, in catalogapp.ImportProductsFromCSVInput) (catalog.ImportSummary, error) {
	f.gotActor = actor
	f.gotInput = in
	if err := actor.RequireAdmin(); err != nil {
		return catalog.ImportSummary{}, err
	}
	return f.summary, f.err
}

type fakeCreateProduct struct {
	out catalogapp.ProductOutput
	err error
	got catalogapp.ProductInput
}

func (f *fakeCreateProduct) Execute(ctx context.Context, actor account.Principal, in catalogapp.ProductInput) (catalogapp.ProductOutput, error) {
	f.got = in
	if err := actor.RequireAdmin(); err != nil {
		return catalogapp.ProductOutput{}, err
	}
	return f.out, f.err
}

type fakeUpdateProduct struct {
	gotID int64
	err   error
}

func (f *fakeUpdateProduct) Execute(ctx context.Context, actor account.Principal, id int64, in catalogapp.ProductInput) (catalogapp.ProductOutput, error) {
	f.gotID = id
	if f.err != nil {
		return catalogapp.ProductOutput{}, f.err
	}
	return catalogapp.ProductOutput{ID: id, Name: in.Name}, nil
}

type fakeDeleteProduct struct {
	gotID int64
	err   error
}

func (f *fakeDeleteProduct) Execute(ctx context.Context, actor account.Principal, id int64) error {
	f.gotID = id
	return f.err
}

type fakeAddCategory struct {
	err error
}

func (f *fakeAddCategory) Execute(ctx context.Context, actor account.Principal, in catalogapp.CategoryInput) (catalogapp.CategoryOutput, error) {
	if f.err != nil {
		return catalogapp.CategoryOutput{}, f.err
	}
	return catalogapp.CategoryOutput{ID: 1, Name: in.Name, Slug: in.Slug}, nil
}

type fakeListProducts struct {
	got catalogapp.ListProductsInput
	err error
}

func (f *fakeListProducts) Execute(ctx context.Context, actor account.Principal, in catalogapp.ListProductsInput) (catalogapp.ListProductsOutput, error) {
	f.got = in
	if err := actor.RequireAdmin(); err != nil {
		return catalogapp.ListProductsOutput{}, err
	}
	if f.err != nil {
		return catalogapp.ListProductsOutput{}, f.err
	}
	return catalogapp.ListProductsOutput{
		Items: []catalogapp.ProductOutput{{ID: 9, Name: "Test Pine", Slug: "test-pine"}},
		Total: 1, Page: 1, Limit: 12, TotalPages: 1,
	}, nil
}

type fakeGetProduct struct {
	gotID int64
	err   error
}

func (f *fakeGetProduct) Execute(ctx context.Context, actor account.Principal, id int64) (catalogapp.ProductOutput, error) {
	f.gotID = id
	if err := actor.RequireAdmin(); err != nil {
		return catalogapp.ProductOutput{}, err
	}
	if f.err != nil {
		return catalogapp.ProductOutput{}, f.err
	}
	return catalogapp.ProductOutput{ID: id, Name: "Test Pine", Images: []string{}}, nil
}

type fakeListCategories struct {
	err error
}

func (f *fakeListCategories) Execute(ctx context.Context, actor account.Principal) ([]catalogapp.CategoryOutput, error) {
	if err := actor.RequireContentEditor(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return []catalogapp.CategoryOutput{{ID: 1, Name: "Decor", Slug: "decor"}}, nil
}

type fakeArticleUseCase struct {
	gotActor account.Principal
	gotInput contentapp.ArticleInput
	gotList  contentapp.ListArticlesInput
	gotID    int64
	err      error
}

func (f *fakeArticleUseCase) add() contentapp.AddArticle       { return articleAdd{f} }
func (f *fakeArticleUseCase) update() contentapp.UpdateArticle { return articleUpdate{f} }
func (f *fakeArticleUseCase) remove() contentapp.DeleteArticle { return articleDelete{f} }
func (f *fakeArticleUseCase) list() contentapp.ListArticles    { return articleList{f} }
func (f *fakeArticleUseCase) get() contentapp.GetArticle       { return articleGet{f} }

type articleAdd struct{ *fakeArticleUseCase }

func (a articleAdd) Execute(ctx context.Context, actor account.Principal, in contentapp.ArticleInput) (contentapp.ArticleOutput, error) {
	a.gotActor, a.gotInput = actor, in
	if err := actor.RequireContentEditor(); err != nil {
		return contentapp.ArticleOutput{}, err
	}
	if a.err != nil {
		return contentapp.ArticleOutput{}, a.err
	}
	return contentapp.ArticleOutput{ID: 1, Title: in.Title, Slug: in.Slug}, nil
}

type articleUpdate struct{ *fakeArticleUseCase }

func (a articleUpdate) Execute(ctx context.Context, actor account.Principal, id int64, in contentapp.ArticleInput) (contentapp.ArticleOutput, error) {
	a.gotActor, a.gotInput = actor, in
	if a.err != nil {
		return contentapp.ArticleOutput{}, a.err
	}
	return contentapp.ArticleOutput{ID: id, Title: in.Title}, nil
}

type articleDelete struct{ *fakeArticleUseCase }

func (a articleDelete) Execute(ctx context.Context, actor account.Principal, id int64) error {
	a.gotActor = actor
	return a.err
}

type articleList struct{ *fakeArticleUseCase }

func (a articleList) Execute(ctx context.Context, actor account.Principal, in contentapp.ListArticlesInput) (contentapp.ListArticlesOutput, error) {
	a.gotActor, a.gotList = actor, in
	if err := actor.RequireContentEditor(); err != nil {
		return contentapp.ListArticlesOutput{}, err
	}
	if a.err != nil {
		return contentapp.ListArticlesOutput{}, a.err
	}
	return contentapp.ListArticlesOutput{
		Items: []contentapp.ArticleOutput{{ID: 3, Title: "Carving Pine", Slug: "carving-pine"}},
		Total: 1, Page: 1, Limit: 12, TotalPages: 1,
	}, nil
}

type articleGet struct{ *fakeArticleUseCase }

func (a articleGet) Execute(ctx context.Context, actor account.Principal, id int64) (contentapp.ArticleOutput, error) {
	a.gotActor, a.gotID = actor, id
	if err := actor.RequireContentEditor(); err != nil {
		return contentapp.ArticleOutput{}, err
	}
	if a.err != nil {
		return contentapp.ArticleOutput{}, a.err
	}
	return contentapp.ArticleOutput{ID: id, Title: "Carving Pine"}, nil
}

type fakeUpdateProfile struct {
	got accountapp.UpdateProfileInput
	err error
}

func (f *fakeUpdateProfile) Execute(ctx context.Context, actor account.Principal, in accountapp.UpdateProfileInput) (accountapp.ProfileOutput, error) {
	f.got = in
	if !actor.IsAuthenticated() {
		return accountapp.ProfileOutput{}, account.ErrUnauthenticated
	}
	if f.err != nil {
		return accountapp.ProfileOutput{}, f.err
	}
	username := in.Username
	return accountapp.ProfileOutput{ID: actor.UserID, Username: &username, Role: string(actor.Role)}, nil
}

type fakeUpdateUserRole struct {
	got accountapp.UpdateUserRoleInput
	err error
}

func (f *fakeUpdateUserRole) Execute(ctx context.Context, actor account.Principal, in accountapp.UpdateUserRoleInput) (accountapp.UpdateUserRoleOutput, error) {
	f.got = in
	if err := actor.RequireAdmin(); err != nil {
		return accountapp.UpdateUserRoleOutput{}, err
	}
	if f.err != nil {
		return accountapp.UpdateUserRoleOutput{}, f.err
	}
	return accountapp.UpdateUserRoleOutput{UserID: in.UserID, Role: in.Role}, nil
}

type fakeListProfiles struct {
	err error
}

func (f *fakeListProfiles) Execute(ctx context.Context, actor account.Principal) ([]accountapp.ProfileOutput, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return []accountapp.ProfileOutput{
		{ID: adminID, Role: "admin"},
		{ID: editorID, Role: "editor"},
	}, nil
}

type fakeUploadImages struct {
	out mediaapp.UploadImagesOutput
	err error

	gotNames  []string
	gotBodies []string
}

func (f *fakeUploadImages) Execute(ctx context.Context, actor account.Principal, in mediaapp.UploadImagesInput) (mediaapp.UploadImagesOutput, error) {
	if err := actor.RequireAdmin(); err != nil {
		return mediaapp.UploadImagesOutput{}, err
	}
	if len(in.Files) == 0 {
		return mediaapp.UploadImagesOutput{}, mediaapp.ErrNoFiles
	}
	for _, file := range in.Files {
		body, err := io.ReadAll(file.Body)
		if err != nil {
			return mediaapp.UploadImagesOutput{}, err
		}
		f.gotNames = append(f.gotNames, file.Filename)
		f.gotBodies = append(f.gotBodies, string(body))
	}
	return f.out, f.err
}

type fakeListMedia struct {
	got mediaapp.ListMediaItemsInput
}

func (f *fakeListMedia) Execute(ctx context.Context, actor account.Principal, in mediaapp.ListMediaItemsInput) (mediaapp.ListMediaItemsOutput, error) {
	f.got = in
	if err := actor.RequireAdmin(); err != nil {
		return mediaapp.ListMediaItemsOutput{}, err
	}
	return mediaapp.ListMediaItemsOutput{Items: []mediaapp.MediaItemOutput{}, Page: 1, Limit: 12}, nil
}

type fakeUpdateMedia struct {
	got mediaapp.UpdateMediaMetadataInput
	err error
}

func (f *fakeUpdateMedia) Execute(ctx context.Context, actor account.Principal, in mediaapp.UpdateMediaMetadataInput) (mediaapp.MediaItemOutput, error) {
	f.got = in
	if f.err != nil {
		return mediaapp.MediaItemOutput{}, f.err
	}
	return mediaapp.MediaItemOutput{ID: in.ID}, nil
}

type fakeDeleteMedia struct {
	err error
}

func (f *fakeDeleteMedia) Execute(ctx context.Context, actor account.Principal, id string) error {
	return f.err
}

var errBoom = errors.New("boom")
