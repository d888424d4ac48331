package echo_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	catalogapp "github.com/mohammadpnp/creations-admin/internal/application/catalog"
	httpecho "github.com/mohammadpnp/creations-admin/internal/interfaces/http/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productFakes struct {
	create     *fakeCreateProduct
	update     *fakeUpdateProduct
	remove     *fakeDeleteProduct
	category   *fakeAddCategory
	list       *fakeListProducts
	get        *fakeGetProduct
	categories *fakeListCategories
}

func newProductServer(f productFakes) *echo.Echo {
	if f.create == nil {
		f.create = &fakeCreateProduct{}
	}
	if f.update == nil {
		f.update = &fakeUpdateProduct{}
	}
	if f.remove == nil {
		f.remove = &fakeDeleteProduct{}
	}
	if f.category == nil {
		f.category = &fakeAddCategory{}
	}
	if f.list == nil {
		f.list = &fakeListProducts{}
	}
	if f.get == nil {
		f.get = &fakeGetProduct{}
	}
	if f.categories == nil {
		f.categories = &fakeListCategories{}
	}
	return newServer(httpecho.Handlers{
		Products: httpecho.NewProductHandler(httpecho.ProductUseCases{
			Create:         f.create,
			Update:         f.update,
			Delete:         f.remove,
			AddCategory:    f.category,
			List:           f.list,
			Get:            f.get,
			ListCategories: f.categories,
		}),
	})
}

func TestCreateProductFromForm(t *testing.T) {
	t.Parallel()

	create := &fakeCreateProduct{out: catalogapp.ProductOutput{ID: 9, Name: "Test Pine", Slug: "test-pine", Price: 1200}}
	e := newProductServer(productFakes{create: create})

	form := url.Values{
		"name":           {"Test Pine"},
		"price":          {"1200"},
		"images":         {"https://a.example/1.jpg, https://a.example/2.jpg"},
		"stock_quantity": {"3"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := serve(e, req, "admin-token")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Test Pine", create.got.Name)
	assert.Equal(t, "1200", create.got.Price)
	assert.Equal(t, "https://a.example/1.jpg, https://a.example/2.jpg", create.got.Images)
	assert.Equal(t, "3", create.got.StockQuantity)

	var got struct {
		Data catalogapp.ProductOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(9), got.Data.ID)
	assert.Equal(t, "test-pine", got.Data.Slug)
}

func TestCreateProductErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		err    error
		token  string
		status int
		code   string
	}{
		"forbidden":    {token: "editor-token", status: http.StatusForbidden, code: "forbidden"},
		"invalid":      {err: catalogapp.ErrInvalidProductInput, token: "admin-token", status: http.StatusBadRequest, code: "invalid_product"},
		"thai name":    {err: catalogapp.ErrSlugUnresolvable, token: "admin-token", status: http.StatusBadRequest, code: "slug_unresolvable"},
		"duplicate":    {err: catalogapp.ErrSlugConflict, token: "admin-token", status: http.StatusConflict, code: "slug_conflict"},
		"store failed": {err: catalogapp.ErrSaveProduct, token: "admin-token", status: http.StatusInternalServerError, code: "save_failed"},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			e := newProductServer(productFakes{create: &fakeCreateProduct{err: tc.err}})
			rec := serve(e, jsonRequest(http.MethodPost, "/api/v1/admin/products", `{"name":"x","price":"1"}`), tc.token)

			require.Equal(t, tc.status, rec.Code)
			var got apiError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tc.code, got.Error.Code)
		})
	}
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	t.Parallel()

	update := &fakeUpdateProduct{}
	remove := &fakeDeleteProduct{}
	e := newProductServer(productFakes{update: update, remove: remove})

	rec := serve(e, jsonRequest(http.MethodPut, "/api/v1/admin/products/42", `{"name":"Oak","price":"10"}`), "admin-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), update.gotID)

	rec = serve(e, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/products/42", nil), "admin-token")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(42), remove.gotID)
}

func TestProductInvalidID(t *testing.T) {
	t.Parallel()

	e := newProductServer(productFakes{})

	for _, id := range []string{"abc", "0", "-3"} {
		rec := serve(e, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/products/"+id, nil), "admin-token")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q", id)
	}
}

func TestProductNotFound(t *testing.T) {
	t.Parallel()

	e := newProductServer(productFakes{remove: &fakeDeleteProduct{err: catalogapp.ErrProductNotFound}})
	rec := serve(e, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/products/7", nil), "admin-token")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddCategory(t *testing.T) {
	t.Parallel()

	e := newProductServer(productFakes{})
	rec := serve(e, jsonRequest(http.MethodPost, "/api/v1/admin/categories", `{"name":"Ornaments","slug":"ornaments"}`), "admin-token")
	require.Equal(t, http.StatusCreated, rec.Code)

	e = newProductServer(productFakes{category: &fakeAddCategory{err: catalogapp.ErrCategoryNameConflict}})
	rec = serve(e, jsonRequest(http.MethodPost, "/api/v1/admin/categories", `{"name":"Ornaments"}`), "admin-token")
	require.Equal(t, http.StatusConflict, rec.Code)

	var got apiError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "category_name_conflict", got.Error.Code)
}

func TestListProducts(t *testing.T) {
	t.Parallel()

	list := &fakeListProducts{}
	e := newProductServer(productFakes{list: list})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/admin/products?page=3&limit=abc", nil), "admin-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, catalogapp.ListProductsInput{Page: 3, Limit: 0}, list.got)

	var got struct {
		Data catalogapp.ListProductsOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Data.Items, 1)
	assert.Equal(t, "test-pine", got.Data.Items[0].Slug)

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/admin/products", nil), "editor-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	e = newProductServer(productFakes{list: &fakeListProducts{err: catalogapp.ErrListProducts}})
	rec = serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/admin/products", nil), "admin-token")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetProduct(t *testing.T) {
	t.Parallel()

	get := &fakeGetProduct{}
	e := newProductServer(productFakes{get: get})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/admin/products/9", nil), "admin-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), get.gotID)

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/admin/products/nine", nil), "admin-token")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	e = newProductServer(productFakes{get: &fakeGetProduct{err: catalogapp.ErrProductNotFound}})
	rec = serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/admin/products/9", nil), "admin-token")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCategories(t *testing.T) {
	t.Parallel()

	e := newProductServer(productFakes{})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/admin/categories", nil), "editor-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slug":"decor"`)

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/admin/categories", nil), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
