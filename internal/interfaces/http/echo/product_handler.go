package echo

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/creations-admin/internal/application/catalog"
)

// ProductUseCases bundles the catalog use cases behind the product routes.
type ProductUseCases struct {
	Create         app.CreateProduct
	Update         app.UpdateProduct
	Delete         app.DeleteProduct
	AddCategory    app.AddCategory
	List           app.ListProducts
	Get            app.GetProduct
	ListCategories app.ListCategories
}

type ProductHandler struct {
	uc ProductUseCases
}

type productRequest struct {
	Name          string `json:"name" form:"name"`
	Price         string `json:"price" form:"price"`
	Slug          string `json:"slug" form:"slug"`
	Description   string `json:"description" form:"description"`
	ProductType   string `json:"product_type" form:"product_type"`
	ImageURL      string `json:"image_url" form:"image_url"`
	Images        string `json:"images" form:"images"`
	StockQuantity string `json:"stock_quantity" form:"stock_quantity"`
}

type categoryRequest struct {
	Name        string `json:"name" form:"name"`
	Slug        string `json:"slug" form:"slug"`
	Description string `json:"description" form:"description"`
}

func NewProductHandler(uc ProductUseCases) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	page, limit := pageQuery(c)

	out, err := h.uc.List.Execute(c.Request().Context(), principalFrom(c), app.ListProductsInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Get.Execute(c.Request().Context(), principalFrom(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *ProductHandler) ListCategories(c echo.Context) error {
	out, err := h.uc.ListCategories.Execute(c.Request().Context(), principalFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errBadRequest)
	}

	out, err := h.uc.Create.Execute(c.Request().Context(), principalFrom(c), req.input())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, apiResponse{Data: out})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errBadRequest)
	}

	out, err := h.uc.Update.Execute(c.Request().Context(), principalFrom(c), id, req.input())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.Delete.Execute(c.Request().Context(), principalFrom(c), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) AddCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errBadRequest)
	}

	out, err := h.uc.AddCategory.Execute(c.Request().Context(), principalFrom(c), app.CategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, apiResponse{Data: out})
}

func (r productRequest) input() app.ProductInput {
	return app.ProductInput{
		Name:          r.Name,
		Price:         r.Price,
		Slug:          r.Slug,
		Description:   r.Description,
		ProductType:   r.ProductType,
		ImageURL:      r.ImageURL,
		Images:        r.Images,
		StockQuantity: r.StockQuantity,
	}
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, c.Param("id"))
	}
	return id, nil
}

// pageQuery reads page and limit. Junk values fall back to the defaults.
func pageQuery(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}
