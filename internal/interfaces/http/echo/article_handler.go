package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/creations-admin/internal/application/content"
)

type ArticleUseCases struct {
	Add    app.AddArticle
	Update app.UpdateArticle
	Delete app.DeleteArticle
	List   app.ListArticles
	Get    app.GetArticle
}

type ArticleHandler struct {
	uc ArticleUseCases
}

type articleRequest struct {
	Title    string `json:"title" form:"title"`
	Content  string `json:"content" form:"content"`
	Slug     string `json:"slug" form:"slug"`
	Excerpt  string `json:"excerpt" form:"excerpt"`
	ImageURL string `json:"image_url" form:"image_url"`
}

func NewArticleHandler(uc ArticleUseCases) *ArticleHandler {
	return &ArticleHandler{uc: uc}
}

func (h *ArticleHandler) ListArticles(c echo.Context) error {
	page, limit := pageQuery(c)

	out, err := h.uc.List.Execute(c.Request().Context(), principalFrom(c), app.ListArticlesInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *ArticleHandler) GetArticle(c echo.Context) error {
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

func (h *ArticleHandler) AddArticle(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errBadRequest)
	}

	out, err := h.uc.Add.Execute(c.Request().Context(), principalFrom(c), app.ArticleInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, apiResponse{Data: out})
}

func (h *ArticleHandler) UpdateArticle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errBadRequest)
	}

	out, err := h.uc.Update.Execute(c.Request().Context(), principalFrom(c), id, app.ArticleInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *ArticleHandler) DeleteArticle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.Delete.Execute(c.Request().Context(), principalFrom(c), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
