package echo

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/creations-admin/internal/application/media"
)

const imageFilesField = "imageFiles"

type MediaHandler struct {
	upload app.UploadImages
	list   app.ListMediaItems
	update app.UpdateMediaMetadata
	remove app.DeleteMediaItem
}

type mediaMetadataRequest struct {
	AltText string `json:"alt_text" form:"alt_text"`
	Title   string `json:"title" form:"title"`
	Caption string `json:"caption" form:"caption"`
}

func NewMediaHandler(upload app.UploadImages, list app.ListMediaItems, update app.UpdateMediaMetadata, remove app.DeleteMediaItem) *MediaHandler {
	return &MediaHandler{upload: upload, list: list, update: update, remove: remove}
}

func (h *MediaHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return writeError(c, app.ErrNoFiles)
		}
		return writeError(c, fmt.Errorf("%w: %v", errBadRequest, err))
	}

	headers := form.File[imageFilesField]
	files := make([]app.UploadFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return writeError(c, fmt.Errorf("%w: %v", errBadRequest, err))
		}
		defer f.Close()

		files = append(files, app.UploadFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get(echo.HeaderContentType),
			Size:        header.Size,
			Body:        f,
		})
	}

	out, err := h.upload.Execute(c.Request().Context(), principalFrom(c), app.UploadImagesInput{Files: files})
	if err != nil {
		status, body := errorFor(err)
		if len(out.Errors) == 0 {
			return c.JSON(status, apiResponse{Error: body})
		}
		return c.JSON(status, apiResponse{Data: out, Error: body})
	}
	return c.JSON(http.StatusCreated, apiResponse{Data: out})
}

func (h *MediaHandler) ListMedia(c echo.Context) error {
	page, limit := pageQuery(c)

	out, err := h.list.Execute(c.Request().Context(), principalFrom(c), app.ListMediaItemsInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *MediaHandler) UpdateMedia(c echo.Context) error {
	var req mediaMetadataRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errBadRequest)
	}

	out, err := h.update.Execute(c.Request().Context(), principalFrom(c), app.UpdateMediaMetadataInput{
		ID:      c.Param("id"),
		AltText: req.AltText,
		Title:   req.Title,
		Caption: req.Caption,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *MediaHandler) DeleteMedia(c echo.Context) error {
	if err := h.remove.Execute(c.Request().Context(), principalFrom(c), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
