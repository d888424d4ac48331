package echo

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/creations-admin/internal/application/catalog"
)

const csvFileField = "csvFile"

type ImportHandler struct {
	useCase      app.ImportProductsFromCSV
	maxFileBytes int64
}

func NewImportHandler(useCase app.ImportProductsFromCSV, maxFileBytes int64) *ImportHandler {
	return &ImportHandler{useCase: useCase, maxFileBytes: maxFileBytes}
}

// ImportProducts always answers with the import summary when the file got
// as far as validation, including when the batch write failed. Only admins
// get their upload read.
func (h *ImportHandler) ImportProducts(c echo.Context) error {
	actor := principalFrom(c)
	if err := actor.RequireAdmin(); err != nil {
		return writeError(c, err)
	}

	in, err := h.readUpload(c)
	if err != nil {
		return writeError(c, err)
	}

	summary, err := h.useCase.Execute(c.Request().Context(), actor, in)
	if err != nil {
		status, body := errorFor(err)
		if summary.Outcome == "" {
			return c.JSON(status, apiResponse{Error: body})
		}
		return c.JSON(status, apiResponse{Data: summary, Error: body})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: summary})
}

func (h *ImportHandler) DownloadTemplate(c echo.Context) error {
	if err := principalFrom(c).RequireAdmin(); err != nil {
		return writeError(c, err)
	}

	body, err := app.ImportTemplate()
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", app.ImportTemplateFilename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", body)
}

func (h *ImportHandler) readUpload(c echo.Context) (app.ImportProductsFromCSVInput, error) {
	header, err := c.FormFile(csvFileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return app.ImportProductsFromCSVInput{}, app.ErrFileRequired
		}
		return app.ImportProductsFromCSVInput{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	if h.maxFileBytes > 0 && header.Size > h.maxFileBytes {
		return app.ImportProductsFromCSVInput{}, errFileTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return app.ImportProductsFromCSVInput{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if h.maxFileBytes > 0 {
		reader = io.LimitReader(file, h.maxFileBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return app.ImportProductsFromCSVInput{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	if h.maxFileBytes > 0 && int64(len(data)) > h.maxFileBytes {
		return app.ImportProductsFromCSVInput{}, errFileTooLarge
	}

	return app.ImportProductsFromCSVInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
