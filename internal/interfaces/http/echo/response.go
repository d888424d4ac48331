package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	accountapp "github.com/mohammadpnp/creations-admin/internal/application/account"
	catalogapp "github.com/mohammadpnp/creations-admin/internal/application/catalog"
	contentapp "github.com/mohammadpnp/creations-admin/internal/application/content"
	mediaapp "github.com/mohammadpnp/creations-admin/internal/application/media"
	"github.com/mohammadpnp/creations-admin/internal/domain/account"
)

var (
	errInvalidID    = errors.New("id must be a positive integer")
	errFileTooLarge = errors.New("file is too large")
	errBadRequest   = errors.New("invalid request body")
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

type errorMapping struct {
	target error
	status int
	code   string
}

// Checked in order, so wrapped causes come before the errors that wrap them.
var errorMappings = []errorMapping{
	{account.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
	{account.ErrForbidden, http.StatusForbidden, "forbidden"},

	{errInvalidID, http.StatusBadRequest, "invalid_id"},
	{errBadRequest, http.StatusBadRequest, "bad_request"},
	{errFileTooLarge, http.StatusRequestEntityTooLarge, "file_too_large"},

	{catalogapp.ErrFileRequired, http.StatusBadRequest, "file_required"},
	{catalogapp.ErrInvalidFileType, http.StatusBadRequest, "invalid_file_type"},
	{catalogapp.ErrMalformedCSV, http.StatusBadRequest, "malformed_csv"},
	{catalogapp.ErrImportTimeout, http.StatusGatewayTimeout, "import_timeout"},
	{catalogapp.ErrSlugConflict, http.StatusConflict, "slug_conflict"},
	{catalogapp.ErrBatchWrite, http.StatusInternalServerError, "batch_write_failed"},
	{catalogapp.ErrInvalidProductInput, http.StatusBadRequest, "invalid_product"},
	{catalogapp.ErrInvalidCategoryInput, http.StatusBadRequest, "invalid_category"},
	{catalogapp.ErrSlugUnresolvable, http.StatusBadRequest, "slug_unresolvable"},
	{catalogapp.ErrProductNotFound, http.StatusNotFound, "not_found"},
	{catalogapp.ErrCategoryNameConflict, http.StatusConflict, "category_name_conflict"},
	{catalogapp.ErrCategorySlugConflict, http.StatusConflict, "category_slug_conflict"},
	{catalogapp.ErrSaveProduct, http.StatusInternalServerError, "save_failed"},
	{catalogapp.ErrDeleteProduct, http.StatusInternalServerError, "delete_failed"},
	{catalogapp.ErrSaveCategory, http.StatusInternalServerError, "save_failed"},
	{catalogapp.ErrListProducts, http.StatusInternalServerError, "list_failed"},
	{catalogapp.ErrGetProduct, http.StatusInternalServerError, "internal_error"},
	{catalogapp.ErrListCategories, http.StatusInternalServerError, "list_failed"},

	{contentapp.ErrInvalidArticleInput, http.StatusBadRequest, "invalid_article"},
	{contentapp.ErrSlugUnresolvable, http.StatusBadRequest, "slug_unresolvable"},
	{contentapp.ErrSlugConflict, http.StatusConflict, "slug_conflict"},
	{contentapp.ErrArticleNotFound, http.StatusNotFound, "not_found"},
	{contentapp.ErrSaveArticle, http.StatusInternalServerError, "save_failed"},
	{contentapp.ErrDeleteArticle, http.StatusInternalServerError, "delete_failed"},
	{contentapp.ErrListArticles, http.StatusInternalServerError, "list_failed"},
	{contentapp.ErrGetArticle, http.StatusInternalServerError, "internal_error"},

	{accountapp.ErrInvalidUserID, http.StatusBadRequest, "invalid_user_id"},
	{accountapp.ErrInvalidRole, http.StatusBadRequest, "invalid_role"},
	{accountapp.ErrInvalidProfileInput, http.StatusBadRequest, "invalid_profile"},
	{accountapp.ErrProfileNotFound, http.StatusNotFound, "not_found"},
	{accountapp.ErrUsernameTaken, http.StatusConflict, "username_taken"},
	{accountapp.ErrGetProfile, http.StatusInternalServerError, "internal_error"},
	{accountapp.ErrUpdateRole, http.StatusInternalServerError, "update_failed"},
	{accountapp.ErrUpdateProfile, http.StatusInternalServerError, "update_failed"},
	{accountapp.ErrListProfiles, http.StatusInternalServerError, "list_failed"},

	{mediaapp.ErrNoFiles, http.StatusBadRequest, "no_files"},
	{mediaapp.ErrUnsupportedFormat, http.StatusBadRequest, "unsupported_format"},
	{mediaapp.ErrInvalidMediaID, http.StatusBadRequest, "invalid_media_id"},
	{mediaapp.ErrMediaNotFound, http.StatusNotFound, "not_found"},
	{mediaapp.ErrUploadFailed, http.StatusInternalServerError, "upload_failed"},
	{mediaapp.ErrRemoveObject, http.StatusInternalServerError, "remove_object_failed"},
	{mediaapp.ErrUpdateMedia, http.StatusInternalServerError, "update_failed"},
	{mediaapp.ErrDeleteMedia, http.StatusInternalServerError, "delete_failed"},
	{mediaapp.ErrListMedia, http.StatusInternalServerError, "list_failed"},
}

// errorFor maps a use case error to a status and body. Client errors carry
// the full error text; server errors only the matched sentinel's text.
func errorFor(err error) (int, *errorBody) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		message := m.target.Error()
		if m.status < http.StatusInternalServerError {
			message = err.Error()
		}
		return m.status, &errorBody{Code: m.code, Message: message}
	}
	return http.StatusInternalServerError, &errorBody{
		Code:    "internal_error",
		Message: "internal server error",
	}
}

func writeError(c echo.Context, err error) error {
	status, body := errorFor(err)
	return c.JSON(status, apiResponse{Error: body})
}
