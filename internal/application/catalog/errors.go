package catalog

import (
	"errors"

	domain "github.com/mohammadpnp/creations-admin/internal/domain/catalog"
)

var (
	ErrFileRequired    = errors.New("please select a file")
	ErrInvalidFileType = errors.New("invalid file type, please upload a .csv file")
	ErrMalformedCSV    = errors.New("malformed csv")
	ErrBatchWrite      = errors.New("failed to store imported products")
	ErrImportTimeout   = errors.New("import timed out")

	ErrInvalidProductInput  = errors.New("invalid product input")
	ErrInvalidCategoryInput = errors.New("invalid category input")
	ErrSlugUnresolvable     = errors.New("slug could not be derived from the name, please provide an English slug")
	ErrSaveProduct          = errors.New("failed to save product")
	ErrDeleteProduct        = errors.New("failed to delete product")
	ErrSaveCategory         = errors.New("failed to save category")
	ErrListProducts         = errors.New("failed to list products")
	ErrGetProduct           = errors.New("failed to get product")
	ErrListCategories       = errors.New("failed to list categories")

	ErrProductNotFound      = domain.ErrProductNotFound
	ErrSlugConflict         = domain.ErrSlugConflict
	ErrCategoryNameConflict = domain.ErrCategoryNameConflict
	ErrCategorySlugConflict = domain.ErrCategorySlugConflict
)
