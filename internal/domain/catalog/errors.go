package catalog

import "errors"

var (
	ErrInvalidProduct       = errors.New("invalid product")
	ErrProductNotFound      = errors.New("product not found")
	ErrSlugConflict         = errors.New("slug already exists")
	ErrCategoryNameConflict = errors.New("category name already exists")
	ErrCategorySlugConflict = errors.New("category slug already exists")
)
