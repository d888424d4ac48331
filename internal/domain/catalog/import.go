package catalog

import (
	"fmt"
	"strings"
)

// Import columns. Header names are matched case-sensitively.
const (
	ColumnName          = "name"
	ColumnPrice         = "price"
	ColumnSlug          = "slug"
	ColumnDescription   = "description"
	ColumnProductType   = "product_type"
	ColumnImageURL      = "image_url"
	ColumnImages        = "images"
	ColumnStockQuantity = "stock_quantity"
)

// ImportColumns is the column order of the downloadable template.
var ImportColumns = []string{
	ColumnName,
	ColumnPrice,
	ColumnSlug,
	ColumnDescription,
	ColumnProductType,
	ColumnImageURL,
	ColumnImages,
	ColumnStockQuantity,
}

// ImportRow is one data line of an uploaded CSV keyed by header name.
// Number is the 1-based line position where the header is row 1.
type ImportRow struct {
	Number int
	Fields map[string]string
}

// Value returns the trimmed field and whether it holds anything.
func (r ImportRow) Value(column string) (string, bool) {
	v, ok := r.Fields[column]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// RowError records why a single row was rejected.
type RowError struct {
	Row    int               `json:"row"`
	Reason string            `json:"reason"`
	Raw    map[string]string `json:"-"`
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

type ImportOutcome string

const (
	OutcomeSuccess        ImportOutcome = "success"
	OutcomePartialSuccess ImportOutcome = "partial_success"
	OutcomeNoValidRows    ImportOutcome = "no_valid_rows"
	OutcomeFailed         ImportOutcome = "failed"
)

// ImportSummary is the report returned for every import that got past parsing.
type ImportSummary struct {
	Outcome        ImportOutcome `json:"outcome"`
	Message        string        `json:"message"`
	TotalProcessed int           `json:"total_processed"`
	SuccessCount   int           `json:"success_count"`
	ErrorCount     int           `json:"error_count"`
	Errors         []RowError    `json:"error_details"`
}

// Succeeded reports whether the batch reached the store.
func (s ImportSummary) Succeeded() bool {
	return s.Outcome == OutcomeSuccess || s.Outcome == OutcomePartialSuccess
}
