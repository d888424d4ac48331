package catalog

import (
	"bytes"
	"encoding/csv"

	domain "github.com/mohammadpnp/creations-admin/internal/domain/catalog"
)

const ImportTemplateFilename = "product_import_template.csv"

var templateExample = map[string]string{
	domain.ColumnName:          "Test Pine",
	domain.ColumnPrice:         "1200",
	domain.ColumnSlug:          "test-pine",
	domain.ColumnDescription:   "Hand-carved pine ornament",
	domain.ColumnProductType:   "ornament",
	domain.ColumnImageURL:      "https://example.com/images/test-pine.jpg",
	domain.ColumnImages:        `["https://example.com/images/test-pine-1.jpg","https://example.com/images/test-pine-2.jpg"]`,
	domain.ColumnStockQuantity: "5",
}

// ImportTemplate renders the header plus one example row.
func ImportTemplate() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	example := make([]string, 0, len(domain.ImportColumns))
	for _, column := range domain.ImportColumns {
		example = append(example, templateExample[column])
	}

	if err := w.WriteAll([][]string{domain.ImportColumns, example}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
