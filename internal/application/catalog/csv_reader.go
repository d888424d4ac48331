package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	domain "github.com/mohammadpnp/creations-admin/internal/domain/catalog"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// parseImportRows tokenizes the upload. Blank lines are skipped and do not
// advance row numbers; the header is row 1.
func parseImportRows(data []byte) ([]domain.ImportRow, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrFileRequired
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	var rows []domain.ImportRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
		}
		if isBlankRecord(record) {
			continue
		}

		fields := make(map[string]string, len(columns))
		for i, column := range columns {
			if i >= len(record) {
				break
			}
			if _, dup := fields[column]; dup || column == "" {
				continue
			}
			fields[column] = record[i]
		}

		rows = append(rows, domain.ImportRow{Number: len(rows) + 2, Fields: fields})
	}

	return rows, nil
}

func isBlankRecord(record []string) bool {
	return len(record) == 1 && strings.TrimSpace(record[0]) == ""
}
