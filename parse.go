package invis

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vimldn/invis/models"
)

const utf8BOM = "\uFEFF"

// ParseRows reads CSV text whose first record is the header. Blank lines are
// skipped, short records leave their missing columns absent and extra
// fields are dropped. Empty text yields no rows.
func ParseRows(text string) ([]models.RawRow, error) {
	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(text, utf8BOM)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var rows []models.RawRow
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		if len(record) == 1 && record[0] == "" {
			continue
		}

		row := make(models.RawRow, len(header))
		for i, name := range header {
			if i >= len(record) {
				break
			}
			row[name] = record[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}
