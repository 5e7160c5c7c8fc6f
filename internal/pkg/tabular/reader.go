package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/attendance"
)

// ReadRows parses a header-keyed CSV export into raw attendance rows. The
// first line is the header; every later line becomes one RawRow keyed by the
// header labels. Short lines are padded with empty values, extra cells past
// the header width are ignored. Schema validation is deliberately absent —
// missing columns surface downstream as empty values, which the normalizer
// coerces to defaults.
func ReadRows(r io.Reader) ([]attendance.RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, attendance.ErrMissingHeader
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows []attendance.RawRow
	for {
		line, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+2, err)
		}

		row := make(attendance.RawRow, len(header))
		for i, label := range header {
			if i < len(line) {
				row[label] = line[i]
			} else {
				row[label] = ""
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, attendance.ErrEmptySource
	}

	return rows, nil
}
