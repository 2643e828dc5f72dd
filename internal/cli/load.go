package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/hierarchia/dominance"
)

// ErrEmptyInput is returned for CSV input without data rows.
var ErrEmptyInput = errors.New("cli: empty input")

// LoadRecords reads a headed CSV of interaction records.
func LoadRecords(r io.Reader) ([]dominance.Record, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptyInput
	}

	header := rows[0]
	out := make([]dominance.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(dominance.Record, len(header))
		for k, col := range header {
			if k < len(row) {
				rec[strings.TrimSpace(col)] = strings.TrimSpace(row[k])
			}
		}
		out = append(out, rec)
	}

	return out, nil
}

// LoadMatrix reads a square count matrix. If the first row is not numeric
// it is taken as the agent names, unless names is already set.
func LoadMatrix(r io.Reader, names []string) ([][]float64, []string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading matrix: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptyInput
	}

	if _, err = parseRow(rows[0]); err != nil {
		if names == nil {
			for _, c := range rows[0] {
				names = append(names, strings.TrimSpace(c))
			}
		}
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptyInput
	}

	out := make([][]float64, len(rows))
	for i, row := range rows {
		if out[i], err = parseRow(row); err != nil {
			return nil, nil, fmt.Errorf("matrix row %d: %w", i+1, err)
		}
	}

	return out, names, nil
}

func parseRow(row []string) ([]float64, error) {
	out := make([]float64, len(row))
	for j, c := range row {
		v, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			return nil, err
		}
		out[j] = v
	}

	return out, nil
}
