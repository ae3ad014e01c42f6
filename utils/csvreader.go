package utils

import (
	"encoding/csv"
	"io"
)

// ParseCSV reads every data row, skipping the header row. Rows may carry
// varying field counts; callers check the lengths they need.
func ParseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		rows = rows[1:]
	}
	return rows, nil
}
