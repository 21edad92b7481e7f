package roster

import (
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// FromValueRange converts a Google Sheets value range to a list of rows.
// Non-string cells (numeric team columns, mostly) are formatted with their
// default representation.
func FromValueRange(data *sheets.ValueRange) [][]string {
	rows := make([][]string, len(data.Values))

	for i, row := range data.Values {
		record := make([]string, len(row))
		for j, v := range row {
			if s, ok := v.(string); ok {
				record[j] = s
			} else {
				record[j] = fmt.Sprintf("%v", v)
			}
		}

		rows[i] = record
	}

	return rows
}
