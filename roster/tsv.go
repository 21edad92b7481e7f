package roster

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadTSV reads a tab-separated roster as a list of rows. Ragged rows are
// allowed - short rows are padded implicitly by the parsers.
func ReadTSV(f io.Reader) ([][]string, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid TSV (%v)", err)
	}

	return rows, nil
}

// WriteTSV writes a list of rows as tab-separated values.
func WriteTSV(f io.Writer, rows [][]string) error {
	if len(rows) == 0 {
		return fmt.Errorf("empty sheet")
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	for _, row := range rows {
		w.Write(row)
	}

	w.Flush()

	return w.Error()
}
