package roster

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the first worksheet of an Excel workbook as a list of rows.
func ReadXLSX(file string) ([][]string, error) {
	f, err := excelize.OpenFile(file)
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook %s (%v)", file, err)
	}

	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("no worksheets in workbook %s", file)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("unable to read worksheet '%s' (%v)", sheet, err)
	}

	return rows, nil
}
