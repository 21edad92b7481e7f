package roster

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadXLSX(t *testing.T) {
	expected := Teams{
		1: {"alice", "bob"},
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Team")
	f.SetCellValue("Sheet1", "B1", "GITHUB ID")
	f.SetCellValue("Sheet1", "A2", "Team 1- B215")
	f.SetCellValue("Sheet1", "B2", "alice")
	f.SetCellValue("Sheet1", "B3", "@bob")

	file := filepath.Join(t.TempDir(), "teams.xlsx")
	if err := f.SaveAs(file); err != nil {
		t.Fatalf("Unexpected error saving workbook (%v)", err)
	}

	rows, err := ReadXLSX(file)
	if err != nil {
		t.Fatalf("Unexpected error returned from ReadXLSX (%v)", err)
	}

	teams, err := ParseTeams(rows)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseTeams (%v)", err)
	}

	if !reflect.DeepEqual(teams, expected) {
		t.Errorf("Incorrect teams\n   expected: %v\n   got:      %v\n", expected, teams)
	}
}

func TestReadXLSXWithMissingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "missing.xlsx")

	if _, err := ReadXLSX(file); err == nil {
		t.Fatalf("Expected error return for missing workbook, got %v", err)
	}
}
