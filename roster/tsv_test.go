package roster

import (
	"reflect"
	"strings"
	"testing"
)

func TestReadTSV(t *testing.T) {
	expected := [][]string{
		{"Team", "GITHUB ID"},
		{"Team 1- B215", "alice"},
		{"", "bob"},
	}

	tsv := "Team\tGITHUB ID\nTeam 1- B215\talice\n\tbob\n"

	rows, err := ReadTSV(strings.NewReader(tsv))
	if err != nil {
		t.Fatalf("Unexpected error returned from ReadTSV (%v)", err)
	}

	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("Incorrect rows\n   expected: %v\n   got:      %v\n", expected, rows)
	}
}

func TestReadTSVWithRaggedRows(t *testing.T) {
	expected := [][]string{
		{"Repository", "GITHUB ID", "Notes"},
		{"Client1", "alice"},
		{"", "bob", "sponsor", "extra"},
	}

	tsv := "Repository\tGITHUB ID\tNotes\nClient1\talice\n\tbob\tsponsor\textra\n"

	rows, err := ReadTSV(strings.NewReader(tsv))
	if err != nil {
		t.Fatalf("Unexpected error returned from ReadTSV (%v)", err)
	}

	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("Incorrect rows\n   expected: %v\n   got:      %v\n", expected, rows)
	}
}

func TestWriteTSV(t *testing.T) {
	expected := "Team\tGITHUB ID\nTeam 1- B215\talice\n\tbob\n"

	rows := [][]string{
		{"Team", "GITHUB ID"},
		{"Team 1- B215", "alice"},
		{"", "bob"},
	}

	var f strings.Builder

	if err := WriteTSV(&f, rows); err != nil {
		t.Fatalf("Unexpected error returned from WriteTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %q\n   got:      %q\n", expected, f.String())
	}
}

func TestWriteTSVWithEmptySheet(t *testing.T) {
	var f strings.Builder

	if err := WriteTSV(&f, [][]string{}); err == nil {
		t.Fatalf("Expected error return for empty sheet, got %v", err)
	}
}
