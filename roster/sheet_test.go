package roster

import (
	"reflect"
	"testing"

	"google.golang.org/api/sheets/v4"
)

func TestFromValueRange(t *testing.T) {
	expected := [][]string{
		{"Repository", "GITHUB ID"},
		{"Client1", "alice"},
		{"42", "bob"},
	}

	data := sheets.ValueRange{
		Values: [][]interface{}{
			{"Repository", "GITHUB ID"},
			{"Client1", "alice"},
			{float64(42), "bob"},
		},
	}

	if rows := FromValueRange(&data); !reflect.DeepEqual(rows, expected) {
		t.Errorf("Incorrect rows\n   expected: %v\n   got:      %v\n", expected, rows)
	}
}
