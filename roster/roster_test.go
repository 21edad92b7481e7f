package roster

import (
	"reflect"
	"testing"
)

func TestParseTeams(t *testing.T) {
	expected := Teams{
		1: {"alice", "bob"},
		2: {"carol"},
	}

	rows := [][]string{
		{"Team", "GITHUB ID", "Email"},
		{"Team 1- B215", "alice", "alice@uvic.ca"},
		{"", "@bob", ""},
		{"team2", "car ol", ""},
	}

	teams, err := ParseTeams(rows)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseTeams (%v)", err)
	}

	if !reflect.DeepEqual(teams, expected) {
		t.Errorf("Incorrect teams\n   expected: %v\n   got:      %v\n", expected, teams)
	}
}

func TestParseTeamsWithMemberBeforeTeam(t *testing.T) {
	expected := Teams{
		1: {"bob"},
	}

	rows := [][]string{
		{"Team", "GITHUB ID"},
		{"", "alice"},
		{"Team 1", "bob"},
	}

	teams, err := ParseTeams(rows)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseTeams (%v)", err)
	}

	if !reflect.DeepEqual(teams, expected) {
		t.Errorf("Incorrect teams\n   expected: %v\n   got:      %v\n", expected, teams)
	}
}

func TestParseTeamsCarriesTeamForward(t *testing.T) {
	expected := Teams{
		3: {"bob", "carol"},
	}

	// 'Team' without a number must leave the current team unchanged
	rows := [][]string{
		{"Team", "GITHUB ID"},
		{"Team", "alice"},
		{"Team 3- B215", "bob"},
		{"Team", "carol"},
	}

	teams, err := ParseTeams(rows)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseTeams (%v)", err)
	}

	if !reflect.DeepEqual(teams, expected) {
		t.Errorf("Incorrect teams\n   expected: %v\n   got:      %v\n", expected, teams)
	}
}

func TestParseTeamsWithCompactTeamLabel(t *testing.T) {
	expected := Teams{
		12: {"alice"},
	}

	rows := [][]string{
		{"Team", "GITHUB ID"},
		{"team12", "alice"},
	}

	teams, err := ParseTeams(rows)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseTeams (%v)", err)
	}

	if !reflect.DeepEqual(teams, expected) {
		t.Errorf("Incorrect teams\n   expected: %v\n   got:      %v\n", expected, teams)
	}
}

func TestParseTeamsWithUntitledTeamColumn(t *testing.T) {
	expected := Teams{
		1: {"alice"},
	}

	rows := [][]string{
		{"", "GitHub ID"},
		{"Team 1", "alice"},
	}

	teams, err := ParseTeams(rows)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseTeams (%v)", err)
	}

	if !reflect.DeepEqual(teams, expected) {
		t.Errorf("Incorrect teams\n   expected: %v\n   got:      %v\n", expected, teams)
	}
}

func TestParseTeamsWithDuplicateMember(t *testing.T) {
	expected := Teams{
		1: {"alice"},
	}

	rows := [][]string{
		{"Team", "GITHUB ID"},
		{"Team 1", "alice"},
		{"", "@alice"},
	}

	teams, err := ParseTeams(rows)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseTeams (%v)", err)
	}

	if !reflect.DeepEqual(teams, expected) {
		t.Errorf("Incorrect teams\n   expected: %v\n   got:      %v\n", expected, teams)
	}
}

func TestParseTeamsWithMissingCells(t *testing.T) {
	expected := Teams{
		1: {"alice"},
	}

	rows := [][]string{
		{"Team", "GITHUB ID"},
		{"nan", "nan"},
		{"Team 1", "alice"},
		{"", "NaN"},
		{"", ""},
		{"", "   "},
	}

	teams, err := ParseTeams(rows)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseTeams (%v)", err)
	}

	if !reflect.DeepEqual(teams, expected) {
		t.Errorf("Incorrect teams\n   expected: %v\n   got:      %v\n", expected, teams)
	}
}

func TestParseTeamsWithEmptySheet(t *testing.T) {
	if _, err := ParseTeams([][]string{}); err == nil {
		t.Fatalf("Expected error return for empty sheet, got %v", err)
	}
}

func TestParseTeamsWithMissingGitHubIDColumn(t *testing.T) {
	rows := [][]string{
		{"Team", "Email"},
	}

	if _, err := ParseTeams(rows); err == nil {
		t.Fatalf("Expected error return for missing 'GitHub ID' column, got %v", err)
	}
}

func TestParseTeamsWithDuplicateColumnName(t *testing.T) {
	rows := [][]string{
		{"Team", "GitHub ID", "github_id"},
	}

	if _, err := ParseTeams(rows); err == nil {
		t.Fatalf("Expected error return for duplicate column name, got %v", err)
	}
}

func TestParseAccessList(t *testing.T) {
	expected := AccessList{
		"Client1": {"alice", "carol"},
		"Client2": {"dave"},
	}

	rows := [][]string{
		{"Repository", "GITHUB ID"},
		{"Client1", "alice"},
		{"", "alice"},
		{"", "carol"},
		{"Client2", ""},
		{"", "dave"},
	}

	list, err := ParseAccessList(rows)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseAccessList (%v)", err)
	}

	if !reflect.DeepEqual(list, expected) {
		t.Errorf("Incorrect access list\n   expected: %v\n   got:      %v\n", expected, list)
	}
}

func TestParseAccessListRegistersEmptyRepository(t *testing.T) {
	expected := AccessList{
		"Client9": {},
	}

	rows := [][]string{
		{"Repository", "GITHUB ID"},
		{"Client9", ""},
	}

	list, err := ParseAccessList(rows)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseAccessList (%v)", err)
	}

	if !reflect.DeepEqual(list, expected) {
		t.Errorf("Incorrect access list\n   expected: %v\n   got:      %v\n", expected, list)
	}
}

func TestParseAccessListWithMemberBeforeRepository(t *testing.T) {
	expected := AccessList{
		"Client1": {"bob"},
	}

	rows := [][]string{
		{"Repo Name", "GithubID"},
		{"", "alice"},
		{"Client1", "bob"},
	}

	list, err := ParseAccessList(rows)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseAccessList (%v)", err)
	}

	if !reflect.DeepEqual(list, expected) {
		t.Errorf("Incorrect access list\n   expected: %v\n   got:      %v\n", expected, list)
	}
}

func TestAccessListRepositories(t *testing.T) {
	expected := []string{"Client1", "Client2", "Designer1"}

	list := AccessList{
		"Designer1": {},
		"Client2":   {},
		"Client1":   {},
	}

	if repositories := list.Repositories(); !reflect.DeepEqual(repositories, expected) {
		t.Errorf("Incorrect repository list\n   expected: %v\n   got:      %v\n", expected, repositories)
	}
}

func TestTeamsNumbers(t *testing.T) {
	expected := []int{1, 2, 10}

	teams := Teams{
		10: {},
		1:  {},
		2:  {},
	}

	if numbers := teams.Numbers(); !reflect.DeepEqual(numbers, expected) {
		t.Errorf("Incorrect team numbers\n   expected: %v\n   got:      %v\n", expected, numbers)
	}
}

func TestNormalise(t *testing.T) {
	tests := []struct {
		v        string
		expected string
	}{
		{"alice", "alice"},
		{" @alice ", "alice"},
		{"a lice", "alice"},
		{"@@alice", "alice"},
		{"nan", ""},
		{"NaN", ""},
		{"", ""},
		{"   ", ""},
	}

	for _, test := range tests {
		if id := Normalise(test.v); id != test.expected {
			t.Errorf("Incorrectly normalised '%v' - expected:%v, got:%v", test.v, test.expected, id)
		}
	}
}

func TestNormaliseIsIdempotent(t *testing.T) {
	for _, v := range []string{"alice", " @ali ce ", "nan"} {
		once := Normalise(v)
		twice := Normalise(once)

		if once != twice {
			t.Errorf("Normalise is not idempotent for '%v' - first:%v, second:%v", v, once, twice)
		}
	}
}
