package commands

import (
	"testing"
)

func TestParse(t *testing.T) {
	cli := []Command{
		&VersionCmd,
		&ProvisionCmd,
		&GrantCmd,
	}

	cmd, err := Parse(cli, []string{"grant", "--org", "SENG312-2026", "--file", "repo_readaccess.xlsx"})
	if err != nil {
		t.Fatalf("Unexpected error returned from Parse (%v)", err)
	}

	if cmd != &GrantCmd {
		t.Errorf("Incorrect command - expected:%v, got:%v", GrantCmd.Name(), cmd)
	}

	if GrantCmd.org != "SENG312-2026" {
		t.Errorf("Incorrect --org option - expected:%v, got:%v", "SENG312-2026", GrantCmd.org)
	}

	if GrantCmd.file != "repo_readaccess.xlsx" {
		t.Errorf("Incorrect --file option - expected:%v, got:%v", "repo_readaccess.xlsx", GrantCmd.file)
	}
}

func TestParseWithNoCommand(t *testing.T) {
	cli := []Command{
		&VersionCmd,
	}

	cmd, err := Parse(cli, []string{})
	if err != nil {
		t.Fatalf("Unexpected error returned from Parse (%v)", err)
	}

	if cmd != nil {
		t.Errorf("Expected nil command for empty command line, got %v", cmd)
	}
}

func TestParseWithInvalidCommand(t *testing.T) {
	cli := []Command{
		&VersionCmd,
	}

	if _, err := Parse(cli, []string{"provision"}); err == nil {
		t.Fatalf("Expected error return for unregistered command, got %v", err)
	}
}
