package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/courseops/courseops-app-github/provision"
	"github.com/courseops/courseops-app-github/roster"
)

var ProvisionCmd = Provision{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	},

	org:    "",
	file:   "",
	area:   "Teams!A1:Z",
	teams:  8,
	dryrun: false,
}

// Provision creates the Client<N> and Designer<N> repositories for each team
// in the roster and adds the team members with push access.
type Provision struct {
	command
	org    string
	file   string
	area   string
	teams  uint
	dryrun bool
}

func (cmd *Provision) Name() string {
	return "provision"
}

func (cmd *Provision) Description() string {
	return "Creates the team repositories in a GitHub organization and adds the team members with push access"
}

func (cmd *Provision) Usage() string {
	return "--org <organization> --teams <N> [--file <file> | --url <url> --range <range>]"
}

func (cmd *Provision) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] provision [options] --org <organization> --teams <N> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Reads a team roster from a spreadsheet, creates the per-team 'Client<N>' and 'Designer<N>'")
	fmt.Println("  repositories (private, auto-initialized) and adds the team members with push access.")
	fmt.Println("  Repositories that already exist are reused. Requires a GITHUB_TOKEN environment variable")
	fmt.Println("  with the 'repo' and 'admin:org' scopes.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s provision --org "SENG321-2026" --teams 8 --file "teams.xlsx"`, APP)
	fmt.Println()
	fmt.Printf(`    %s provision --org "SENG321-2026" --teams 8 \`, APP)
	fmt.Println()
	fmt.Println(`                           --credentials "credentials.json" \`)
	fmt.Println(`                           --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                           --range "Teams!A1:Z"`)
	fmt.Println()
}

func (cmd *Provision) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("provision")

	flagset.StringVar(&cmd.org, "org", cmd.org, "GitHub organization name")
	flagset.StringVar(&cmd.file, "file", cmd.file, "Roster file (.xlsx or .tsv). Takes precedence over --url")
	flagset.StringVar(&cmd.area, "range", cmd.area, fmt.Sprintf("Spreadsheet range. Defaults to %s", cmd.area))
	flagset.UintVar(&cmd.teams, "teams", cmd.teams, fmt.Sprintf("Number of teams. Defaults to %v", cmd.teams))
	flagset.BoolVar(&cmd.dryrun, "dry-run", cmd.dryrun, "Logs the intended repositories and grants without making any changes")

	return flagset
}

func (cmd *Provision) Execute(ctx context.Context, options *Options) error {
	cmd.debug = options.Debug

	if strings.TrimSpace(cmd.org) == "" {
		return fmt.Errorf("--org is a required option")
	}

	if cmd.teams < 1 {
		return fmt.Errorf("--teams must be at least 1")
	}

	rows, err := cmd.rows(cmd.file, cmd.area)
	if err != nil {
		return err
	}

	teams, err := roster.ParseTeams(rows)
	if err != nil {
		return fmt.Errorf("error parsing teams roster (%v)", err)
	}

	infof("found %v teams", len(teams))
	for _, team := range teams.Numbers() {
		infof("team %-3v %v members - %v", team, len(teams[team]), strings.Join(teams[team], ", "))
	}

	api, err := platform(ctx, cmd.org, cmd.dryrun)
	if err != nil {
		return err
	}

	p := provision.NewProvisioner(api)
	if cmd.dryrun {
		p.MemberDelay = 0
		p.RepositoryDelay = 0
	}

	summary := provision.Summary{}

	for team := 1; team <= int(cmd.teams); team++ {
		members, ok := teams[team]
		if !ok {
			warnf("team %v not found in roster - skipping", team)
			continue
		}

		infof("processing team %v (%v members)", team, len(members))

		repositories := []struct {
			name        string
			description string
		}{
			{fmt.Sprintf("Client%v", team), fmt.Sprintf("Client repository for Team %v", team)},
			{fmt.Sprintf("Designer%v", team), fmt.Sprintf("Designer repository for Team %v", team)},
		}

		for _, repository := range repositories {
			report, err := p.Provision(ctx, repository.name, repository.description, members)
			if err != nil {
				warnf("%v", err)
			}

			summary.Add(repository.name, report, err)
		}
	}

	printSummary(summary)

	return nil
}
