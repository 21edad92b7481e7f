package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/courseops/courseops-app-github/provision"
	"github.com/courseops/courseops-app-github/roster"
)

var GrantCmd = Grant{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	},

	org:    "",
	file:   "",
	area:   "Access!A1:Z",
	dryrun: false,
}

// Grant ensures every user in a repository access list holds at least read
// access on the listed (existing) repositories.
type Grant struct {
	command
	org    string
	file   string
	area   string
	dryrun bool
}

func (cmd *Grant) Name() string {
	return "grant"
}

func (cmd *Grant) Description() string {
	return "Grants read access to existing repositories in a GitHub organization from a repository access list"
}

func (cmd *Grant) Usage() string {
	return "--org <organization> [--file <file> | --url <url> --range <range>]"
}

func (cmd *Grant) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] grant [options] --org <organization> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Reads a repository access list from a spreadsheet and grants each listed user read")
	fmt.Println("  access to the repository. Users that already have read, write or admin access are")
	fmt.Println("  skipped. Requires a GITHUB_TOKEN environment variable with the 'repo' and 'admin:org'")
	fmt.Println("  scopes.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s grant --org "SENG312-2026" --file "repo_readaccess.xlsx"`, APP)
	fmt.Println()
	fmt.Printf(`    %s grant --org "SENG312-2026" \`, APP)
	fmt.Println()
	fmt.Println(`                       --credentials "credentials.json" \`)
	fmt.Println(`                       --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                       --range "Access!A1:Z"`)
	fmt.Println()
}

func (cmd *Grant) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("grant")

	flagset.StringVar(&cmd.org, "org", cmd.org, "GitHub organization name")
	flagset.StringVar(&cmd.file, "file", cmd.file, "Access list file (.xlsx or .tsv). Takes precedence over --url")
	flagset.StringVar(&cmd.area, "range", cmd.area, fmt.Sprintf("Spreadsheet range. Defaults to %s", cmd.area))
	flagset.BoolVar(&cmd.dryrun, "dry-run", cmd.dryrun, "Logs the intended grants without making any changes")

	return flagset
}

func (cmd *Grant) Execute(ctx context.Context, options *Options) error {
	cmd.debug = options.Debug

	if strings.TrimSpace(cmd.org) == "" {
		return fmt.Errorf("--org is a required option")
	}

	rows, err := cmd.rows(cmd.file, cmd.area)
	if err != nil {
		return err
	}

	list, err := roster.ParseAccessList(rows)
	if err != nil {
		return fmt.Errorf("error parsing access list (%v)", err)
	}

	infof("found %v repositories", len(list))
	for _, repository := range list.Repositories() {
		infof("%v  %v users - %v", repository, len(list[repository]), strings.Join(list[repository], ", "))
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

	for _, repository := range list.Repositories() {
		members := list[repository]

		infof("processing repository %v (%v users)", repository, len(members))

		report, err := p.Grant(ctx, repository, members)
		switch {
		case err != nil:
			warnf("%v", err)

		case report.Failed > 0:
			warnf("%v  granted access to %v of %v users", repository, report.Granted+report.Skipped, len(members))

		default:
			infof("%v  all %v users have read access", repository, len(members))
		}

		summary.Add(repository, report, err)
	}

	printSummary(summary)

	return nil
}
