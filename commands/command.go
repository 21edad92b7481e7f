package commands

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/courseops/courseops-app-github/provision"
	"github.com/courseops/courseops-app-github/roster"
)

const APP = "courseops-app-github"
const VERSION = "v0.1.0"

// Options are the command line options common to all commands.
type Options struct {
	Debug bool
}

// Command is the interface implemented by the CLI subcommands.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(ctx context.Context, options *Options) error
}

// Parse resolves the command line against the list of registered commands and
// parses the matched command's options from the remaining arguments.
func Parse(cli []Command, args []string) (Command, error) {
	if len(args) == 0 {
		return nil, nil
	}

	for _, c := range cli {
		if c.Name() == args[0] {
			if err := c.FlagSet().Parse(args[1:]); err != nil {
				return nil, err
			}

			return c, nil
		}
	}

	return nil, fmt.Errorf("invalid command '%s'", args[0])
}

// command collates the options common to the commands that read rosters.
type command struct {
	workdir     string
	credentials string
	tokens      string
	url         string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.workdir, "workdir", c.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the Google 'credentials.json' file")
	flagset.StringVar(&c.tokens, "tokens", c.tokens, "Path for the saved Google OAuth tokens file")
	flagset.StringVar(&c.url, "url", c.url, "Roster spreadsheet URL")

	return flagset
}

// rows loads the roster rows from either a local file (.xlsx or .tsv) or a
// Google Sheets worksheet range.
func (c *command) rows(file, area string) ([][]string, error) {
	if file != "" {
		switch strings.ToLower(filepath.Ext(file)) {
		case ".xlsx":
			return roster.ReadXLSX(file)

		case ".tsv":
			f, err := os.Open(file)
			if err != nil {
				return nil, fmt.Errorf("unable to open roster file %s (%v)", file, err)
			}

			defer f.Close()

			return roster.ReadTSV(f)

		default:
			return nil, fmt.Errorf("unsupported roster file format '%s'", filepath.Ext(file))
		}
	}

	if strings.TrimSpace(c.url) != "" {
		response, err := c.sheet(area)
		if err != nil {
			return nil, err
		}

		return roster.FromValueRange(response), nil
	}

	return nil, fmt.Errorf("--file or --url is a required option")
}

func printSummary(summary provision.Summary) {
	infof("repositories processed: %v", summary.Repositories)
	infof("succeeded:              %v", summary.Succeeded)
	infof("partial:                %v", summary.Partial)
	infof("failed:                 %v", len(summary.Failed))

	for _, repository := range summary.Failed {
		warnf("failed repository: %v", repository)
	}
}

func helpOptions(flagset *flag.FlagSet) {
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("  Options:")
	fmt.Println()
	fmt.Println("    --debug          Displays vaguely useful internal information")
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
