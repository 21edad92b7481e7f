package commands

import (
	"context"
	"flag"
	"fmt"
)

// Help lists the registered commands or displays the long form help for a
// single command.
type Help struct {
	cli     []Command
	flagset *flag.FlagSet
}

func NewHelp(cli []Command) *Help {
	return &Help{
		cli: cli,
	}
}

func (h *Help) Name() string {
	return "help"
}

func (h *Help) Description() string {
	return "Displays the help information for a command"
}

func (h *Help) Usage() string {
	return "[command]"
}

func (h *Help) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s help [command]\n", APP)
	fmt.Println()
}

func (h *Help) FlagSet() *flag.FlagSet {
	if h.flagset == nil {
		h.flagset = flag.NewFlagSet("help", flag.ExitOnError)
	}

	return h.flagset
}

func (h *Help) Execute(ctx context.Context, options *Options) error {
	if args := h.FlagSet().Args(); len(args) > 0 {
		for _, c := range h.cli {
			if c.Name() == args[0] {
				c.Help()
				return nil
			}
		}

		return fmt.Errorf("invalid command '%s'", args[0])
	}

	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] <command> [options]\n", APP)
	fmt.Println()
	fmt.Println("  Commands:")
	fmt.Println()

	for _, c := range h.cli {
		fmt.Printf("    %-10s %s\n", c.Name(), c.Description())
	}

	fmt.Printf("    %-10s %s\n", h.Name(), h.Description())
	fmt.Println()
	fmt.Printf("  Use '%s help <command>' for command specific information\n", APP)
	fmt.Println()

	return nil
}
