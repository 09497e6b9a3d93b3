package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/brew-available/internal/available"
	"github.com/blackwell-systems/brew-available/internal/brew"
	"github.com/blackwell-systems/brew-available/internal/config"
	"github.com/blackwell-systems/brew-available/internal/log"
	"github.com/blackwell-systems/brew-available/internal/output"
)

// UsageError reports an unknown flag or an unexpected argument.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// registryFactory builds the package registry for a run.
type registryFactory func(cfg *config.Config) available.Registry

func brewRegistry(cfg *config.Config) available.Registry {
	return brew.NewClient(brew.Options{
		Brew:          cfg.Brew,
		InstalledOnly: cfg.InstalledOnly,
	})
}

type listOptions struct {
	casks      bool
	formulae   bool
	json       bool
	deps       bool
	debug      bool
	configPath string
}

// newRootCmd builds the brew-available command. Each call returns a command
// with fresh flag state.
func newRootCmd(newRegistry registryFactory) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "brew-available",
		Short: "List all available formulae and casks in a clean format",
		Long: `brew-available lists every formula and cask known to the local Homebrew
registry, one per line, or as a JSON array.

Install the binary anywhere on PATH to run it as 'brew available'.

Line format:
  <formula|cask>: <name> (<version>) - <description>

Packages without a description show their name instead.`,
		Example: `  # List everything, formulae first
  brew available

  # List only casks as JSON
  brew available --casks --json

  # Include dependencies and dependents in JSON output
  brew available --formulae --json --deps`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &UsageError{Err: fmt.Errorf("unexpected argument %q: brew-available takes no arguments", args[0])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts, newRegistry)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	flags := cmd.Flags()
	flags.BoolVar(&opts.casks, "casks", false, "List only casks.")
	flags.BoolVar(&opts.formulae, "formulae", false, "List only formulae.")
	flags.BoolVar(&opts.json, "json", false, "Output in clean JSON format.")
	flags.BoolVar(&opts.deps, "deps", false, "Include dependencies and dependents in JSON output.")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")
	flags.StringVar(&opts.configPath, "config", "", "config file (default: "+config.DefaultPath()+")")

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions, newRegistry registryFactory) error {
	log.SetDebug(opts.debug)

	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Debug {
		log.SetDebug(true)
	}
	if opts.casks && opts.formulae {
		log.Debug("both --casks and --formulae given, listing casks")
	}

	kinds := available.SelectKinds(opts.casks, opts.formulae)
	log.Debug("listing packages", "kinds", kinds, "deps", opts.deps, "installed_only", cfg.InstalledOnly)

	items, err := available.Gather(cmd.Context(), newRegistry(cfg), kinds, opts.deps)
	if err != nil {
		return err
	}

	return output.Render(cmd.OutOrStdout(), items, opts.json)
}

// Execute runs brew-available with the process arguments.
func Execute(ctx context.Context) error {
	return execute(ctx, newRootCmd(brewRegistry), nil)
}

// execute runs cmd with args (the process arguments when args is nil) and
// prints usage to stderr for usage errors.
func execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	if args != nil {
		cmd.SetArgs(args)
	}

	c, err := cmd.ExecuteContextC(ctx)
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(c.ErrOrStderr(), c.UsageString())
	}
	return err
}

// ExitCode maps an Execute error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return 2
	}
	return 1
}
