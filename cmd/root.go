// Package cmd implements the CLI command structure for tasktree.
package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nibzard/tasktree/internal/config"
	"github.com/nibzard/tasktree/internal/logging"
	"github.com/nibzard/tasktree/internal/shell"
	"github.com/nibzard/tasktree/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the tasktree CLI.
func Run(ctx context.Context, args []string) error {
	root := NewRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. With no subcommand it runs the
// line shell on stdin and stdout.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tasktree",
		Short: "A hierarchical to-do list for the terminal",
		Long: `tasktree keeps a tree of tasks in memory and redraws it as a table after
every command. Tasks are addressed by dotted positions: 2.1 is the first
sub-task of the second task.

Commands read at the prompt:
  add <name> [due] [description]
  addsub <path> <name> [due] [description]
  check <path> | uncheck <path> | delete <path>
  help | exit

The tree is not saved; it lasts until the program exits.`,
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runShell,
	}
	root.SetVersionTemplate("tasktree version {{.Version}}\n")
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(newTUICommand())
	root.AddCommand(newConfigCommand())
	root.AddCommand(newVersionCommand())
	return root
}

// setup loads the configuration and opens the session logger.
func setup(cmd *cobra.Command) (*config.Config, *logging.Session, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	session, err := logging.Open(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, fmt.Errorf("opening log: %w", err)
	}
	return cfg, session, nil
}

// runShell runs the line shell until exit or end of input.
func runShell(cmd *cobra.Command, _ []string) error {
	cfg, session, err := setup(cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	session.Logger.Info("shell started", "version", Version, "config", cfg.ConfigFile)
	sh := shell.New(cfg, session.Logger)
	if err := sh.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return err
	}
	session.Logger.Info("shell finished", "tasks", sh.Tree().Len())
	return nil
}

func newTUICommand() *cobra.Command {
	var altScreen bool
	c := &cobra.Command{
		Use:   "tui",
		Short: "Edit the task tree in a full-screen terminal UI",
		Long: `Shows the task table above an input line. Type the same commands as at the
shell prompt and press enter; exit, esc or ctrl+c quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, session, err := setup(cmd)
			if err != nil {
				return err
			}
			defer session.Close()

			session.Logger.Info("tui started", "version", Version)
			sh := shell.New(cfg, session.Logger)
			return ui.RunTUI(cmd.Context(), sh,
				ui.WithAltScreen(altScreen),
				ui.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()),
			)
		},
	}
	c.Flags().BoolVar(&altScreen, "alt-screen", false, "Use the terminal's alternate screen")
	return c
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tasktree version %s\n", Version)
			fmt.Fprintf(out, "go %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
