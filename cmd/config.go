package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nibzard/tasktree/internal/config"
)

func newConfigCommand() *cobra.Command {
	var example, sources bool
	c := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Prints the configuration after merging defaults, the user and project config
files, --config, TASKTREE_* environment variables and flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if example {
				_, err := io.WriteString(out, config.ExampleConfig())
				return err
			}

			cws, err := config.LoadWithSources(cmd.Flags())
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if sources {
				printSources(out, cws)
				return nil
			}
			return cws.Config.WriteTOML(out)
		},
	}
	c.Flags().BoolVar(&example, "example", false, "Print an example config file")
	c.Flags().BoolVar(&sources, "sources", false, "Show where each value came from")
	c.AddCommand(newConfigValidateCommand())
	c.AddCommand(newConfigPathCommand())
	return c
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a config file against the schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.LoadFile(args[0]); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			return nil
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the user config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.UserConfigPath()
			if path == "" {
				return fmt.Errorf("no user config directory")
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func printSources(w io.Writer, cws *config.ConfigWithSources) {
	fmt.Fprintln(w, "Config files:")
	if len(cws.Files) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, f := range cws.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	fmt.Fprintln(w)

	fields := make([]string, 0, len(cws.Sources))
	for field := range cws.Sources {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	fmt.Fprintln(w, "Sources:")
	for _, field := range fields {
		fmt.Fprintf(w, "  %-15s %s\n", field, cws.Sources[field])
	}
}
