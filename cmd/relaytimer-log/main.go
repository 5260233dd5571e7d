// Command relaytimer-log is a tool for viewing and analyzing relay timer
// event logs.
//
// Log files are written by relaytimer when started with the -event-log flag.
//
// Usage:
//
//	relaytimer-log <command> [flags] <file.tlog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSON or CSV format
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	relaytimer-log view timer.tlog
//
//	# View only state changes
//	relaytimer-log view --category state timer.tlog
//
//	# Export to CSV
//	relaytimer-log export --format csv -o timer.csv timer.tlog
//
//	# Keep one session's countdown ticks
//	relaytimer-log filter --session 3f2a9c1e-... --category countdown -o ticks.tlog timer.tlog
//
//	# Show statistics
//	relaytimer-log stats timer.tlog
package main

import (
	"fmt"
	"os"

	"github.com/relaytimer/relaytimer-go/cmd/relaytimer-log/commands"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "relaytimer-log",
		Short:         "Relay Timer Event Log Analyzer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newViewCommand(),
		newExportCommand(),
		newFilterCommand(),
		newStatsCommand(),
	)
	return root
}

func newViewCommand() *cobra.Command {
	var category, state string

	cmd := &cobra.Command{
		Use:   "view [flags] <file.tlog>",
		Short: "View log file in human-readable format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter commands.ViewFilter

			if category != "" {
				c, err := commands.ParseCategoryFlag(category)
				if err != nil {
					return err
				}
				filter.Category = &c
			}

			if state != "" {
				s, err := commands.ParseStateFlag(state)
				if err != nil {
					return err
				}
				filter.State = s
			}

			return commands.RunView(args[0], filter, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category (input, state, countdown, phase, output, error)")
	cmd.Flags().StringVar(&state, "state", "", "Filter by run state (stopped, running, paused)")
	return cmd
}

func newExportCommand() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export [flags] <file.tlog>",
		Short: "Export log file to JSON or CSV format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunExport(args[0], format, output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&format, "format", "jsonl", "Output format (jsonl, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

func newFilterCommand() *cobra.Command {
	var opts commands.FilterOptions

	cmd := &cobra.Command{
		Use:   "filter [flags] <file.tlog>",
		Short: "Filter log file and write to new file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := commands.RunFilter(args[0], opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Filtered %d events to %s\n", count, opts.Output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file (required)")
	cmd.Flags().StringVar(&opts.SessionID, "session", "", "Filter by session ID")
	cmd.Flags().StringVar(&opts.TimeStart, "time-start", "", "Filter events at or after this time (RFC3339)")
	cmd.Flags().StringVar(&opts.TimeEnd, "time-end", "", "Filter events before this time (RFC3339)")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&opts.State, "state", "", "Filter by run state")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file.tlog>",
		Short: "Show statistics about the log file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunStats(args[0], cmd.OutOrStdout())
		},
	}
}
