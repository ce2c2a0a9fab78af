// Command unittap-demo runs the bundled demonstration suite. Positional
// arguments filter the suite by substring or by initialism; with no arguments
// every test runs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/unittap/unittap/internal/harness"
	"github.com/unittap/unittap/internal/report"
	"github.com/unittap/unittap/internal/runner"
	"github.com/unittap/unittap/internal/version"
)

// Options carry the root command's flag values.
type Options struct {
	Plain     bool
	DiagAfter bool
	JSONPath  string
	Watch     []string
}

// NewRootCommand builds the CLI.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "unittap-demo [filter...]",
		Short: "Run the demonstration test suite",
		Long: `unittap-demo executes the bundled demonstration suite and prints a
transcript in TAP format (or a plain-text format with --plain).

Each filter argument selects tests whose name contains it; a filter that
matches nothing that way is retried against test-name initialisms, so
"tSR" selects "testStringRepr".`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "plain transcript instead of TAP")
	cmd.Flags().BoolVar(&opts.DiagAfter, "diag-after", false, "print diagnostics after result lines")
	cmd.Flags().StringVar(&opts.JSONPath, "json", "", "write a JSON run summary to this path")
	cmd.Flags().StringSliceVar(&opts.Watch, "watch", nil, "rerun when files under these paths change")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the framework version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Version)
		},
	})

	return cmd
}

func run(ctx context.Context, opts *Options, filters []string) error {
	reg := harness.NewRegistry(nil)
	registerDemoSuite(reg)

	style := report.StyleTAP
	if opts.Plain {
		style = report.StylePlain
	}
	r := runner.New(reg, runner.Options{
		Filters:          filters,
		Style:            style,
		DiagnosticsAfter: opts.DiagAfter,
		SummaryJSON:      opts.JSONPath,
		Out:              os.Stdout,
	})

	if len(opts.Watch) > 0 {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		_, err := r.Watch(ctx, opts.Watch)
		return err
	}
	r.Run(ctx)
	return nil
}

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
