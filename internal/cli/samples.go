package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/scenario"
	"github.com/roach88/scenario/internal/samples"
)

// SamplesOptions holds flags for the samples command.
type SamplesOptions struct {
	*RootOptions
	Filter  string // sample filter (glob pattern)
	List    bool
	Inside  int
	Outside int
}

// SamplesResult holds the outcome of a samples run.
type SamplesResult struct {
	Reports []scenario.Report `json:"reports" yaml:"reports"`
	Passed  int               `json:"passed" yaml:"passed"`
	Failed  int               `json:"failed" yaml:"failed"`
	Total   int               `json:"total" yaml:"total"`
}

// NewSamplesCommand creates the samples command.
func NewSamplesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SamplesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Play the bundled sample scenarios",
		Long: `Play the bundled sample scenarios and print their transcripts.

With --format json or yaml the transcripts are replaced by one report per
sample. The temperatures can be changed to watch a scenario fail.

Exit codes:
  0 - All samples passed
  1 - One or more samples failed
  2 - Command error (bad filter, no match, unreadable config)

Examples:
  gwt samples
  gwt samples --list
  gwt samples --filter "well-*"
  gwt samples --outside 5 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSamples(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter samples by glob pattern")
	cmd.Flags().BoolVar(&opts.List, "list", false, "list sample names without playing them")
	cmd.Flags().IntVar(&opts.Inside, "inside", samples.DefaultParams.Inside, "inside temperature in °C")
	cmd.Flags().IntVar(&opts.Outside, "outside", samples.DefaultParams.Outside, "outside temperature in °C")

	return cmd
}

func runSamples(opts *SamplesOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	selected, err := samples.Match(opts.Filter)
	if err != nil {
		_ = formatter.Error(ErrCodeBadArgument, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid filter", err)
	}
	if len(selected) == 0 {
		msg := fmt.Sprintf("no sample matches %q", opts.Filter)
		_ = formatter.Error(ErrCodeNoMatch, msg, samples.Names())
		return NewExitError(ExitCommandError, msg)
	}

	if opts.List {
		names := make([]string, len(selected))
		for i, s := range selected {
			names[i] = s.Name
		}
		if formatter.Structured() {
			return formatter.Success(names)
		}
		return formatter.Success(strings.Join(names, "\n"))
	}

	params := samples.Params{Inside: opts.Inside, Outside: opts.Outside}
	runnerOpts := opts.Config.Options(opts.logger(formatter.GetErrWriter()))

	var out scenario.Output = scenario.WriterOutput(cmd.OutOrStdout())
	if formatter.Structured() {
		out = scenario.WriterOutput(io.Discard)
	}

	result := SamplesResult{
		Reports: make([]scenario.Report, 0, len(selected)),
		Total:   len(selected),
	}
	for i, s := range selected {
		if i > 0 && !formatter.Structured() {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		formatter.VerboseLog("playing %s", s.Name)

		report, err := s.Play(cmd.Context(), out, params, runnerOpts...)
		result.Reports = append(result.Reports, report)
		if err != nil {
			result.Failed++
			formatter.VerboseLog("%s failed: %v", s.Name, err)
			continue
		}
		result.Passed++
	}

	if formatter.Structured() {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d samples failed", result.Failed, result.Total))
	}
	return nil
}

// logger returns the playback logger: debug level when verbose, the
// configured level otherwise, always written to w.
func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	if o.Verbose {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if o.Config.Log.Level == "" {
		return nil
	}
	return o.Config.Logger(w)
}
