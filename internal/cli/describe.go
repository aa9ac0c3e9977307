package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/scenario/internal/narrate"
)

// Description pairs an identifier with its step sentence.
type Description struct {
	Identifier string `json:"identifier" yaml:"identifier"`
	Sentence   string `json:"sentence" yaml:"sentence"`
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <identifier>...",
		Short: "Turn identifiers into step sentences",
		Long: `Print the step description derived from each identifier, as used by
named steps. A leading "Test" prefix is dropped.

Examples:
  gwt describe IWantToGoPlayOutside
  gwt describe TestWhenTheWeatherIsTooCold the_temperature_is_below_0c
  gwt describe --format json TheTemperatureIsBelow0c`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(rootOpts, args, cmd)
		},
	}
}

func runDescribe(opts *RootOptions, identifiers []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	descriptions := make([]Description, 0, len(identifiers))
	for _, id := range identifiers {
		sentence := narrate.Sentence(narrate.TrimTestPrefix(id))
		if sentence == "" {
			_ = formatter.Error(ErrCodeBadArgument, fmt.Sprintf("identifier %q has no words", id), nil)
			return NewExitError(ExitCommandError, fmt.Sprintf("identifier %q has no words", id))
		}
		descriptions = append(descriptions, Description{Identifier: id, Sentence: sentence})
	}

	if formatter.Structured() {
		return formatter.Success(descriptions)
	}

	lines := make([]string, len(descriptions))
	for i, d := range descriptions {
		lines[i] = d.Sentence
		formatter.VerboseLog("%s -> %s", d.Identifier, d.Sentence)
	}
	return formatter.Success(strings.Join(lines, "\n"))
}
