package cli

import (
	"fmt"

	"github.com/runoshun/backlog/internal/app"
	"github.com/runoshun/backlog/internal/infra/snapshot"
	"github.com/runoshun/backlog/internal/usecase"
	"github.com/spf13/cobra"
)

// newParseCommand creates the parse command.
func newParseCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse [FILE]",
		Short: "Print the issue records of a backlog document",
		Long: `Parse FILE and print its issue records to stdout without touching the tracker.

Blocks without an "Issue #N: title" line are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readInput(inputPath(c, args))
			if err != nil {
				return err
			}

			out, err := c.ParseIssuesUseCase().Execute(cmd.Context(), usecase.ParseIssuesInput{Content: content})
			if err != nil {
				return err
			}

			data, err := snapshot.EncodeFormat(format, out.Records)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", snapshot.FormatJSON, "Output format: json or yaml")

	return cmd
}
