package cli

import (
	"github.com/runoshun/backlog/internal/app"
	"github.com/runoshun/backlog/internal/domain"
	"github.com/runoshun/backlog/internal/usecase"
	"github.com/spf13/cobra"
)

// newLabelsCommand creates the labels command.
func newLabelsCommand(c *app.Container) *cobra.Command {
	var flags trackerFlags

	cmd := &cobra.Command{
		Use:   "labels [FILE]",
		Short: "Create the labels used by a backlog document",
		Long: `Create every label used by the records of FILE without creating issues.

Colors come from [labels.colors] in the config; unknown labels get
[labels] default_color. Labels that already exist have their color updated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := inputPath(c, args)
			content, err := readInput(path)
			if err != nil {
				return err
			}

			tracker, err := c.Tracker(cmd.Context(), flags.options())
			if err != nil {
				return err
			}

			rep := newConsoleReporter(cmd.OutOrStdout())
			rep.Parsing(path)

			parsed, err := c.ParseIssuesUseCase().Execute(cmd.Context(), usecase.ParseIssuesInput{Content: content})
			if err != nil {
				return err
			}
			rep.Parsed(len(parsed.Records), "")

			if err := c.CheckTrackerUseCase(tracker).Execute(cmd.Context()); err != nil {
				return reportPreflight(rep, err)
			}

			out, err := c.ProvisionLabelsUseCase(tracker).Execute(cmd.Context(), usecase.ProvisionLabelsInput{
				Labels:   domain.AllLabels(parsed.Records),
				Palette:  c.AppConfig.Palette(),
				Reporter: rep,
			})
			if err != nil {
				return err
			}

			rep.LabelsDone(out.Created, out.Existed, out.Failed)
			return nil
		},
	}

	addTrackerFlags(cmd, &flags)

	return cmd
}
