package commands

import (
	"context"
	"fmt"

	"github.com/colonyops/mindflow/internal/mindflow"
	"github.com/colonyops/mindflow/pkg/iojson"
	"github.com/urfave/cli/v3"
)

// SummaryCmd implements the mindflow summary command.
type SummaryCmd struct {
	flags *Flags
	app   *mindflow.App

	json bool
}

// NewSummaryCmd creates a new summary command.
func NewSummaryCmd(flags *Flags, app *mindflow.App) *SummaryCmd {
	return &SummaryCmd{flags: flags, app: app}
}

// Register adds the summary command to the application.
func (cmd *SummaryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "summary",
		Usage:     "Show how many items each view holds",
		UsageText: "mindflow summary [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print counts as JSON",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SummaryCmd) run(ctx context.Context, c *cli.Command) error {
	counts, err := cmd.app.Library.Counts(ctx)
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}

	if cmd.json {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, counts)
	}
	return renderSummary(c.Root().Writer, counts)
}
