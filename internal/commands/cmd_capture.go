package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/colonyops/mindflow/internal/core/item"
	"github.com/colonyops/mindflow/internal/mindflow"
	"github.com/colonyops/mindflow/pkg/iojson"
	"github.com/urfave/cli/v3"
)

// CaptureCmd implements the mindflow capture command.
type CaptureCmd struct {
	flags *Flags
	app   *mindflow.App

	as  string
	due string
	tag string
}

// NewCaptureCmd creates a new capture command.
func NewCaptureCmd(flags *Flags, app *mindflow.App) *CaptureCmd {
	return &CaptureCmd{flags: flags, app: app}
}

// Register adds the capture command to the application.
func (cmd *CaptureCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "capture",
		Aliases:   []string{"add"},
		Usage:     "Capture a new thought",
		UsageText: "mindflow capture [--as task|idea] [--due <date>] [--tag <tag>] <text...>",
		Description: `Captures text as a new raw thought and prints it as JSON.

With --as the item is created directly as a task or idea instead.
Due dates accept YYYY-MM-DD or RFC 3339 timestamps and only apply to tasks.

Examples:
  mindflow capture buy milk
  mindflow capture --as task --due 2025-04-15 file taxes
  mindflow capture --as idea --tag work "weekly demo day"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "as",
				Usage:       "create as task or idea instead of a raw thought",
				Destination: &cmd.as,
			},
			&cli.StringFlag{
				Name:        "due",
				Usage:       "due date for tasks (YYYY-MM-DD or RFC 3339)",
				Destination: &cmd.due,
			},
			&cli.StringFlag{
				Name:        "tag",
				Aliases:     []string{"t"},
				Usage:       "tag for the item",
				Destination: &cmd.tag,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *CaptureCmd) run(ctx context.Context, c *cli.Command) error {
	text := strings.Join(c.Args().Slice(), " ")

	if cmd.as == "" {
		if cmd.due != "" {
			return fmt.Errorf("--due requires --as task")
		}

		created, err := cmd.app.Items.CreateRaw(ctx, text)
		if err != nil {
			return fmt.Errorf("capture: %w", err)
		}
		if cmd.tag != "" {
			if err := cmd.app.Items.UpdateFields(ctx, created.ID, item.Patch{Tag: &cmd.tag}); err != nil {
				return fmt.Errorf("capture: %w", err)
			}
			created, err = cmd.app.Items.Get(ctx, created.ID)
			if err != nil {
				return fmt.Errorf("capture: %w", err)
			}
		}
		return iojson.WriteLine(c.Root().Writer, created)
	}

	t, err := item.ParseType(cmd.as)
	if err != nil {
		return err
	}

	fields := item.Fields{Text: text}
	if cmd.tag != "" {
		fields.Tag = &cmd.tag
	}
	if cmd.due != "" {
		due, err := item.ParseTimestamp(cmd.due, cmd.app.Config.Location())
		if err != nil {
			return fmt.Errorf("invalid --due: %w", err)
		}
		fields.DueDate = &due
	}

	created, err := cmd.app.Items.CreateTyped(ctx, t, fields)
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	return iojson.WriteLine(c.Root().Writer, created)
}
