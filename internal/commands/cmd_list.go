package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/mindflow/internal/core/item"
	"github.com/colonyops/mindflow/internal/mindflow"
	"github.com/urfave/cli/v3"
)

// ListCmd implements the mindflow list command.
type ListCmd struct {
	flags *Flags
	app   *mindflow.App

	search  string
	grouped bool
}

// NewListCmd creates a new list command.
func NewListCmd(flags *Flags, app *mindflow.App) *ListCmd {
	return &ListCmd{flags: flags, app: app}
}

// Register adds the list command to the application.
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List items in a view",
		UsageText: "mindflow list [--search <query>] [--grouped] [raw|tasks|ideas|archived]",
		Description: `Lists the items of one view as JSON lines. Defaults to raw thoughts.

Views:
  raw       active raw thoughts, newest first
  tasks     active tasks, earliest due date first, undated last
  ideas     active ideas, newest first
  archived  archived items of every type, newest first

--grouped renders raw thoughts for reading, with a header per day.

Examples:
  mindflow list
  mindflow list tasks
  mindflow list --search garden ideas
  mindflow list --grouped`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "search",
				Aliases:     []string{"s"},
				Usage:       "only show items whose text or tag contains the query",
				Destination: &cmd.search,
			},
			&cli.BoolFlag{
				Name:        "grouped",
				Aliases:     []string{"g"},
				Usage:       "group raw thoughts by day",
				Destination: &cmd.grouped,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	view := item.ViewRaw
	if c.NArg() > 0 {
		v, err := item.ParseView(c.Args().First())
		if err != nil {
			return err
		}
		view = v
	}

	if cmd.grouped {
		if view != item.ViewRaw {
			return fmt.Errorf("--grouped only applies to raw thoughts")
		}

		loc := cmd.app.Config.Location()
		entries, err := cmd.app.Library.RawThoughtsByDay(ctx, cmd.search, loc)
		if err != nil {
			return fmt.Errorf("list %s: %w", view, err)
		}
		return renderGrouped(c.Root().Writer, entries, time.Now().In(loc))
	}

	items, err := cmd.app.Library.Search(ctx, view, cmd.search)
	if err != nil {
		return fmt.Errorf("list %s: %w", view, err)
	}
	return writeItems(c.Root().Writer, items)
}
