package commands

import (
	"context"
	"fmt"

	"github.com/colonyops/mindflow/internal/core/item"
	"github.com/colonyops/mindflow/internal/mindflow"
	"github.com/colonyops/mindflow/pkg/iojson"
	"github.com/urfave/cli/v3"
)

// ItemCmd implements the commands that act on a single item by id.
type ItemCmd struct {
	flags *Flags
	app   *mindflow.App

	// edit and convert flags
	text     string
	tag      string
	clearTag bool
	due      string
	clearDue bool
}

// NewItemCmd creates the single-item commands.
func NewItemCmd(flags *Flags, app *mindflow.App) *ItemCmd {
	return &ItemCmd{flags: flags, app: app}
}

// Register adds the single-item commands to the application.
func (cmd *ItemCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		cmd.showCmd(),
		cmd.editCmd(),
		cmd.convertCmd(),
		cmd.statusCmd("archive", "Archive an item", "archived", (*mindflow.ItemService).Archive,
			item.ViewRaw, item.ViewTasks, item.ViewIdeas),
		cmd.statusCmd("restore", "Restore an archived item", "restored", (*mindflow.ItemService).Restore,
			item.ViewArchived),
		cmd.statusCmd("toggle", "Toggle a task's completion", "toggled", (*mindflow.ItemService).ToggleCompleted,
			item.ViewTasks),
		cmd.statusCmd("delete", "Permanently delete an item", "deleted", (*mindflow.ItemService).Delete),
	)

	return app
}

func (cmd *ItemCmd) patchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "text",
			Usage:       "replace the item text",
			Destination: &cmd.text,
		},
		&cli.StringFlag{
			Name:        "tag",
			Aliases:     []string{"t"},
			Usage:       "set the tag",
			Destination: &cmd.tag,
		},
		&cli.BoolFlag{
			Name:        "clear-tag",
			Usage:       "remove the tag",
			Destination: &cmd.clearTag,
		},
		&cli.StringFlag{
			Name:        "due",
			Usage:       "set the due date (YYYY-MM-DD or RFC 3339)",
			Destination: &cmd.due,
		},
		&cli.BoolFlag{
			Name:        "clear-due",
			Usage:       "remove the due date",
			Destination: &cmd.clearDue,
		},
	}
}

func (cmd *ItemCmd) showCmd() *cli.Command {
	return &cli.Command{
		Name:          "show",
		Usage:         "Print one item as JSON",
		UsageText:     "mindflow show <id>",
		ShellComplete: ItemIDCompleter(cmd.app),
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := requireID(c, "show")
			if err != nil {
				return err
			}

			it, err := cmd.app.Items.Get(ctx, id)
			if err != nil {
				return err
			}
			return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, it)
		},
	}
}

func (cmd *ItemCmd) editCmd() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit an item's fields",
		UsageText: "mindflow edit [--text <text>] [--tag <tag> | --clear-tag] [--due <date> | --clear-due] <id>",
		Description: `Updates only the fields given. Unknown ids are ignored.

Examples:
  mindflow edit --text "buy oat milk" k3j9x0a1b2
  mindflow edit --tag errands k3j9x0a1b2
  mindflow edit --clear-due k3j9x0a1b2`,
		Flags:         cmd.patchFlags(),
		ShellComplete: ItemIDCompleter(cmd.app),
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := requireID(c, "edit")
			if err != nil {
				return err
			}

			patch, err := cmd.patch(c)
			if err != nil {
				return err
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to change; pass --text, --tag, --clear-tag, --due or --clear-due")
			}

			if err := cmd.app.Items.UpdateFields(ctx, id, patch); err != nil {
				return fmt.Errorf("edit: %w", err)
			}

			_, _ = fmt.Fprintln(c.Root().Writer, "updated")
			return nil
		},
	}
}

func (cmd *ItemCmd) convertCmd() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Reclassify an item as raw, task or idea",
		UsageText: "mindflow convert [--text <text>] [--tag <tag>] [--due <date>] <id> <raw|task|idea>",
		Description: `Changes the item's type and makes it active again.

Converting away from a task drops its due date and completion state.

Examples:
  mindflow convert --due 2025-05-01 k3j9x0a1b2 task
  mindflow convert --tag someday k3j9x0a1b2 idea`,
		Flags:         cmd.patchFlags(),
		ShellComplete: ItemIDCompleter(cmd.app),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() < 2 {
				return fmt.Errorf("usage: mindflow convert <id> <raw|task|idea>")
			}

			id := c.Args().Get(0)
			t, err := item.ParseType(c.Args().Get(1))
			if err != nil {
				return err
			}

			patch, err := cmd.patch(c)
			if err != nil {
				return err
			}

			if err := cmd.app.Items.ConvertType(ctx, id, t, patch); err != nil {
				return fmt.Errorf("convert: %w", err)
			}

			_, _ = fmt.Fprintln(c.Root().Writer, "converted")
			return nil
		},
	}
}

func (cmd *ItemCmd) statusCmd(
	name, usage, done string,
	fn func(s *mindflow.ItemService, ctx context.Context, id string) error,
	complete ...item.View,
) *cli.Command {
	return &cli.Command{
		Name:          name,
		Usage:         usage,
		UsageText:     fmt.Sprintf("mindflow %s <id>", name),
		ShellComplete: ItemIDCompleter(cmd.app, complete...),
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := requireID(c, name)
			if err != nil {
				return err
			}

			if err := fn(cmd.app.Items, ctx, id); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			_, _ = fmt.Fprintln(c.Root().Writer, done)
			return nil
		},
	}
}

// patch builds an item.Patch from the flags that were explicitly set.
func (cmd *ItemCmd) patch(c *cli.Command) (item.Patch, error) {
	var p item.Patch

	if c.IsSet("text") {
		p.Text = &cmd.text
	}
	if c.IsSet("tag") {
		p.Tag = &cmd.tag
	}
	p.ClearTag = cmd.clearTag
	p.ClearDueDate = cmd.clearDue

	if cmd.due != "" {
		due, err := item.ParseTimestamp(cmd.due, cmd.app.Config.Location())
		if err != nil {
			return item.Patch{}, fmt.Errorf("invalid --due: %w", err)
		}
		p.DueDate = &due
	}

	return p, nil
}

func requireID(c *cli.Command, name string) (string, error) {
	if c.NArg() < 1 {
		return "", fmt.Errorf("usage: mindflow %s <id>", name)
	}
	return c.Args().Get(0), nil
}
