package commands

import (
	"context"
	"fmt"

	"github.com/colonyops/mindflow/internal/core/item"
	"github.com/colonyops/mindflow/internal/mindflow"
	"github.com/urfave/cli/v3"
)

// ItemIDCompleter returns a ShellCompleteFunc that suggests item ids from
// the given views as positional completions, each followed by its text as
// the description.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func ItemIDCompleter(app *mindflow.App, views ...item.View) cli.ShellCompleteFunc {
	if len(views) == 0 {
		views = item.Views
	}

	return func(ctx context.Context, cmd *cli.Command) {
		// Delegate to default flag completion when typing a flag
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		w := cmd.Root().Writer
		for _, v := range views {
			items, err := app.Library.View(ctx, v)
			if err != nil {
				return
			}
			for _, it := range items {
				_, _ = fmt.Fprintf(w, "%s:%s\n", it.ID, it.Text)
			}
		}
	}
}
