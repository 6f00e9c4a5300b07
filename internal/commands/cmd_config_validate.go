package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/colonyops/mindflow/internal/mindflow"
	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"
)

type ConfigValidateCmd struct {
	flags *Flags
	app   *mindflow.App
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags, app *mindflow.App) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags, app: app}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "mindflow config validate",
				Description: "Validates the configuration file, checking storage settings, paths, and the timezone.",
				Action:      cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	w := c.Root().Writer

	err := cmd.app.Config.ValidateDeep(cmd.flags.ConfigPath)
	if err == nil {
		_, _ = fmt.Fprintln(w, "configuration is valid")
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, fe := range fieldErrs {
		_, _ = fmt.Fprintf(w, "%s: %s\n", fe.Field, fe.Err)
	}
	return fmt.Errorf("%d error(s) found", len(fieldErrs))
}
