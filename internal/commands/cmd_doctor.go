package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/colonyops/mindflow/internal/core/doctor"
	"github.com/colonyops/mindflow/internal/core/styles"
	"github.com/colonyops/mindflow/internal/mindflow"
	"github.com/colonyops/mindflow/pkg/iojson"
	"github.com/urfave/cli/v3"
)

// errUnhealthy is returned when at least one doctor check fails.
var errUnhealthy = errors.New("doctor found problems")

// DoctorCmd implements the mindflow doctor command.
type DoctorCmd struct {
	flags  *Flags
	app    *mindflow.App
	format string
}

// NewDoctorCmd creates a new doctor command.
func NewDoctorCmd(flags *Flags, app *mindflow.App) *DoctorCmd {
	return &DoctorCmd{flags: flags, app: app}
}

// Register adds the doctor command to the application.
func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Run health checks on your configuration and stored items",
		UsageText:   "mindflow doctor [options]",
		Description: "Validates the configuration, then reads the raw item payload and checks it decodes and keeps ids unique.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	results := cmd.app.Doctor.RunChecks(ctx, cmd.flags.ConfigPath)

	var err error
	if cmd.format == "json" {
		err = cmd.outputJSON(c, results)
	} else {
		err = outputDoctorText(c.Root().Writer, results)
	}
	if err != nil {
		return err
	}

	if _, _, failed := doctor.Summary(results); failed > 0 {
		return errUnhealthy
	}
	return nil
}

func (cmd *DoctorCmd) outputJSON(c *cli.Command, results []doctor.Result) error {
	passed, warned, failed := doctor.Summary(results)

	out := struct {
		Healthy bool            `json:"healthy"`
		Summary summaryJSON     `json:"summary"`
		Checks  []doctor.Result `json:"checks"`
	}{
		Healthy: failed == 0,
		Summary: summaryJSON{Passed: passed, Warned: warned, Failed: failed},
		Checks:  results,
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, out)
}

type summaryJSON struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

func outputDoctorText(w io.Writer, results []doctor.Result) error {
	divider := styles.DividerStyle.Render(strings.Repeat("─", 40))

	_, _ = fmt.Fprintln(w, styles.CountStyle.Render("Mindflow Doctor"))
	_, _ = fmt.Fprintln(w, divider)

	for _, result := range results {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, styles.DayHeaderStyle.Render(result.Name))

		for _, item := range result.Items {
			var detail string
			if item.Detail != "" {
				detail = " " + styles.ItemIDStyle.Render(item.Detail)
			}

			var icon string
			switch item.Status {
			case doctor.StatusPass:
				icon = styles.PassStyle.Render("✔")
			case doctor.StatusWarn:
				icon = styles.WarnStyle.Render("●")
			case doctor.StatusFail:
				icon = styles.FailStyle.Render("✘")
			}

			_, _ = fmt.Fprintf(w, "  %s %s%s\n", icon, item.Label, detail)
		}
	}

	passed, warned, failed := doctor.Summary(results)
	_, _ = fmt.Fprintln(w)
	_, err := fmt.Fprintf(w, "%d passed  %d warnings  %d failed\n", passed, warned, failed)
	return err
}
