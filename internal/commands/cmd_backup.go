package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/colonyops/mindflow/internal/mindflow"
	"github.com/colonyops/mindflow/pkg/iojson"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// BackupCmd implements the export, import and clear commands.
type BackupCmd struct {
	flags *Flags
	app   *mindflow.App

	out    string
	yes    bool
	reader iojson.PayloadReader

	// isTerminal reports whether confirmations can be prompted for.
	isTerminal func() bool
}

// NewBackupCmd creates the backup commands.
func NewBackupCmd(flags *Flags, app *mindflow.App) *BackupCmd {
	return &BackupCmd{
		flags: flags,
		app:   app,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// Register adds the backup commands to the application.
func (cmd *BackupCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "export",
			Usage:     "Export every item as a JSON backup",
			UsageText: "mindflow export [--out <path>]",
			Description: `Writes the whole collection as a JSON array.

Without --out the backup is printed to stdout. When --out names a directory,
the backup is written there as mindflow_backup.json. --out @ writes to the
configured backup.dir.

Examples:
  mindflow export > backup.json
  mindflow export --out ~/backups
  mindflow export --out ~/backups/today.json
  mindflow export --out @`,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:        "out",
					Aliases:     []string{"o"},
					Usage:       "file or directory to write the backup to (\"@\" = configured backup.dir)",
					Destination: &cmd.out,
				},
			},
			Action: cmd.runExport,
		},
		&cli.Command{
			Name:      "import",
			Usage:     "Replace every item with a JSON backup",
			UsageText: "mindflow import [--file <path>] [--yes]",
			Description: `Reads a backup produced by export and replaces the whole collection.

Existing items are discarded, not merged. The payload must be a JSON array of
items; anything else is rejected and storage is left untouched.

Examples:
  mindflow import --file mindflow_backup.json
  cat mindflow_backup.json | mindflow import --yes`,
			Flags: []cli.Flag{
				cmd.reader.Flag(),
				&cli.BoolFlag{
					Name:        "yes",
					Aliases:     []string{"y"},
					Usage:       "skip the confirmation prompt",
					Destination: &cmd.yes,
				},
			},
			Action: cmd.runImport,
		},
		&cli.Command{
			Name:      "clear",
			Usage:     "Delete every item",
			UsageText: "mindflow clear [--yes]",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:        "yes",
					Aliases:     []string{"y"},
					Usage:       "skip the confirmation prompt",
					Destination: &cmd.yes,
				},
			},
			Action: cmd.runClear,
		},
	)

	return app
}

func (cmd *BackupCmd) runExport(ctx context.Context, c *cli.Command) error {
	if cmd.out == "" {
		payload, err := cmd.app.Backup.Export(ctx)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		_, err = fmt.Fprintln(c.Root().Writer, payload)
		return err
	}

	target := cmd.out
	if target == "@" {
		target = cmd.app.Config.BackupDir()
	}

	path, err := cmd.app.Backup.ExportFile(ctx, target)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	_, _ = fmt.Fprintln(c.Root().Writer, path)
	return nil
}

func (cmd *BackupCmd) runImport(ctx context.Context, c *cli.Command) error {
	payload, err := cmd.reader.Read()
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	// stdin carries the payload, so it cannot answer a prompt as well
	if !cmd.yes && cmd.reader.Source() == "stdin" {
		return fmt.Errorf("import from stdin requires --yes")
	}

	ok, err := cmd.confirm(c, fmt.Sprintf("Replace all items with the contents of %s?", cmd.reader.Source()))
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(c.Root().Writer, "aborted")
		return nil
	}

	if err := cmd.app.Backup.Import(ctx, string(payload)); err != nil {
		return err
	}

	counts, err := cmd.app.Library.Counts(ctx)
	if err != nil {
		return err
	}
	return renderSummary(c.Root().Writer, counts)
}

func (cmd *BackupCmd) runClear(ctx context.Context, c *cli.Command) error {
	ok, err := cmd.confirm(c, "Delete every item permanently?")
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(c.Root().Writer, "aborted")
		return nil
	}

	if err := cmd.app.Backup.ClearAll(ctx); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(c.Root().Writer, "cleared")
	return nil
}

// confirm asks a yes/no question on the terminal unless --yes was passed.
// Without a terminal the action is refused.
func (cmd *BackupCmd) confirm(c *cli.Command, question string) (bool, error) {
	if cmd.yes {
		return true, nil
	}
	if !cmd.isTerminal() {
		return false, fmt.Errorf("refusing to continue without --yes (stdin is not a terminal)")
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "%s [y/N] ", question)
	return readYes(c.Root().Reader)
}

func readYes(r io.Reader) (bool, error) {
	if r == nil {
		r = os.Stdin
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
