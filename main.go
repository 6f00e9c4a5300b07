package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/mindflow/internal/commands"
	"github.com/colonyops/mindflow/internal/core/config"
	"github.com/colonyops/mindflow/internal/core/logging"
	"github.com/colonyops/mindflow/internal/core/styles"
	"github.com/colonyops/mindflow/internal/data/stores"
	"github.com/colonyops/mindflow/internal/mindflow"
	"github.com/colonyops/mindflow/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// ldflags aren't set by `go install module@version`, so fall back to the
	// module version and VCS metadata Go records in the binary.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser   func()
		backend     stores.Backend
		mindflowApp = &mindflow.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "mindflow",
		Usage:     "Capture thoughts, then sort them into tasks and ideas",
		UsageText: "mindflow [global options] command [command options]",
		Description: `Mindflow is a capture-first notebook for the terminal.

Dump raw thoughts as they come with 'mindflow capture', then later convert
them into tasks with due dates or ideas worth keeping. Archived items stay
out of the way until restored, and everything can be exported to a single
JSON backup.`,
		Version:               build(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("MINDFLOW_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("MINDFLOW_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("MINDFLOW_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("MINDFLOW_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			// Validation ensures the theme name is known.
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			backend, err = stores.OpenBackend(ctx, cfg, logger)
			if err != nil {
				return ctx, fmt.Errorf("open %s storage: %w", cfg.Storage.Backend, err)
			}

			itemStore := stores.NewItemStore(backend.KV, cfg.Storage.Key, logging.Scoped(logger, "item-store"))

			// Commands already hold a pointer to the App.
			*mindflowApp = *mindflow.NewApp(itemStore, backend.KV, cfg, logger)

			log.Debug().
				Str("backend", string(cfg.Storage.Backend)).
				Str("data_dir", cfg.DataDir).
				Msg("mindflow ready")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if backend.Close != nil {
				if err := backend.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close storage")
					return err
				}
			}

			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewCaptureCmd(flags, mindflowApp).Register(app)
	app = commands.NewListCmd(flags, mindflowApp).Register(app)
	app = commands.NewItemCmd(flags, mindflowApp).Register(app)
	app = commands.NewSummaryCmd(flags, mindflowApp).Register(app)
	app = commands.NewBackupCmd(flags, mindflowApp).Register(app)
	app = commands.NewConfigValidateCmd(flags, mindflowApp).Register(app)
	app = commands.NewDoctorCmd(flags, mindflowApp).Register(app)

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
