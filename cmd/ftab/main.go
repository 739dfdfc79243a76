package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/ftab/internal/logger"
)

func main() {
	app := &cli.Command{
		Name:  "ftab",
		Usage: "Pack and unpack 'rkosftab' firmware container files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug|info|warn|error",
				Value: "warn",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format: text|json|pretty",
				Value: "text",
			},
		},
		Before: setupLogger,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			packCmd(),
			unpackCmd(),
			inspectCmd(),
			versionCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogger builds the process logger from flags, falling back to the
// config file for anything the command line left unset, and hangs it on
// the context for the subcommands.
func setupLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg := loadConfig()

	level := cmd.String("log-level")
	if !cmd.IsSet("log-level") && cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	format := cmd.String("log-format")
	if !cmd.IsSet("log-format") && cfg.LogFormat != "" {
		format = cfg.LogFormat
	}

	var log logger.Logger
	switch format {
	case "json":
		log = logger.JSON(os.Stderr, logger.ParseLevel(level))
	case "pretty":
		log = logger.Pretty(os.Stderr, logger.ParseLevel(level))
	default:
		log = logger.Text(os.Stderr, logger.ParseLevel(level))
	}

	return logger.WithContext(ctx, log), nil
}
