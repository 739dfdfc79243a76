package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/ftab/internal/fileio"
	"github.com/samcharles93/ftab/internal/logger"
	"github.com/samcharles93/ftab/pkg/ftab"
)

func packCmd() *cli.Command {
	return &cli.Command{
		Name:      "pack",
		Usage:     "Create an ftab file from a manifest",
		ArgsUsage: "<manifest> [output]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "overwrite",
				Aliases: []string{"o"},
				Usage:   "Overwrite the output file instead of stopping when it exists",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			manifestPath := cmd.Args().Get(0)
			if manifestPath == "" {
				return errors.New("pack: missing manifest path")
			}
			overwrite := overwriteDefault(cmd.IsSet("overwrite"), cmd.Bool("overwrite"), loadConfig())
			log := logger.FromContext(ctx)

			// Segment and ticket paths in the manifest are relative to the
			// manifest's own directory, and so is the default output.
			baseDir := filepath.Dir(manifestPath)
			outPath := cmd.Args().Get(1)
			if outPath == "" {
				outPath = filepath.Join(baseDir, "ftab.bin")
			}

			m, err := ftab.LoadManifest(manifestPath)
			if err != nil {
				return err
			}
			log.Debug("manifest loaded", "path", manifestPath, "segments", len(m.Segments))

			img, err := ftab.FromManifest(m, baseDir)
			if err != nil {
				return err
			}

			data, err := ftab.Encode(img)
			if err != nil {
				return fmt.Errorf("pack %q: %w", manifestPath, err)
			}

			if err := fileio.SaveFileAtomic("output file", outPath, data, overwrite); err != nil {
				return err
			}

			log.Info("packed ftab",
				"path", outPath,
				"segments", len(img.Segments),
				"ticket", img.HasTicket(),
				"bytes", len(data))
			return nil
		},
	}
}
