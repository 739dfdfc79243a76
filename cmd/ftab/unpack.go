package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/ftab/internal/fileio"
	"github.com/samcharles93/ftab/internal/logger"
	"github.com/samcharles93/ftab/pkg/ftab"
)

func unpackCmd() *cli.Command {
	return &cli.Command{
		Name:      "unpack",
		Usage:     "Unpack an ftab file into a directory of segment files plus a manifest",
		ArgsUsage: "<ftab> [outdir]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "overwrite",
				Aliases: []string{"o"},
				Usage:   "Overwrite files instead of stopping when one exists in the output directory",
			},
			&cli.BoolFlag{
				Name:    "create-parent-dirs",
				Aliases: []string{"p"},
				Usage:   "Create parent directories when the output directory does not exist",
			},
			&cli.BoolFlag{
				Name:    "print-header",
				Aliases: []string{"H"},
				Usage:   "Print the unknown header fields to stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			inPath := cmd.Args().Get(0)
			if inPath == "" {
				return errors.New("unpack: missing ftab path")
			}
			outDir := cmd.Args().Get(1)
			overwrite := overwriteDefault(cmd.IsSet("overwrite"), cmd.Bool("overwrite"), loadConfig())
			log := logger.FromContext(ctx)

			if outDir != "" {
				if err := makeOutDir(outDir, cmd.Bool("create-parent-dirs")); err != nil {
					return err
				}
			}

			img, err := ftab.Open(inPath)
			if err != nil {
				return err
			}
			log.Debug("ftab loaded", "path", inPath,
				"segments", len(img.Segments), "ticket", img.HasTicket())

			if cmd.Bool("print-header") {
				printHeader(img)
			}

			m, err := img.ToManifest(outDir, overwrite)
			if err != nil {
				return err
			}
			manifestPath := fileio.QualifyPath(ftab.ManifestFileName, outDir)
			if err := m.Save(manifestPath, overwrite); err != nil {
				return err
			}

			log.Info("unpacked ftab",
				"path", inPath,
				"manifest", manifestPath,
				"segments", len(img.Segments),
				"ticket", img.HasTicket())
			return nil
		},
	}
}

// makeOutDir creates the output directory, tolerating one that already
// exists as a directory. Parent directories are only created on request.
func makeOutDir(dir string, parents bool) error {
	var err error
	if parents {
		err = os.MkdirAll(dir, 0o755)
	} else {
		err = os.Mkdir(dir, 0o755)
	}
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrExist) {
		info, statErr := os.Stat(dir)
		if statErr == nil && info.IsDir() {
			return nil
		}
		return fmt.Errorf("output path %q exists and is not a directory", dir)
	}
	return fmt.Errorf("create output directory %q: %w", dir, err)
}

func printHeader(img *ftab.Image) {
	fmt.Printf("unk_0: %#08x\n", img.Unk0)
	fmt.Printf("unk_1: %#08x\n", img.Unk1)
	fmt.Printf("unk_2: %#08x\n", img.Unk2)
	fmt.Printf("unk_3: %#08x\n", img.Unk3)
	fmt.Printf("unk_4: %#08x\n", img.Unk4)
	fmt.Printf("unk_5: %#08x\n", img.Unk5)
	fmt.Printf("unk_6: %#08x\n", img.Unk6)
}
