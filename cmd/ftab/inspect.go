package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/ftab/pkg/ftab"
)

// inspectReport is the JSON shape of `ftab inspect --json`.
type inspectReport struct {
	Unk       [7]uint32        `json:"unk"`
	Segments  []inspectSegment `json:"segments"`
	Ticket    bool             `json:"ticket"`
	TicketLen int              `json:"ticket_len,omitempty"`
}

type inspectSegment struct {
	Tag  string `json:"tag"`
	Size int    `json:"size"`
	Unk  uint32 `json:"unk"`
}

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Show the header and segment table of an ftab file",
		ArgsUsage: "<ftab>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Emit the report as JSON",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().Get(0)
			if path == "" {
				return errors.New("inspect: missing ftab path")
			}

			img, err := ftab.Open(path)
			if err != nil {
				return err
			}

			if cmd.Bool("json") {
				return printInspectJSON(img)
			}
			printInspectText(img)
			return nil
		},
	}
}

func printInspectJSON(img *ftab.Image) error {
	report := inspectReport{
		Unk:      [7]uint32{img.Unk0, img.Unk1, img.Unk2, img.Unk3, img.Unk4, img.Unk5, img.Unk6},
		Segments: make([]inspectSegment, 0, len(img.Segments)),
		Ticket:   img.HasTicket(),
	}
	for i := range img.Segments {
		seg := &img.Segments[i]
		report.Segments = append(report.Segments, inspectSegment{
			Tag:  seg.Tag.String(),
			Size: len(seg.Data),
			Unk:  seg.Unk,
		})
	}
	if img.HasTicket() {
		report.TicketLen = len(img.Ticket)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func printInspectText(img *ftab.Image) {
	printHeader(img)
	fmt.Printf("segments: %d\n", len(img.Segments))
	for i := range img.Segments {
		seg := &img.Segments[i]
		fmt.Printf("  %-4s  %8d bytes  unk=%#08x\n", seg.Tag, len(seg.Data), seg.Unk)
	}
	if img.HasTicket() {
		fmt.Printf("ticket: %d bytes\n", len(img.Ticket))
	} else {
		fmt.Println("ticket: absent")
	}
}
