package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/longsoft/pfsx/internal/extract"
	"github.com/longsoft/pfsx/pkg/pfs"
)

func extractCmd() *cli.Command {
	var (
		filePath  string
		outputDir string
		maxDepth  int
		logLevel  string
		logFormat string
	)

	return &cli.Command{
		Name:  "extract",
		Usage: "Extract every payload of a PFS firmware image into a directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to the PFS firmware image",
				Destination: &filePath,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output directory (default: <file>.extracted, must not exist)",
				Destination: &outputDir,
			},
			&cli.IntFlag{
				Name:        "max-depth",
				Usage:       "maximum container nesting depth",
				Value:       extract.DefaultMaxDepth,
				Destination: &maxDepth,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Value:       "info",
				Destination: &logLevel,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "log format (pretty, text, json)",
				Value:       "pretty",
				Destination: &logFormat,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx
			applyExtractConfig(c, LoadConfig(), &logLevel, &logFormat, &maxDepth)
			log := newLogger(os.Stderr, logLevel, logFormat)

			if outputDir == "" {
				outputDir = filePath + ".extracted"
			}

			in, err := pfs.Open(filePath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: open image: %v", err), 1)
			}
			defer func() { _ = in.Close() }()

			sink, err := extract.NewDirSink(outputDir)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			e := extract.New(sink, log, extract.Options{MaxDepth: maxDepth})
			if err := e.Run(in.Data); err != nil {
				return cli.Exit(fmt.Sprintf("error: extract %s: %v", filePath, err), 1)
			}

			log.Info("extraction complete", "artifacts", e.Artifacts(), "output", sink.Root())
			return nil
		},
	}
}
