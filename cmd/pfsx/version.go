package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/longsoft/pfsx/internal/version"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the pfsx version",
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx
			fmt.Println("pfsx " + version.String())
			return nil
		},
	}
}
