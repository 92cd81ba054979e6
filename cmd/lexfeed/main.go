package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lexfeed/lexfeed/internal/logger"
)

func main() {
	app := &cli.Command{
		Name:  "lexfeed",
		Usage: "Text tokenization workbench CLI",
		Flags: loggingFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			cfg := LoadConfig()
			applyLoggingConfig(cmd, cfg)
			return logger.WithContext(ctx, newLogger()), nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			tokenizeCmd(),
			feedCmd(),
			fetchCmd(),
			replCmd(),
			serveCmd(),
			listCmd(),
			versionCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
