package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lexfeed/lexfeed/internal/fetch"
	"github.com/lexfeed/lexfeed/internal/logger"
)

func fetchCmd() *cli.Command {
	var (
		numBooks int64
		retries  int64
	)

	return &cli.Command{
		Name:  "fetch",
		Usage: "Download random Project Gutenberg books into the data directory",
		Flags: append(commonDataFlags(),
			&cli.Int64Flag{
				Name:        "num-books",
				Aliases:     []string{"n"},
				Usage:       "number of books to download",
				Required:    true,
				Destination: &numBooks,
			},
			&cli.Int64Flag{
				Name:        "retries",
				Aliases:     []string{"r"},
				Usage:       "extra download attempts per book before giving up",
				Value:       3,
				Destination: &retries,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyFetchConfig(cmd, LoadConfig(), &retries)
			log := logger.FromContext(ctx)

			if numBooks <= 0 {
				return fmt.Errorf("number of books must be greater than 0")
			}
			if retries < 0 {
				return fmt.Errorf("retry count must be non-negative")
			}

			dir := textDir()
			log.Info("downloading books", "count", numBooks, "dir", dir)

			client := fetch.NewClient(log)
			downloaded, err := client.DownloadN(ctx, dir, int(numBooks), int(retries))
			if err != nil {
				return err
			}
			fmt.Printf("Downloaded %d of %d books to %s\n", downloaded, numBooks, dir)
			return nil
		},
	}
}
