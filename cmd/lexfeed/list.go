package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lexfeed/lexfeed/internal/logger"
	"github.com/lexfeed/lexfeed/internal/tokenizer"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List registered tokenizers and available data files",
		Flags: commonDataFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyDataConfig(cmd, LoadConfig())
			log := logger.FromContext(ctx)

			fmt.Println("Tokenizers:")
			for _, kind := range tokenizer.Kinds() {
				fmt.Printf("  %s\n", kind)
			}

			dir := textDir()
			files, err := discoverTextFiles(dir)
			if err != nil {
				if os.IsNotExist(err) {
					log.Warn("data directory does not exist", "dir", dir)
					return nil
				}
				return err
			}
			fmt.Printf("Data files in %s:\n", dir)
			if len(files) == 0 {
				fmt.Println("  (none)")
			}
			for _, f := range files {
				fmt.Printf("  %s\n", f)
			}
			return nil
		},
	}
}
