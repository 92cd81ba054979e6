package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lexfeed/lexfeed/internal/tokenizer"
)

func replCmd() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "Interactively encode lines from stdin",
		Flags: append(commonDataFlags(), tokenizerFlag(false)),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyDataConfig(cmd, LoadConfig())
			if tokenizerLabel == "" {
				tokenizerLabel = string(tokenizer.KindTiktoken)
			}

			tok, err := tokenizer.Open(tokenizer.Config{VocabDir: resolveVocabDir()}, tokenizer.Kind(tokenizerLabel))
			if err != nil {
				return err
			}

			reader := bufio.NewReader(os.Stdin)
			for {
				fmt.Print(">>> ")
				input, err := reader.ReadString('\n')
				if errors.Is(err, io.EOF) && input == "" {
					fmt.Println()
					return nil
				}
				if err != nil && !errors.Is(err, io.EOF) {
					return err
				}
				// Literal \n in the input stands for a real newline.
				input = strings.ReplaceAll(strings.TrimSuffix(input, "\n"), `\n`, "\n")

				ids, err := tok.Encode(input)
				if err != nil {
					fmt.Printf("error: %v\n", err)
					continue
				}
				fmt.Println(formatIDs(ids))
				text, err := tok.Decode(ids)
				if err != nil {
					fmt.Printf("error: %v\n", err)
					continue
				}
				fmt.Println(text)
			}
		},
	}
}
