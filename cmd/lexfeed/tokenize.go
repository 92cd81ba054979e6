package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lexfeed/lexfeed/internal/tokenizer"
)

func tokenizeCmd() *cli.Command {
	var (
		encode bool
		decode bool
		text   string
	)

	return &cli.Command{
		Name:  "tokenize",
		Usage: "Encode text or decode token IDs with a named tokenizer",
		Flags: append(commonDataFlags(),
			tokenizerFlag(true),
			&cli.BoolFlag{
				Name:        "encode",
				Aliases:     []string{"e"},
				Usage:       "encode the input text",
				Destination: &encode,
			},
			&cli.BoolFlag{
				Name:        "decode",
				Aliases:     []string{"d"},
				Usage:       "decode the input token IDs",
				Destination: &decode,
			},
			&cli.StringFlag{
				Name:        "text",
				Aliases:     []string{"s"},
				Usage:       "input text to encode (used with -e)",
				Destination: &text,
			},
			&cli.StringSliceFlag{
				Name:    "token-ids",
				Aliases: []string{"t"},
				Usage:   "token IDs to decode (used with -d)",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyDataConfig(cmd, LoadConfig())

			if encode && decode {
				return fmt.Errorf("cannot use both -e and -d at the same time")
			}
			if !encode && !decode {
				return fmt.Errorf("must specify either -e (encode) or -d (decode)")
			}
			if encode && text == "" {
				return fmt.Errorf("text to encode (-s) is required for encoding")
			}

			// Token IDs may come in through -t and as trailing args, so the
			// argparse-style "-t 1 2 3" form keeps working.
			rawIDs := append(cmd.StringSlice("token-ids"), cmd.Args().Slice()...)
			ids, err := parseIDs(rawIDs)
			if err != nil {
				return fmt.Errorf("parse token ids: %w", err)
			}
			if decode && len(ids) == 0 {
				return fmt.Errorf("token IDs to decode (-t) are required for decoding")
			}

			tok, err := tokenizer.Open(tokenizer.Config{VocabDir: resolveVocabDir()}, tokenizer.Kind(tokenizerLabel))
			if err != nil {
				return err
			}

			fmt.Printf("Tokenizer: %s\n", tokenizerLabel)
			if encode {
				ids, err := tok.Encode(text)
				if err != nil {
					return err
				}
				fmt.Printf("Token IDs: %s\n", formatIDs(ids))
				return nil
			}

			decoded, err := tok.Decode(ids)
			if err != nil {
				return err
			}
			fmt.Printf("Decoded Text: %s\n", decoded)
			return nil
		},
	}
}
