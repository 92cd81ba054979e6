package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lexfeed/lexfeed/internal/linereader"
	"github.com/lexfeed/lexfeed/internal/logger"
	"github.com/lexfeed/lexfeed/internal/tokenizer"
)

func feedCmd() *cli.Command {
	var (
		dataFile  string
		startLine int64
		endLine   int64
		encode    bool
		decode    bool
		pretty    bool
	)

	return &cli.Command{
		Name:  "feed",
		Usage: "Run a line range of a data file through a tokenizer",
		Flags: append(commonDataFlags(),
			tokenizerFlag(false),
			&cli.StringFlag{
				Name:        "data-file",
				Aliases:     []string{"f"},
				Usage:       "name of the text data file in <data-dir>/original_text",
				Required:    true,
				Destination: &dataFile,
			},
			&cli.Int64Flag{
				Name:        "start-line",
				Aliases:     []string{"sl"},
				Usage:       "start line number (0-based)",
				Required:    true,
				Destination: &startLine,
			},
			&cli.Int64Flag{
				Name:        "end-line",
				Aliases:     []string{"el"},
				Usage:       "end line number (0-based, inclusive; -1 reads to end of file)",
				Required:    true,
				Destination: &endLine,
			},
			&cli.BoolFlag{
				Name:        "encode",
				Aliases:     []string{"e"},
				Usage:       "encode each line",
				Destination: &encode,
			},
			&cli.BoolFlag{
				Name:        "decode",
				Aliases:     []string{"d"},
				Usage:       "decode token IDs (from the encode step, or from the lines themselves)",
				Destination: &decode,
			},
			&cli.BoolFlag{
				Name:        "pretty",
				Usage:       "prefix output with original line numbers",
				Destination: &pretty,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyDataConfig(cmd, LoadConfig())
			log := logger.FromContext(ctx)

			path, err := dataFilePath(dataFile)
			if err != nil {
				return err
			}
			log.Debug("reading data file", "path", path, "start", startLine, "end", endLine)

			lines, err := linereader.Read(path, linereader.Range{
				Start: int(startLine),
				End:   int(endLine),
			})
			if err != nil {
				return err
			}
			fmt.Printf("Read %d lines from the file.\n", len(lines))

			if tokenizerLabel == "" && !encode && !decode {
				displayLines("Lines read", lines, pretty)
				return nil
			}
			if tokenizerLabel == "" {
				return fmt.Errorf("tokenizer (-T) is required with -e or -d")
			}

			tok, err := tokenizer.Open(tokenizer.Config{VocabDir: resolveVocabDir()}, tokenizer.Kind(tokenizerLabel))
			if err != nil {
				return err
			}

			switch {
			case encode:
				encoded, err := encodeLines(tok, lines)
				if err != nil {
					return err
				}
				displayEncoded("Encoded Data", lines, encoded, pretty)
				if decode {
					// Decode feeds on the IDs just produced above.
					decoded, err := decodeLists(tok, encoded)
					if err != nil {
						return err
					}
					displayDecoded("Decoded Data", lines, decoded, pretty)
				}
			case decode:
				// Without -e the selected lines are expected to hold token
				// IDs themselves.
				encoded := make([][]int, len(lines))
				for i, line := range lines {
					ids, err := parseIDs(strings.Fields(line.Text))
					if err != nil {
						return fmt.Errorf("line %d: parse token ids: %w", line.Num, err)
					}
					encoded[i] = ids
				}
				decoded, err := decodeLists(tok, encoded)
				if err != nil {
					return err
				}
				displayDecoded("Decoded Data", lines, decoded, pretty)
			default:
				displayLines("Lines read", lines, pretty)
			}
			return nil
		},
	}
}

func encodeLines(tok tokenizer.Tokenizer, lines []linereader.Line) ([][]int, error) {
	out := make([][]int, len(lines))
	for i, line := range lines {
		ids, err := tok.Encode(line.Text)
		if err != nil {
			return nil, fmt.Errorf("encode line %d: %w", line.Num, err)
		}
		out[i] = ids
	}
	return out, nil
}

func decodeLists(tok tokenizer.Tokenizer, lists [][]int) ([]string, error) {
	out := make([]string, len(lists))
	for i, ids := range lists {
		text, err := tok.Decode(ids)
		if err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		out[i] = text
	}
	return out, nil
}

func displayLines(header string, lines []linereader.Line, pretty bool) {
	if !pretty {
		texts := make([]string, len(lines))
		for i, line := range lines {
			texts[i] = line.Text
		}
		fmt.Printf("%s: [%s]\n", header, strings.Join(texts, ", "))
		return
	}
	fmt.Printf("%s:\n", header)
	for _, line := range lines {
		fmt.Printf("Line %d: %s\n", line.Num, line.Text)
	}
}

func displayEncoded(header string, lines []linereader.Line, encoded [][]int, pretty bool) {
	if !pretty {
		fmt.Printf("%s: %s\n", header, formatIDLists(encoded))
		return
	}
	fmt.Printf("%s:\n", header)
	for i, line := range lines {
		fmt.Printf("Line %d: %s\n", line.Num, formatIDs(encoded[i]))
	}
}

func displayDecoded(header string, lines []linereader.Line, decoded []string, pretty bool) {
	if !pretty {
		fmt.Printf("%s: [%s]\n", header, strings.Join(decoded, ", "))
		return
	}
	fmt.Printf("%s:\n", header)
	for i, line := range lines {
		fmt.Printf("Line %d: %s\n", line.Num, decoded[i])
	}
}
