package main

import (
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lexfeed/lexfeed/internal/logger"
)

var (
	dataDir        string
	vocabDir       string
	tokenizerLabel string
	logLevel       string
	logFormat      string
	debug          bool
)

func commonDataFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "directory holding original_text files",
			Value:       "data",
			Destination: &dataDir,
		},
		&cli.StringFlag{
			Name:        "vocab-dir",
			Usage:       "directory holding tokenizer vocabularies and models",
			Value:       "data/vocabulary",
			Destination: &vocabDir,
		},
	}
}

func tokenizerFlag(required bool) cli.Flag {
	return &cli.StringFlag{
		Name:        "tokenizer",
		Aliases:     []string{"T"},
		Usage:       "tokenizer kind (B, TIKTOKEN, BPE, WP, SP, ULM, BL-BPE, CHAR, T5)",
		Required:    required,
		Destination: &tokenizerLabel,
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}

func newLogger() logger.Logger {
	level := logger.ParseLevel(logLevel)
	if debug {
		level = logger.ParseLevel("debug")
	}
	switch logFormat {
	case "json":
		return logger.JSON(os.Stderr, level)
	case "text":
		return logger.Text(os.Stderr, level)
	default:
		return logger.Pretty(os.Stderr, level)
	}
}
