// Package tokenizer maps tokenizer kind labels to third-party tokenizer
// backends behind a minimal Encode/Decode interface.
package tokenizer

import "errors"

// Tokenizer defines the minimal interface used by the CLI and the API.
type Tokenizer interface {
	Encode(text string) ([]int, error)
	Decode(ids []int) (string, error)
}

// ErrUnknownTokenizer is returned by Open for a label outside the
// registered set.
var ErrUnknownTokenizer = errors.New("unknown tokenizer")

// Config locates on-disk vocabularies and models. Backends that ship their
// own embedded vocabulary (tiktoken, char) ignore it.
type Config struct {
	// VocabDir is the directory holding vocabulary files and
	// sentencepiece models. Defaults to ./data/vocabulary.
	VocabDir string
}

// DefaultVocabDir is used when Config.VocabDir is empty.
const DefaultVocabDir = "data/vocabulary"

func (c Config) vocabDir() string {
	if c.VocabDir == "" {
		return DefaultVocabDir
	}
	return c.VocabDir
}
