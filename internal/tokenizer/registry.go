package tokenizer

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Kind is a tokenizer selection label. The set is closed: every valid Kind
// has an entry in the constructor table below.
type Kind string

const (
	KindBasic         Kind = "B"
	KindTiktoken      Kind = "TIKTOKEN"
	KindBPE           Kind = "BPE"
	KindWordPiece     Kind = "WP"
	KindSentencePiece Kind = "SP"
	KindUnigram       Kind = "ULM"
	KindByteLevelBPE  Kind = "BL-BPE"
	KindChar          Kind = "CHAR"
	KindT5            Kind = "T5"
)

type constructor func(cfg Config) (Tokenizer, error)

// BPE and BL-BPE both resolve to the GPT-2 byte-level BPE vocabulary, the
// same aliasing the tool has always had.
var registry = map[Kind]constructor{
	KindBasic: func(cfg Config) (Tokenizer, error) {
		return OpenBasic(filepath.Join(cfg.vocabDir(), "basic_vocab.json"))
	},
	KindTiktoken: func(Config) (Tokenizer, error) {
		return NewTiktoken()
	},
	KindBPE: func(cfg Config) (Tokenizer, error) {
		return OpenHF(filepath.Join(cfg.vocabDir(), "gpt2", "tokenizer.json"))
	},
	KindByteLevelBPE: func(cfg Config) (Tokenizer, error) {
		return OpenHF(filepath.Join(cfg.vocabDir(), "gpt2", "tokenizer.json"))
	},
	KindWordPiece: func(cfg Config) (Tokenizer, error) {
		return OpenHF(filepath.Join(cfg.vocabDir(), "bert-base-uncased", "tokenizer.json"))
	},
	KindT5: func(cfg Config) (Tokenizer, error) {
		return OpenHF(filepath.Join(cfg.vocabDir(), "t5-small", "tokenizer.json"))
	},
	KindSentencePiece: func(cfg Config) (Tokenizer, error) {
		return OpenSentencePiece(filepath.Join(cfg.vocabDir(), "spm.model"))
	},
	KindUnigram: func(cfg Config) (Tokenizer, error) {
		return OpenSentencePiece(filepath.Join(cfg.vocabDir(), "ulm.model"))
	},
	KindChar: func(Config) (Tokenizer, error) {
		return Char{}, nil
	},
}

// Open returns the tokenizer backend registered for kind.
func Open(cfg Config, kind Kind) (Tokenizer, error) {
	ctor, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownTokenizer, kind, Kinds())
	}
	return ctor(cfg)
}

// Kinds returns all registered labels in stable order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
