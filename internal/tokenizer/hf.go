package tokenizer

import (
	"fmt"
	"os"

	sugarme "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

// HF wraps a HuggingFace tokenizer.json (BPE, WordPiece, or Unigram models)
// loaded with the pure-Go sugarme port. It backs the BPE, BL-BPE, WP and T5
// kinds, each pointing at its own pretrained vocabulary directory.
type HF struct {
	inner *sugarme.Tokenizer
}

// OpenHF loads a tokenizer.json from disk. The file has to be fetched ahead
// of time (huggingface.co exposes it per model); a missing file is reported
// with the expected location so the user knows what to download.
func OpenHF(path string) (*HF, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("tokenizer vocabulary not found at %s: %w", path, err)
	}
	tk, err := pretrained.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer %s: %w", path, err)
	}
	return &HF{inner: tk}, nil
}

// Encode returns token IDs with the model's special tokens applied, matching
// what the upstream tokenizer produces for a single sequence.
func (t *HF) Encode(text string) ([]int, error) {
	encoding, err := t.inner.EncodeSingle(text, true)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return encoding.Ids, nil
}

// Decode skips special tokens, so round-tripping user text does not leak
// [CLS]/[SEP] style markers into the output.
func (t *HF) Decode(ids []int) (string, error) {
	return t.inner.Decode(ids, true), nil
}
