package tokenizer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

const (
	basicBOS = "<|BOS|>"
	basicEOS = "<|EOS|>"
	basicUNK = "[UNK]"
)

// basicSplit matches word boundaries: single punctuation marks, a double
// dash, or whitespace.
var basicSplit = regexp.MustCompile(`--|[,.:;?_!"()']|\s`)

// Basic is a regex word/punctuation tokenizer with a growable vocabulary
// persisted as a JSON token list. Unseen tokens are appended to the
// vocabulary on encode and written back to disk, so IDs are stable across
// runs against the same vocabulary file.
type Basic struct {
	mu        sync.Mutex
	path      string
	vocab     []string
	tokenToID map[string]int
}

// OpenBasic loads the vocabulary at path, seeding a fresh one with the
// special tokens when the file does not exist yet.
func OpenBasic(path string) (*Basic, error) {
	b := &Basic{
		path:      path,
		tokenToID: make(map[string]int),
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &b.vocab); err != nil {
			return nil, fmt.Errorf("parse vocabulary %s: %w", path, err)
		}
		for id, tok := range b.vocab {
			b.tokenToID[tok] = id
		}
	case os.IsNotExist(err):
		b.add(basicBOS)
		b.add(basicEOS)
		if err := b.save(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	return b, nil
}

func (b *Basic) add(tok string) int {
	id, ok := b.tokenToID[tok]
	if ok {
		return id
	}
	b.vocab = append(b.vocab, tok)
	id = len(b.vocab) - 1
	b.tokenToID[tok] = id
	return id
}

func (b *Basic) save() error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("create vocabulary dir: %w", err)
	}
	raw, err := json.Marshal(b.vocab)
	if err != nil {
		return fmt.Errorf("encode vocabulary: %w", err)
	}
	if err := os.WriteFile(b.path, raw, 0o644); err != nil {
		return fmt.Errorf("write vocabulary %s: %w", b.path, err)
	}
	return nil
}

// Encode wraps the split tokens in BOS/EOS markers, assigning fresh IDs to
// tokens not yet in the vocabulary and persisting any growth.
func (b *Basic) Encode(text string) ([]int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tokens := []string{basicBOS}
	tokens = append(tokens, splitBasic(text)...)
	tokens = append(tokens, basicEOS)

	grew := false
	ids := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := b.tokenToID[tok]; !ok {
			grew = true
		}
		ids = append(ids, b.add(tok))
	}
	if grew {
		if err := b.save(); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

// Decode concatenates vocabulary entries; out-of-range IDs decode to the
// unknown marker and special tokens are kept in the output.
func (b *Basic) Decode(ids []int) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var sb strings.Builder
	for _, id := range ids {
		if id < 0 || id >= len(b.vocab) {
			sb.WriteString(basicUNK)
			continue
		}
		sb.WriteString(b.vocab[id])
	}
	return sb.String(), nil
}

// splitBasic splits text on punctuation, double dashes, and whitespace,
// keeping the non-whitespace delimiters as tokens.
func splitBasic(text string) []string {
	var out []string
	push := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}

	last := 0
	for _, loc := range basicSplit.FindAllStringIndex(text, -1) {
		push(text[last:loc[0]])
		push(text[loc[0]:loc[1]])
		last = loc[1]
	}
	push(text[last:])
	return out
}
