package tokenizer

import (
	"path/filepath"
	"reflect"
	"testing"
)

func newBasic(t *testing.T) (*Basic, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "basic_vocab.json")
	b, err := OpenBasic(path)
	if err != nil {
		t.Fatalf("open basic: %v", err)
	}
	return b, path
}

func TestBasicSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"hello world", []string{"hello", "world"}},
		{"Hello, world!", []string{"Hello", ",", "world", "!"}},
		{"well--known fact", []string{"well", "--", "known", "fact"}},
		{"it's fine", []string{"it", "'", "s", "fine"}},
		{"  spaced   out  ", []string{"spaced", "out"}},
		{"", nil},
		{"(a) b; c?", []string{"(", "a", ")", "b", ";", "c", "?"}},
	}
	for _, tc := range tests {
		if got := splitBasic(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitBasic(%q): got %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestBasicEncodeWrapsSpecials(t *testing.T) {
	t.Parallel()

	b, _ := newBasic(t)
	ids, err := b.Encode("hello world")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// BOS=0, EOS=1 from the seeded vocabulary, then the two new words.
	want := []int{0, 2, 3, 1}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("got %v want %v", ids, want)
	}
}

func TestBasicRoundTripPreservesSpecials(t *testing.T) {
	t.Parallel()

	b, _ := newBasic(t)
	ids, err := b.Encode("hi")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	text, err := b.Decode(ids)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if text != "<|BOS|>hi<|EOS|>" {
		t.Fatalf("unexpected decode: %q", text)
	}
}

func TestBasicDecodeUnknownID(t *testing.T) {
	t.Parallel()

	b, _ := newBasic(t)
	text, err := b.Decode([]int{0, 999, 1})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if text != "<|BOS|>[UNK]<|EOS|>" {
		t.Fatalf("unexpected decode: %q", text)
	}
}

func TestBasicVocabPersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	b, path := newBasic(t)
	first, err := b.Encode("persist me")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	reopened, err := OpenBasic(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	second, err := reopened.Encode("persist me")
	if err != nil {
		t.Fatalf("encode after reopen: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("ids changed across reopen: %v vs %v", first, second)
	}
}
