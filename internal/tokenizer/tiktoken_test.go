package tokenizer

import (
	"reflect"
	"testing"
)

func TestTiktokenKnownEncoding(t *testing.T) {
	t.Parallel()

	tok, err := NewTiktoken()
	if err != nil {
		t.Fatalf("load tiktoken: %v", err)
	}

	ids, err := tok.Encode("Hello, world! This is a test")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// cl100k_base reference IDs.
	want := []int{9906, 11, 1917, 0, 1115, 374, 264, 1296}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("got %v want %v", ids, want)
	}
}

func TestTiktokenRoundTrip(t *testing.T) {
	t.Parallel()

	tok, err := NewTiktoken()
	if err != nil {
		t.Fatalf("load tiktoken: %v", err)
	}

	for _, text := range []string{"Hello, world! This is a test", "newlines\nand\ttabs", "unicode: héllo 世界"} {
		ids, err := tok.Encode(text)
		if err != nil {
			t.Fatalf("encode %q: %v", text, err)
		}
		got, err := tok.Decode(ids)
		if err != nil {
			t.Fatalf("decode %q: %v", text, err)
		}
		if got != text {
			t.Errorf("round trip %q: got %q", text, got)
		}
	}
}
