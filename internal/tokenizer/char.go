package tokenizer

import "fmt"

// Char treats every Unicode code point as its own token ID. It needs no
// vocabulary and round-trips any text exactly.
type Char struct{}

func (Char) Encode(text string) ([]int, error) {
	ids := make([]int, 0, len(text))
	for _, r := range text {
		ids = append(ids, int(r))
	}
	return ids, nil
}

func (Char) Decode(ids []int) (string, error) {
	runes := make([]rune, len(ids))
	for i, id := range ids {
		if id < 0 || id > 0x10FFFF {
			return "", fmt.Errorf("token id out of range: %d", id)
		}
		runes[i] = rune(id)
	}
	return string(runes), nil
}
