package tokenizer

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

// cl100k_base is the GPT-3.5/GPT-4 encoding.
// https://cookbook.openai.com/examples/how_to_count_tokens_with_tiktoken
const tiktokenEncoding = "cl100k_base"

var (
	tiktokenOnce sync.Once
	tiktokenEnc  *tiktoken.Tiktoken
	tiktokenErr  error
)

// Tiktoken wraps the tiktoken cl100k_base encoding. The BPE dictionary is
// loaded from the offline loader so no network access happens at runtime,
// and the ranks are shared process-wide.
type Tiktoken struct {
	enc *tiktoken.Tiktoken
}

func NewTiktoken() (*Tiktoken, error) {
	tiktokenOnce.Do(func() {
		tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
		tiktokenEnc, tiktokenErr = tiktoken.GetEncoding(tiktokenEncoding)
	})
	if tiktokenErr != nil {
		return nil, fmt.Errorf("load %s encoding: %w", tiktokenEncoding, tiktokenErr)
	}
	return &Tiktoken{enc: tiktokenEnc}, nil
}

func (t *Tiktoken) Encode(text string) ([]int, error) {
	return t.enc.Encode(text, nil, nil), nil
}

func (t *Tiktoken) Decode(ids []int) (string, error) {
	return t.enc.Decode(ids), nil
}
