package tokenizer

import (
	esentencepiece "github.com/eliben/go-sentencepiece"
	"github.com/pkg/errors"
)

// SentencePiece wraps a compiled sentencepiece model (BPE or unigram-LM,
// the model file decides). It backs the SP and ULM kinds.
type SentencePiece struct {
	proc *esentencepiece.Processor
}

func OpenSentencePiece(modelPath string) (*SentencePiece, error) {
	proc, err := esentencepiece.NewProcessorFromPath(modelPath)
	if err != nil {
		return nil, errors.Wrapf(err, "load sentencepiece model %s", modelPath)
	}
	return &SentencePiece{proc: proc}, nil
}

func (t *SentencePiece) Encode(text string) ([]int, error) {
	tokens := t.proc.Encode(text)
	ids := make([]int, len(tokens))
	for i, tok := range tokens {
		ids[i] = tok.ID
	}
	return ids, nil
}

func (t *SentencePiece) Decode(ids []int) (string, error) {
	return t.proc.Decode(ids), nil
}
