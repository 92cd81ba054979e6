package api

type TokenizeRequest struct {
	Tokenizer string `json:"tokenizer"`
	Text      string `json:"text"`
}

type TokenizeResponse struct {
	ID        string `json:"id"`
	Tokenizer string `json:"tokenizer"`
	TokenIDs  []int  `json:"token_ids"`
	Count     int    `json:"count"`
}

type DetokenizeRequest struct {
	Tokenizer string `json:"tokenizer"`
	TokenIDs  []int  `json:"token_ids"`
}

type DetokenizeResponse struct {
	ID        string `json:"id"`
	Tokenizer string `json:"tokenizer"`
	Text      string `json:"text"`
}

type TokenizersResponse struct {
	Tokenizers []string `json:"tokenizers"`
}

type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	Param   string `json:"param,omitempty"`
}
