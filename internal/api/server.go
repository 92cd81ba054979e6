// Package api exposes tokenize/detokenize over HTTP.
package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/lexfeed/lexfeed/internal/tokenizer"
)

// Server serves the tokenizer API. Opened backends are cached per kind so a
// vocabulary is only loaded once per process.
type Server struct {
	cfg tokenizer.Config

	mu    sync.Mutex
	cache map[tokenizer.Kind]tokenizer.Tokenizer
}

func NewServer(cfg tokenizer.Config) *Server {
	return &Server{
		cfg:   cfg,
		cache: make(map[tokenizer.Kind]tokenizer.Tokenizer),
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/tokenize", s.handleTokenize)
	e.POST("/v1/detokenize", s.handleDetokenize)
	e.GET("/v1/tokenizers", s.handleTokenizers)
}

func (s *Server) open(kind tokenizer.Kind) (tokenizer.Tokenizer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok, ok := s.cache[kind]; ok {
		return tok, nil
	}
	tok, err := tokenizer.Open(s.cfg, kind)
	if err != nil {
		return nil, err
	}
	s.cache[kind] = tok
	return tok, nil
}

func (s *Server) handleTokenize(c *echo.Context) error {
	req, err := decodeJSON[TokenizeRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	if req.Tokenizer == "" {
		return writeBadRequest(c, "tokenizer is required")
	}

	tok, err := s.open(tokenizer.Kind(req.Tokenizer))
	if err != nil {
		if errors.Is(err, tokenizer.ErrUnknownTokenizer) {
			return writeBadRequest(c, err.Error())
		}
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error(), "", "")
	}

	ids, err := tok.Encode(req.Text)
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error(), "", "")
	}
	if ids == nil {
		ids = []int{}
	}
	return c.JSON(http.StatusOK, TokenizeResponse{
		ID:        newRequestID(),
		Tokenizer: req.Tokenizer,
		TokenIDs:  ids,
		Count:     len(ids),
	})
}

func (s *Server) handleDetokenize(c *echo.Context) error {
	req, err := decodeJSON[DetokenizeRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	if req.Tokenizer == "" {
		return writeBadRequest(c, "tokenizer is required")
	}

	tok, err := s.open(tokenizer.Kind(req.Tokenizer))
	if err != nil {
		if errors.Is(err, tokenizer.ErrUnknownTokenizer) {
			return writeBadRequest(c, err.Error())
		}
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error(), "", "")
	}

	text, err := tok.Decode(req.TokenIDs)
	if err != nil {
		// Malformed IDs are a caller problem, not a server one.
		return writeBadRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, DetokenizeResponse{
		ID:        newRequestID(),
		Tokenizer: req.Tokenizer,
		Text:      text,
	})
}

func (s *Server) handleTokenizers(c *echo.Context) error {
	kinds := tokenizer.Kinds()
	labels := make([]string, len(kinds))
	for i, k := range kinds {
		labels[i] = string(k)
	}
	return c.JSON(http.StatusOK, TokenizersResponse{Tokenizers: labels})
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg, "", "")
}

func writeError(c *echo.Context, status int, errType, msg, param, code string) error {
	return c.JSON(status, map[string]any{
		"error": ResponseError{
			Message: msg,
			Type:    errType,
			Code:    code,
			Param:   param,
		},
	})
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var v T
	dec := json.NewDecoder(r)
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("invalid json body: %w", err)
	}
	return v, nil
}

func newRequestID() string {
	return "tok_" + uuid.NewString()
}
