package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyPrompt = errors.New("user message is required")
	ErrUpstream    = errors.New("upstream generation failed")
)

// LLMClient is the port to an external generative model. One prompt in, one
// reply out.
type LLMClient interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

// LLMService is a stateless proxy in front of an LLMClient. Upstream failures
// are surfaced as ErrUpstream; nothing is retried and nothing is streamed.
type LLMService struct {
	client LLMClient
}

func NewLLMService(client LLMClient) *LLMService {
	return &LLMService{client: client}
}

// Generate forwards the prompt verbatim and returns the reply text.
func (s *LLMService) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	reply, err := s.client.GenerateReply(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if reply == "" {
		return "", fmt.Errorf("%w: empty reply", ErrUpstream)
	}
	return reply, nil
}
