package services

import (
	"context"
	"fmt"
)

// MockLLM answers locally without calling any upstream. Used in tests and
// when USE_MOCK_LLM is set.
type MockLLM struct {
	// Err, when set, is returned instead of a reply.
	Err error
}

func NewMockLLM() *MockLLM {
	return &MockLLM{}
}

func (m *MockLLM) GenerateReply(ctx context.Context, prompt string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return fmt.Sprintf("You said: %q", prompt), nil
}
