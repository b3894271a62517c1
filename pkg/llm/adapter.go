package llm

import (
	"fmt"

	"lyra/pkg/models"
)

// LLMAdapter is the narrow interface the rest of the application uses to talk
// to any language model backend.
type LLMAdapter interface {
	Generate(prompt string) (string, error)
}

// NewAdapter creates the adapter matching the configured backend type.
func NewAdapter(cfg models.LLMModel) (LLMAdapter, error) {
	switch cfg.Type {
	case "ollama":
		return NewOllamaAdapter(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM adapter type: %s", cfg.Type)
	}
}
