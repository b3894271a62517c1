package sentiment

import (
	"fmt"
	"strings"

	"lyra/pkg/llm"
	"lyra/pkg/models"
)

const classifyPrompt = "Classify the emotional tone of the following text as exactly one word: POSITIVE, NEGATIVE or NEUTRAL. The text may be in any language. Answer with only that word.\n\nText:\n%s"

// LLMClassifier asks a language model for the label and maps its answer back
// to the enum. Any malformed answer is an error; the engine treats errors as
// NEUTRAL.
type LLMClassifier struct {
	adapter llm.LLMAdapter
}

func NewLLMClassifier(adapter llm.LLMAdapter) *LLMClassifier {
	return &LLMClassifier{adapter: adapter}
}

func (c *LLMClassifier) Classify(text string) (models.Sentiment, error) {
	response, err := c.adapter.Generate(fmt.Sprintf(classifyPrompt, text))
	if err != nil {
		return models.SentimentNeutral, fmt.Errorf("sentiment adapter failed: %w", err)
	}

	label := strings.ToUpper(strings.Trim(strings.TrimSpace(response), "`'\" ."))
	switch {
	case strings.Contains(label, "POSITIVE"):
		return models.SentimentPositive, nil
	case strings.Contains(label, "NEGATIVE"):
		return models.SentimentNegative, nil
	case strings.Contains(label, "NEUTRAL"):
		return models.SentimentNeutral, nil
	}
	return models.SentimentNeutral, fmt.Errorf("sentiment adapter returned unexpected label: %q", label)
}
