// Package sentiment estimates the emotional tone of an utterance as
// POSITIVE, NEGATIVE or NEUTRAL. Backends may fail; callers are expected to
// fall back to NEUTRAL (the engine does).
package sentiment

import (
	"strings"

	"lyra/pkg/intent"
	"lyra/pkg/models"
)

type Classifier interface {
	Classify(text string) (models.Sentiment, error)
}

// LexiconClassifier is the offline default: multilingual word-list counting.
type LexiconClassifier struct {
	positive []string
	negative []string
}

func NewLexiconClassifier() *LexiconClassifier {
	return &LexiconClassifier{
		positive: intent.PositiveWords(),
		negative: intent.NegativeWords(),
	}
}

func (c *LexiconClassifier) Classify(text string) (models.Sentiment, error) {
	lowerText := strings.ToLower(text)

	posCount := 0
	negCount := 0
	for _, word := range c.positive {
		posCount += strings.Count(lowerText, word)
	}
	for _, word := range c.negative {
		negCount += strings.Count(lowerText, word)
	}

	switch {
	case posCount > negCount:
		return models.SentimentPositive, nil
	case negCount > posCount:
		return models.SentimentNegative, nil
	default:
		return models.SentimentNeutral, nil
	}
}
