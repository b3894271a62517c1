// Package speech turns reply text into audible output. Synthesizers are
// best-effort: a failure is logged by callers and never fails the turn.
package speech

import (
	"fmt"

	"lyra/pkg/models"
)

type Synthesizer interface {
	// Speak synthesizes and plays text in the given language code.
	Speak(text, languageCode string) error
}

// NewSynthesizer builds the configured engine. The Google Translate engine is
// the default; Google Cloud is used when configured, with the Translate
// engine kept as fallback.
func NewSynthesizer(cfg *models.Config, audioDir string) (Synthesizer, error) {
	switch cfg.TTSEngine {
	case "", "gtranslate":
		return NewGTranslateSynthesizer(audioDir), nil
	case "gcloud":
		return &fallbackSynthesizer{
			primary:  NewGCloudSynthesizer(audioDir),
			fallback: NewGTranslateSynthesizer(audioDir),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported TTS engine: %s", cfg.TTSEngine)
	}
}

type fallbackSynthesizer struct {
	primary  Synthesizer
	fallback Synthesizer
}

func (s *fallbackSynthesizer) Speak(text, languageCode string) error {
	if err := s.primary.Speak(text, languageCode); err != nil {
		return s.fallback.Speak(text, languageCode)
	}
	return nil
}
