package speech

import (
	"fmt"
	"log"

	htgotts "github.com/hegedustibor/htgo-tts"

	"lyra/pkg/audio"
)

// GTranslateSynthesizer uses the Google Translate voice endpoint. It supports
// the same language codes the reply templates are keyed by, which keeps
// spoken replies in the user's language.
type GTranslateSynthesizer struct {
	folder string
}

func NewGTranslateSynthesizer(folder string) *GTranslateSynthesizer {
	return &GTranslateSynthesizer{folder: folder}
}

func (s *GTranslateSynthesizer) Speak(text, languageCode string) error {
	if text == "" {
		return nil
	}
	if languageCode == "" {
		languageCode = "en"
	}

	tts := htgotts.Speech{Folder: s.folder, Language: languageCode}
	file, err := tts.CreateSpeechFile(text, "lyra_tts")
	if err != nil {
		return fmt.Errorf("gtranslate synthesis: %w", err)
	}

	log.Printf("SPEECH: playing synthesized reply (%s)", languageCode)
	if err := audio.PlaySound(file); err != nil {
		return fmt.Errorf("gtranslate playback: %w", err)
	}
	return nil
}
