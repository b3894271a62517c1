package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"

	"lyra/pkg/audio"
)

// GCloudSynthesizer uses the Google Cloud Text-to-Speech API. Requires
// application default credentials; without them Speak returns an error and
// the engine falls back to the Translate voices.
type GCloudSynthesizer struct {
	folder string
}

func NewGCloudSynthesizer(folder string) *GCloudSynthesizer {
	return &GCloudSynthesizer{folder: folder}
}

func (s *GCloudSynthesizer) Speak(text, languageCode string) error {
	if text == "" {
		return nil
	}
	if languageCode == "" {
		languageCode = "en"
	}

	ctx := context.Background()
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("texttospeech.NewClient: %w", err)
	}
	defer client.Close()

	req := texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: languageCode,
			SsmlGender:   texttospeechpb.SsmlVoiceGender_FEMALE,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := client.SynthesizeSpeech(ctx, &req)
	if err != nil {
		return fmt.Errorf("SynthesizeSpeech: %w", err)
	}

	outPath := filepath.Join(s.folder, "lyra_tts.mp3")
	if err := os.WriteFile(outPath, resp.AudioContent, 0644); err != nil {
		return fmt.Errorf("writing synthesized audio: %w", err)
	}
	return audio.PlaySound(outPath)
}
