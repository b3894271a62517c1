package voice

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
)

// Transcriber wraps a loaded whisper model. The model is loaded once at
// startup and shared across turns; each call gets its own whisper context.
type Transcriber struct {
	model whisper.Model
}

func NewTranscriber(modelPath string) (*Transcriber, error) {
	if modelPath == "" {
		return nil, fmt.Errorf("empty whisper model path")
	}
	model, err := whisper.New(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load whisper model: %w", err)
	}
	return &Transcriber{model: model}, nil
}

// TranscribeFile recognizes speech in a WAV file and returns the text along
// with the detected language code. The language may be empty when detection
// is inconclusive; the caller falls back to text-based detection.
func (t *Transcriber) TranscribeFile(path string) (string, string, error) {
	samples, err := ReadPCM16k(path)
	if err != nil {
		return "", "", fmt.Errorf("decode audio: %w", err)
	}
	return t.TranscribePCM(samples)
}

// TranscribePCM recognizes speech in mono 16 kHz float32 samples.
func (t *Transcriber) TranscribePCM(samples []float32) (string, string, error) {
	if t.model == nil {
		return "", "", fmt.Errorf("nil whisper model")
	}
	if len(samples) == 0 {
		return "", "", fmt.Errorf("no audio samples provided")
	}

	ctxt, err := t.model.NewContext()
	if err != nil {
		return "", "", fmt.Errorf("new whisper context: %w", err)
	}
	if err := ctxt.SetLanguage("auto"); err != nil {
		return "", "", fmt.Errorf("set language: %w", err)
	}
	ctxt.SetThreads(uint(runtime.NumCPU()))

	if err := ctxt.Process(samples, nil, nil, nil); err != nil {
		return "", "", fmt.Errorf("whisper process: %w", err)
	}

	var parts []string
	for {
		seg, err := ctxt.NextSegment()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", "", fmt.Errorf("next segment: %w", err)
		}
		parts = append(parts, strings.TrimSpace(seg.Text))
	}

	lang := ctxt.DetectedLanguage()
	if lang == "auto" {
		lang = ""
	}
	return strings.TrimSpace(strings.Join(parts, " ")), lang, nil
}

func (t *Transcriber) Close() error {
	if t.model == nil {
		return nil
	}
	return t.model.Close()
}
