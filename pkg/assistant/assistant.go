// Package assistant is the conversation engine: it takes recognized text (or
// an audio clip), decides what the user wants, runs the matching action,
// formats a reply and maintains the rolling context window. Every call
// produces a Turn; failures in external adapters degrade the reply, never the
// turn.
package assistant

import (
	"log"
	"strings"
	"time"

	"lyra/pkg/history"
	"lyra/pkg/intent"
	"lyra/pkg/language"
	"lyra/pkg/models"
	"lyra/pkg/sentiment"
	"lyra/pkg/speech"
	"lyra/pkg/voice"
)

// SpeechToText recognizes a WAV file. The returned language may be empty, in
// which case the engine falls back to text-based detection.
type SpeechToText interface {
	TranscribeFile(path string) (text string, lang string, err error)
}

// Actions is the OS/web side-effect surface the engine dispatches to.
// Conversational actions return user-facing status strings; system actions
// return errors the engine normally swallows.
type Actions interface {
	OpenApp(text string) string
	CloseApp(text string) string
	Search(text string) string
	Weather(city string) string
	TimeNow() string
	Screenshot() (string, error)
	VolumeUp() error
	VolumeDown() error
	BrightnessUp() error
	BrightnessDown() error
	LockPC() error
	ShutdownPC() error
	RestartPC() error
}

// TurnStore is the persistent turn log.
type TurnStore interface {
	LogTurn(t models.Turn) error
}

// Dependencies carries the engine's collaborators. Transcriber, Speaker and
// Store are optional; the engine degrades without them.
type Dependencies struct {
	Config      *models.Config
	Transcriber SpeechToText
	Sentiment   sentiment.Classifier
	Speaker     speech.Synthesizer
	Actions     Actions
	History     *history.History
	Store       TurnStore
}

type Assistant struct {
	deps Dependencies
}

func New(deps Dependencies) *Assistant {
	if deps.Config == nil {
		cfg := models.Config{}
		deps.Config = &cfg
	}
	if deps.History == nil {
		deps.History = history.New(history.DefaultLimit)
	}
	if deps.Sentiment == nil {
		deps.Sentiment = sentiment.NewLexiconClassifier()
	}
	return &Assistant{deps: deps}
}

// History exposes the context window for read-only consumers (HTTP surface).
func (a *Assistant) History() *history.History {
	return a.deps.History
}

// RespondToAudio gates, transcribes and answers one audio clip.
// preferredLang fixes the reply language; "" or "auto" follows the input.
func (a *Assistant) RespondToAudio(audioPath, preferredLang string) models.Turn {
	if voice.SilentWAV(audioPath, a.deps.Config.SilenceRMS) {
		log.Printf("ASSISTANT: clip %s below silence threshold, skipping", audioPath)
		return silentTurn("en")
	}
	if a.deps.Transcriber == nil {
		log.Println("ASSISTANT: no speech-to-text configured, skipping audio input")
		return silentTurn("en")
	}

	text, lang, err := a.deps.Transcriber.TranscribeFile(audioPath)
	if err != nil {
		log.Printf("ASSISTANT: transcription failed: %v", err)
		return silentTurn("en")
	}
	if !voice.AcceptText(text) {
		return silentTurn(orEnglish(lang))
	}
	if lang == "" {
		lang = language.Detect(text)
	}
	return a.respond(text, lang, preferredLang)
}

// RespondToText answers one typed utterance.
func (a *Assistant) RespondToText(text, preferredLang string) models.Turn {
	lang := language.Detect(text)
	if !voice.AcceptText(text) {
		return silentTurn(lang)
	}
	return a.respond(text, lang, preferredLang)
}

// respond is the shared turn pipeline: classify, estimate tone, resolve the
// reply language, dispatch, record, speak.
func (a *Assistant) respond(text, detectedLang, preferredLang string) models.Turn {
	trimmed := strings.TrimSpace(text)
	turnIntent := intent.Detect(trimmed)

	tone, err := a.deps.Sentiment.Classify(trimmed)
	if err != nil {
		log.Printf("ASSISTANT: sentiment backend failed (%v), assuming neutral", err)
		tone = models.SentimentNeutral
	}

	replyLang := resolveReplyLanguage(preferredLang, detectedLang)
	reply := a.draftReply(turnIntent, tone, trimmed, replyLang)
	reply = a.finalizeReply(turnIntent, tone, trimmed, reply)

	turn := models.Turn{
		UserText:  trimmed,
		Reply:     reply,
		Intent:    turnIntent,
		Sentiment: tone,
		Language:  detectedLang,
		Timestamp: time.Now(),
	}

	a.deps.History.Append(turn)
	if a.deps.Store != nil {
		if err := a.deps.Store.LogTurn(turn); err != nil {
			log.Printf("ASSISTANT: turn log failed: %v", err)
		}
	}

	if reply != "" && a.deps.Config.TTSEnabled && a.deps.Speaker != nil {
		if err := a.deps.Speaker.Speak(reply, replyLang); err != nil {
			log.Printf("ASSISTANT: speech synthesis failed: %v", err)
		}
	}

	log.Printf("ASSISTANT: [%s/%s] %q -> %q", turnIntent, tone, trimmed, reply)
	return turn
}

// resolveReplyLanguage picks the language replies are rendered in: the fixed
// preference when set, else the detected input language, else English.
func resolveReplyLanguage(preferred, detected string) string {
	if preferred != "" && preferred != "auto" {
		return preferred
	}
	return orEnglish(detected)
}

func orEnglish(lang string) string {
	if lang == "" {
		return "en"
	}
	return lang
}

func silentTurn(lang string) models.Turn {
	return models.Turn{
		Intent:    models.IntentSilence,
		Sentiment: models.SentimentNeutral,
		Language:  lang,
		Timestamp: time.Now(),
	}
}
