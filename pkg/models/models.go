package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Intent is the symbolic category assigned to a user utterance.
type Intent string

const (
	IntentGreeting       Intent = "GREETING"
	IntentOpenApp        Intent = "OPEN_APP"
	IntentCloseApp       Intent = "CLOSE_APP"
	IntentWebSearch      Intent = "WEB_SEARCH"
	IntentWeather        Intent = "WEATHER"
	IntentTime           Intent = "TIME"
	IntentScreenshot     Intent = "SCREENSHOT"
	IntentVolumeUp       Intent = "VOLUME_UP"
	IntentVolumeDown     Intent = "VOLUME_DOWN"
	IntentBrightnessUp   Intent = "BRIGHTNESS_UP"
	IntentBrightnessDown Intent = "BRIGHTNESS_DOWN"
	IntentLockPC         Intent = "LOCK_PC"
	IntentShutdownPC     Intent = "SHUTDOWN_PC"
	IntentRestartPC      Intent = "RESTART_PC"
	IntentSupport        Intent = "SUPPORT"
	IntentContext        Intent = "CONTEXT"
	IntentGeneral        Intent = "GENERAL"
	IntentSilence        Intent = "SILENCE"
)

// IsSystemAction reports whether the intent maps to a fire-and-forget OS
// side effect whose reply is a fixed confirmation string.
func (i Intent) IsSystemAction() bool {
	switch i {
	case IntentScreenshot, IntentVolumeUp, IntentVolumeDown,
		IntentBrightnessUp, IntentBrightnessDown,
		IntentLockPC, IntentShutdownPC, IntentRestartPC:
		return true
	}
	return false
}

// Sentiment is the three-way emotional tone estimate.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNegative Sentiment = "NEGATIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
)

// Source is the modality an utterance arrived through.
type Source string

const (
	SourceAudio Source = "audio"
	SourceText  Source = "text"
)

// Utterance is one recognized input, immutable for the duration of a turn.
type Utterance struct {
	Text     string
	Language string
	Source   Source
}

// Turn is one complete request/response cycle.
type Turn struct {
	UserText  string    `json:"user_text"`
	Reply     string    `json:"reply"`
	Intent    Intent    `json:"intent"`
	Sentiment Sentiment `json:"sentiment"`
	Language  string    `json:"lang"`
	Timestamp time.Time `json:"ts"`
}

type Duration struct {
	time.Duration
}

type LLMModel struct {
	Model   string            `json:"model"`
	Type    string            `json:"type"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
}

type Config struct {
	ProfileName string `json:"name"`
	DEBUG       bool   `json:"debug"`
	Username    string `json:"username"`

	// Reply language: a fixed code like "es", or "auto" to follow the
	// detected input language.
	Language string `json:"language"`

	// Speech input
	ListenerEnabled   bool     `json:"listener_enabled"`
	Hotword           string   `json:"hotword"`
	WhisperModelPath  string   `json:"whisper_model_path"`
	VADThreshold      float64  `json:"vad_threshold"`
	VADSilenceTimeout Duration `json:"vad_silence_timeout"`
	SilenceRMS        int      `json:"silence_rms"`

	// Speech output
	TTSEnabled bool   `json:"tts_enabled"`
	TTSEngine  string `json:"tts_engine"` // "gtranslate" or "gcloud"

	// Sentiment backend: "lexicon" (offline) or "ollama"
	SentimentEngine string   `json:"sentiment_engine"`
	LLMModel        LLMModel `json:"llm_model"`

	// When true, system-action replies append adapter failures instead of
	// always reporting success.
	SurfaceActionErrors bool `json:"surface_action_errors"`

	DatabaseFile string `json:"database_file"`
	LogFile      string `json:"log_file"`
	ServerPort   string `json:"server_port"`
}

func (d *Duration) UnmarshalJSON(b []byte) (err error) {
	if b[0] == '"' {
		sd := string(b[1 : len(b)-1])
		d.Duration, err = time.ParseDuration(sd)
		return
	}
	var id int64
	id, err = json.Number(string(b)).Int64()
	d.Duration = time.Duration(id)
	return
}

func (d Duration) MarshalJSON() (b []byte, err error) {
	return []byte(fmt.Sprintf(`"%s"`, d.String())), nil
}
