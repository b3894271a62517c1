// Package intent maps normalized utterance text to a symbolic intent by
// ordered multilingual keyword matching. Matching is substring-based over the
// whole lower-cased utterance, first rule wins, GENERAL is the fallback.
package intent

import (
	"strings"

	"lyra/pkg/models"
)

// Rule pairs an intent with its trigger phrases. Phrases mix scripts on
// purpose; no tokenization happens, so a phrase embedded inside an unrelated
// word still matches.
type Rule struct {
	Intent  models.Intent
	Phrases []string
}

// rules is evaluated top to bottom. The order is a deliberate tie-break:
// an utterance containing both a greeting word and an "open" word is GREETING.
var rules = []Rule{
	{models.IntentGreeting, []string{
		"hello", "hi", "hey", "hola", "namaste", "नमस्ते", "ಹಲೋ", "வணக்கம்", "నమస్తే", "bonjour", "ciao",
	}},
	{models.IntentOpenApp, []string{
		"open", "launch", "start", "खोलो", "खोलना", "iniciar", "abrir", "ouvrir", "avvia",
	}},
	{models.IntentCloseApp, []string{
		"close", "quit", "exit", "kill", "बंद", "salir", "cerrar", "fermer", "uscire",
	}},
	{models.IntentWebSearch, []string{
		"search", "look up", "google", "web search", "buscar", "recherche", "தேடுங்கள்",
	}},
	{models.IntentWeather, []string{
		"weather", "temperature", "clima", "मौसम", "climat", "ಹವಾಮಾನ", "కాలావస్థ",
	}},
	{models.IntentTime, []string{
		"time", "date", "day", "hora", "तारीख", "samay", "temps", "tempo",
	}},
	{models.IntentScreenshot, []string{
		"screenshot", "take a screenshot", "capture screen",
	}},
	{models.IntentVolumeUp, []string{
		"increase volume", "volume up", "raise volume",
	}},
	{models.IntentVolumeDown, []string{
		"decrease volume", "volume down", "lower volume",
	}},
	{models.IntentBrightnessUp, []string{
		"increase brightness", "brighter", "brightness up",
	}},
	{models.IntentBrightnessDown, []string{
		"decrease brightness", "dim", "brightness down",
	}},
	{models.IntentLockPC, []string{
		"lock pc", "lock computer",
	}},
	{models.IntentShutdownPC, []string{
		"shutdown", "turn off pc",
	}},
	{models.IntentRestartPC, []string{
		"restart", "reboot",
	}},
	{models.IntentSupport, negativeEmotionWords},
	{models.IntentContext, []string{
		"repeat", "what did i say", "previous", "दोहराओ", "repite",
	}},
}

var negativeEmotionWords = []string{
	"sad", "angry", "stressed", "lonely", "upset", "help",
	"दुखी", "गुस्सा", "तनाव", "एकाकी", "उदास", "मदद",
	"triste", "enojado", "estresado", "solo", "déprimé",
}

var positiveEmotionWords = []string{
	"happy", "excited", "great", "good", "awesome",
	"खुश", "उत्साहित", "अच्छा", "शानदार",
	"feliz", "contento", "super", "formidable",
}

// WeatherCityMarkers are the tokens a city name is expected to follow in a
// weather utterance.
var WeatherCityMarkers = []string{"weather", "in", "मौसम", "clima"}

// SearchTriggerPrefixes are stripped from the head of a web-search utterance
// before querying.
var SearchTriggerPrefixes = []string{"search", "look up", "google", "web search"}

// Detect classifies an utterance. It is total: every input yields exactly one
// intent.
func Detect(text string) models.Intent {
	t := strings.ToLower(text)
	for _, r := range rules {
		for _, p := range r.Phrases {
			if strings.Contains(t, p) {
				return r.Intent
			}
		}
	}
	return models.IntentGeneral
}

// NegativeWords exposes the SUPPORT trigger lexicon for the offline sentiment
// backend.
func NegativeWords() []string { return negativeEmotionWords }

// PositiveWords exposes the positive lexicon for the offline sentiment
// backend.
func PositiveWords() []string { return positiveEmotionWords }
