package assistant

import (
	"fmt"
	"log"
	"strings"

	"lyra/pkg/intent"
	"lyra/pkg/models"
)

var greetingTemplates = map[string]string{
	"en": "Hello! How can I help you today?",
	"hi": "नमस्ते! मैं आपकी कैसे मदद कर सकती हूँ?",
	"kn": "ನಮಸ್ಕಾರ! ನಾನು ಹೇಗೆ ಸಹಾಯ ಮಾಡಬಹುದು?",
	"ta": "வணக்கம்! நான் எப்படி உதவலாம்?",
	"te": "నమస్తే! నేను ఎలా సహాయం చేయగలను?",
	"bn": "নমস্কার! আমি কীভাবে সাহায্য করতে পারি?",
	"mr": "नमस्कार! मी कशी मदत करू शकते?",
	"es": "¡Hola! ¿Cómo puedo ayudarte?",
	"fr": "Bonjour ! Comment puis-je vous aider?",
	"it": "Ciao! Come posso aiutarti?",
}

// StartupGreeting is the hello message emitted once when the assistant comes
// up, in the configured reply language.
func StartupGreeting(lang string) string {
	if msg, ok := greetingTemplates[lang]; ok {
		return msg
	}
	return greetingTemplates["en"]
}

// draftReply is the first resolution stage: the conversational reply for the
// intent. System-action intents keep an echo draft here; the override stage
// replaces it.
func (a *Assistant) draftReply(it models.Intent, tone models.Sentiment, text, replyLang string) string {
	switch it {
	case models.IntentGreeting:
		return greetingReply(tone, replyLang)
	case models.IntentOpenApp:
		return a.deps.Actions.OpenApp(text)
	case models.IntentCloseApp:
		return a.deps.Actions.CloseApp(text)
	case models.IntentWebSearch:
		return a.deps.Actions.Search(text)
	case models.IntentWeather:
		return a.deps.Actions.Weather(extractCity(text))
	case models.IntentTime:
		return a.deps.Actions.TimeNow()
	case models.IntentSupport:
		return supportReply(tone)
	case models.IntentContext:
		return a.contextReply()
	default:
		return "You said: " + text
	}
}

// finalizeReply is the second stage: system-action intents overwrite the
// draft with a fixed confirmation, otherwise the tone glues a prefix on, and
// a neutral tone collapses most drafts back to the echo. Greeting, support
// and context replies survive the neutral collapse; everything else is
// discarded.
func (a *Assistant) finalizeReply(it models.Intent, tone models.Sentiment, text, draft string) string {
	if it.IsSystemAction() {
		return a.systemActionReply(it)
	}
	switch tone {
	case models.SentimentNegative:
		return "I'm here with you. " + draft
	case models.SentimentPositive:
		return "Love the energy! " + draft
	}
	switch it {
	case models.IntentGreeting, models.IntentSupport, models.IntentContext:
		return draft
	}
	return "You said: " + text
}

// systemActionReply runs the OS side effect and returns its confirmation.
// The confirmation reports success regardless of the adapter outcome unless
// surface_action_errors is enabled.
func (a *Assistant) systemActionReply(it models.Intent) string {
	var confirmation string
	var err error

	switch it {
	case models.IntentScreenshot:
		var path string
		path, err = a.deps.Actions.Screenshot()
		confirmation = fmt.Sprintf("Screenshot saved as %s", path)
	case models.IntentVolumeUp:
		err = a.deps.Actions.VolumeUp()
		confirmation = "Volume increased!"
	case models.IntentVolumeDown:
		err = a.deps.Actions.VolumeDown()
		confirmation = "Volume decreased!"
	case models.IntentBrightnessUp:
		err = a.deps.Actions.BrightnessUp()
		confirmation = "Brightness increased!"
	case models.IntentBrightnessDown:
		err = a.deps.Actions.BrightnessDown()
		confirmation = "Brightness decreased!"
	case models.IntentLockPC:
		err = a.deps.Actions.LockPC()
		confirmation = "PC locked!"
	case models.IntentShutdownPC:
		err = a.deps.Actions.ShutdownPC()
		confirmation = "Shutting down..."
	case models.IntentRestartPC:
		err = a.deps.Actions.RestartPC()
		confirmation = "Restarting..."
	}

	if err != nil {
		log.Printf("ASSISTANT: %s action failed: %v", it, err)
		if a.deps.Config.SurfaceActionErrors {
			return fmt.Sprintf("I tried, but that didn't work: %v", err)
		}
	}
	return confirmation
}

func greetingReply(tone models.Sentiment, lang string) string {
	msg := StartupGreeting(lang)
	if tone == models.SentimentPositive {
		msg = "Great to hear from you! " + msg
	}
	return msg
}

func supportReply(tone models.Sentiment) string {
	switch tone {
	case models.SentimentNegative:
		return "Take a slow breath. Would you like me to play calming music or note what's bothering you?"
	case models.SentimentNeutral:
		return "I'm here. Tell me what's on your mind, and we'll take it one step at a time."
	default:
		return "You sound upbeat! Want to channel that into a quick plan for your day?"
	}
}

func (a *Assistant) contextReply() string {
	last, ok := a.deps.History.Last()
	if !ok {
		return "I don't have prior context yet."
	}
	if len([]rune(last.UserText)) <= 2 {
		return ""
	}
	return "You previously said: " + last.UserText
}

// extractCity pulls a city name out of a weather utterance: the word after
// the last weather-trigger token, with trailing punctuation trimmed. Returns
// "" when no candidate follows a trigger.
func extractCity(text string) string {
	parts := strings.Fields(strings.TrimSpace(text))
	idx := -1
	for i, w := range parts {
		lw := strings.ToLower(w)
		for _, marker := range intent.WeatherCityMarkers {
			if lw == marker {
				idx = i
				break
			}
		}
	}
	if idx >= 0 && idx+1 < len(parts) {
		return strings.Trim(parts[idx+1], ",. ")
	}
	return ""
}
