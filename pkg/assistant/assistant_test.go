package assistant

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"lyra/pkg/history"
	"lyra/pkg/models"
	"lyra/pkg/sentiment"
)

type fakeActions struct {
	calls []string
	err   error
}

func (f *fakeActions) OpenApp(text string) string {
	f.calls = append(f.calls, "open")
	return "Opening notepad."
}

func (f *fakeActions) CloseApp(text string) string {
	f.calls = append(f.calls, "close")
	return "Closing notepad."
}

func (f *fakeActions) Search(text string) string {
	f.calls = append(f.calls, "search")
	return "• Result: snippet"
}

func (f *fakeActions) Weather(city string) string {
	f.calls = append(f.calls, "weather:"+city)
	if city == "" {
		return "Please say the city, e.g., 'weather Bangalore'."
	}
	return fmt.Sprintf("Weather in %s: 29°C, partly cloudy.", city)
}
func (f *fakeActions) TimeNow() string {
	f.calls = append(f.calls, "time")
	return "It's test time."
}

func (f *fakeActions) Screenshot() (string, error) {
	f.calls = append(f.calls, "screenshot")
	return "/tmp/shot.png", f.err
}

func (f *fakeActions) VolumeUp() error { f.calls = append(f.calls, "volup"); return f.err }

func (f *fakeActions) VolumeDown() error { f.calls = append(f.calls, "voldown"); return f.err }

func (f *fakeActions) BrightnessUp() error { f.calls = append(f.calls, "briup"); return f.err }

func (f *fakeActions) BrightnessDown() error { f.calls = append(f.calls, "bridown"); return f.err }

func (f *fakeActions) LockPC() error { f.calls = append(f.calls, "lock"); return f.err }

func (f *fakeActions) ShutdownPC() error { f.calls = append(f.calls, "shutdown"); return f.err }

func (f *fakeActions) RestartPC() error { f.calls = append(f.calls, "restart"); return f.err }

type stubSentiment struct {
	tone models.Sentiment
	err  error
}

func (s stubSentiment) Classify(string) (models.Sentiment, error) { return s.tone, s.err }

type failingSpeaker struct {
	called bool
}

func (s *failingSpeaker) Speak(text, lang string) error {
	s.called = true
	return errors.New("no audio device")
}

func newTestAssistant(cfg *models.Config, tone sentiment.Classifier, acts Actions) *Assistant {
	if cfg == nil {
		cfg = &models.Config{}
	}
	if acts == nil {
		acts = &fakeActions{}
	}
	return New(Dependencies{
		Config:    cfg,
		Sentiment: tone,
		Actions:   acts,
		History:   history.New(history.DefaultLimit),
	})
}

func TestRespondToText_ShortInputIsSilence(t *testing.T) {
	a := newTestAssistant(nil, stubSentiment{tone: models.SentimentNeutral}, nil)

	for _, in := range []string{"", " ", "a", "  x  "} {
		turn := a.RespondToText(in, "auto")
		if turn.Intent != models.IntentSilence {
			t.Errorf("RespondToText(%q) intent = %s, want SILENCE", in, turn.Intent)
		}
		if turn.Reply != "" {
			t.Errorf("RespondToText(%q) reply = %q, want empty", in, turn.Reply)
		}
	}
	if a.History().Len() != 0 {
		t.Errorf("silent turns wrote history, len = %d", a.History().Len())
	}
}

func TestRespondToText_SentimentFailureIsNeutral(t *testing.T) {
	a := newTestAssistant(nil, stubSentiment{err: errors.New("model offline")}, nil)

	turn := a.RespondToText("note my plans for tomorrow", "auto")
	if turn.Sentiment != models.SentimentNeutral {
		t.Errorf("sentiment = %s, want NEUTRAL on backend failure", turn.Sentiment)
	}
	if turn.Reply != "You said: note my plans for tomorrow" {
		t.Errorf("reply = %q", turn.Reply)
	}
}

func TestRespondToText_ContextWithoutHistory(t *testing.T) {
	a := newTestAssistant(nil, stubSentiment{tone: models.SentimentNeutral}, nil)

	turn := a.RespondToText("repeat that", "auto")
	if turn.Intent != models.IntentContext {
		t.Fatalf("intent = %s, want CONTEXT", turn.Intent)
	}
	if turn.Reply != "I don't have prior context yet." {
		t.Errorf("reply = %q", turn.Reply)
	}
}

func TestRespondToText_ContextRecallsLastTurn(t *testing.T) {
	a := newTestAssistant(nil, stubSentiment{tone: models.SentimentNeutral}, nil)

	a.RespondToText("open notepad", "auto")
	turn := a.RespondToText("repeat that", "auto")
	if !strings.Contains(turn.Reply, "open notepad") {
		t.Errorf("context reply %q does not recall previous input", turn.Reply)
	}
}

func TestRespondToText_GreetingPositiveSpanish(t *testing.T) {
	a := newTestAssistant(nil, stubSentiment{tone: models.SentimentPositive}, nil)

	turn := a.RespondToText("hello there", "es")
	want := "Love the energy! Great to hear from you! ¡Hola! ¿Cómo puedo ayudarte?"
	if turn.Reply != want {
		t.Errorf("reply = %q, want %q", turn.Reply, want)
	}
}

func TestRespondToText_NeutralCollapsesToEcho(t *testing.T) {
	acts := &fakeActions{}
	a := newTestAssistant(nil, stubSentiment{tone: models.SentimentNeutral}, acts)

	turn := a.RespondToText("what time is it", "auto")
	if turn.Intent != models.IntentTime {
		t.Fatalf("intent = %s, want TIME", turn.Intent)
	}
	if turn.Reply != "You said: what time is it" {
		t.Errorf("reply = %q, want echo", turn.Reply)
	}
	if len(acts.calls) == 0 || acts.calls[0] != "time" {
		t.Error("time adapter was not consulted for the draft")
	}
}

func TestRespondToText_NegativePrefixKeepsDraft(t *testing.T) {
	acts := &fakeActions{}
	a := newTestAssistant(nil, stubSentiment{tone: models.SentimentNegative}, acts)

	turn := a.RespondToText("what time is it", "auto")
	if turn.Reply != "I'm here with you. It's test time." {
		t.Errorf("reply = %q", turn.Reply)
	}
}

func TestRespondToText_SupportUsesLexicon(t *testing.T) {
	a := newTestAssistant(nil, sentiment.NewLexiconClassifier(), nil)

	turn := a.RespondToText("i am stressed", "auto")
	if turn.Intent != models.IntentSupport {
		t.Fatalf("intent = %s, want SUPPORT", turn.Intent)
	}
	if turn.Sentiment != models.SentimentNegative {
		t.Fatalf("sentiment = %s, want NEGATIVE", turn.Sentiment)
	}
	if !strings.Contains(turn.Reply, "Take a slow breath.") {
		t.Errorf("reply = %q, want the negative support template", turn.Reply)
	}
}

func TestRespondToText_SystemActionOverridesSentiment(t *testing.T) {
	acts := &fakeActions{}
	a := newTestAssistant(nil, stubSentiment{tone: models.SentimentPositive}, acts)

	turn := a.RespondToText("increase volume now", "auto")
	if turn.Intent != models.IntentVolumeUp {
		t.Fatalf("intent = %s, want VOLUME_UP", turn.Intent)
	}
	if turn.Reply != "Volume increased!" {
		t.Errorf("reply = %q, want the bare confirmation", turn.Reply)
	}
	if acts.calls[len(acts.calls)-1] != "volup" {
		t.Error("volume adapter was not invoked")
	}
}

func TestRespondToText_SystemActionReportsSuccessOnFailure(t *testing.T) {
	acts := &fakeActions{err: errors.New("pactl missing")}
	a := newTestAssistant(nil, stubSentiment{tone: models.SentimentNeutral}, acts)

	turn := a.RespondToText("increase volume now", "auto")
	if turn.Reply != "Volume increased!" {
		t.Errorf("reply = %q, adapter failures should stay hidden by default", turn.Reply)
	}
}

func TestRespondToText_SurfaceActionErrors(t *testing.T) {
	acts := &fakeActions{err: errors.New("pactl missing")}
	cfg := &models.Config{SurfaceActionErrors: true}
	a := newTestAssistant(cfg, stubSentiment{tone: models.SentimentNeutral}, acts)

	turn := a.RespondToText("increase volume now", "auto")
	if !strings.Contains(turn.Reply, "didn't work") {
		t.Errorf("reply = %q, want the surfaced failure", turn.Reply)
	}
}

func TestRespondToText_HistoryEviction(t *testing.T) {
	a := newTestAssistant(nil, stubSentiment{tone: models.SentimentNeutral}, nil)

	for i := 1; i <= 6; i++ {
		a.RespondToText(fmt.Sprintf("note number %d", i), "auto")
	}
	if a.History().Len() != 5 {
		t.Fatalf("history len = %d, want 5", a.History().Len())
	}
	turns := a.History().Snapshot()
	if turns[0].UserText != "note number 2" {
		t.Errorf("oldest surviving turn = %q, want eviction of the first", turns[0].UserText)
	}
	if turns[4].UserText != "note number 6" {
		t.Errorf("newest turn = %q", turns[4].UserText)
	}
}

func TestRespondToText_ContextRoundTrip(t *testing.T) {
	a := newTestAssistant(nil, stubSentiment{tone: models.SentimentNeutral}, nil)

	a.RespondToText("open notepad", "auto")
	first := a.RespondToText("repeat that", "auto")
	second := a.RespondToText(first.Reply, "auto")
	if second.Intent == "" {
		t.Error("round-tripped reply produced no intent")
	}
	if second.UserText != first.Reply {
		t.Errorf("round-trip user text = %q", second.UserText)
	}
}

func TestRespondToText_WeatherCityExtraction(t *testing.T) {
	acts := &fakeActions{}
	a := newTestAssistant(nil, stubSentiment{tone: models.SentimentNegative}, acts)

	turn := a.RespondToText("weather in Bangalore, please", "auto")
	if turn.Intent != models.IntentWeather {
		t.Fatalf("intent = %s, want WEATHER", turn.Intent)
	}
	if !strings.Contains(turn.Reply, "Weather in Bangalore") {
		t.Errorf("reply = %q, want weather for the extracted city", turn.Reply)
	}

	turn = a.RespondToText("weather", "auto")
	if !strings.Contains(turn.Reply, "Please say the city") {
		t.Errorf("reply = %q, want the city prompt", turn.Reply)
	}
}

func TestRespondToText_SpeechFailureDoesNotFailTurn(t *testing.T) {
	speaker := &failingSpeaker{}
	cfg := &models.Config{TTSEnabled: true}
	a := New(Dependencies{
		Config:    cfg,
		Sentiment: stubSentiment{tone: models.SentimentNeutral},
		Speaker:   speaker,
		Actions:   &fakeActions{},
		History:   history.New(history.DefaultLimit),
	})

	turn := a.RespondToText("note my plans for tomorrow", "auto")
	if !speaker.called {
		t.Error("speaker was never invoked")
	}
	if turn.Reply == "" {
		t.Error("turn reply lost after synthesis failure")
	}
}

func TestResolveReplyLanguage(t *testing.T) {
	cases := []struct {
		preferred, detected, want string
	}{
		{"es", "en", "es"},
		{"auto", "hi", "hi"},
		{"", "fr", "fr"},
		{"auto", "", "en"},
		{"", "", "en"},
	}
	for _, c := range cases {
		if got := resolveReplyLanguage(c.preferred, c.detected); got != c.want {
			t.Errorf("resolveReplyLanguage(%q, %q) = %q, want %q", c.preferred, c.detected, got, c.want)
		}
	}
}
