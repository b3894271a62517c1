package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lyra/pkg/assistant"
	"lyra/pkg/history"
	"lyra/pkg/models"
	"lyra/pkg/sentiment"
)

type noopActions struct{}

func (noopActions) OpenApp(string) string { return "Opening Notepad." }

func (noopActions) CloseApp(string) string { return "Closed Notepad." }

func (noopActions) Search(string) string { return "• nothing" }

func (noopActions) Weather(city string) string { return "Weather in " + city }

func (noopActions) TimeNow() string { return "It's test time." }

func (noopActions) Screenshot() (string, error) { return "shot.png", nil }

func (noopActions) VolumeUp() error { return nil }

func (noopActions) VolumeDown() error { return nil }

func (noopActions) BrightnessUp() error { return nil }

func (noopActions) BrightnessDown() error { return nil }

func (noopActions) LockPC() error { return nil }

func (noopActions) ShutdownPC() error { return nil }

func (noopActions) RestartPC() error { return nil }

func newTestMux() *http.ServeMux {
	cfg := &models.Config{Language: "auto"}
	engine := assistant.New(assistant.Dependencies{
		Config:    cfg,
		Sentiment: sentiment.NewLexiconClassifier(),
		Actions:   noopActions{},
		History:   history.New(history.DefaultLimit),
	})
	return NewMux(engine, cfg)
}

func TestCommandEndpoint(t *testing.T) {
	mux := newTestMux()

	req := httptest.NewRequest(http.MethodPost, "/command", strings.NewReader(`{"text":"what time is it"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var turn models.Turn
	if err := json.NewDecoder(rec.Body).Decode(&turn); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if turn.Intent != models.IntentTime {
		t.Errorf("intent = %s, want TIME", turn.Intent)
	}
	if turn.Reply == "" {
		t.Error("empty reply")
	}
}

func TestCommandEndpoint_BadMethod(t *testing.T) {
	mux := newTestMux()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/command", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestCommandEndpoint_BadBody(t *testing.T) {
	mux := newTestMux()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/command", strings.NewReader("{nope")))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHistoryEndpoint(t *testing.T) {
	cfg := &models.Config{Language: "auto"}
	engine := assistant.New(assistant.Dependencies{
		Config:    cfg,
		Sentiment: sentiment.NewLexiconClassifier(),
		Actions:   noopActions{},
		History:   history.New(history.DefaultLimit),
	})
	mux := NewMux(engine, cfg)

	engine.RespondToText("open notepad", "auto")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var turns []models.Turn
	if err := json.NewDecoder(rec.Body).Decode(&turns); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(turns) != 1 || turns[0].UserText != "open notepad" {
		t.Errorf("history = %+v", turns)
	}
}
