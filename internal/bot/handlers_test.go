package bot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dieortin/escultoide-bot/internal/event"
)

type senderSpy struct {
	plainTexts []string
	htmlTexts  []string
	chatIDs    []int64
	err        error
}

func (s *senderSpy) SendMessage(ctx context.Context, chatID int64, text string) error {
	s.chatIDs = append(s.chatIDs, chatID)
	s.plainTexts = append(s.plainTexts, text)
	return s.err
}

func (s *senderSpy) SendHTML(ctx context.Context, chatID int64, text string) error {
	s.chatIDs = append(s.chatIDs, chatID)
	s.htmlTexts = append(s.htmlTexts, text)
	return s.err
}

type sourceStub struct {
	event *event.Event
	err   error
}

func (s *sourceStub) NextEvent(ctx context.Context) (*event.Event, error) {
	return s.event, s.err
}

func testEvent(t *testing.T) *event.Event {
	t.Helper()
	date, err := event.NewDateRange(time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC), time.Time{})
	if err != nil {
		t.Fatalf("NewDateRange() unexpected error: %v", err)
	}
	return &event.Event{
		Title:        "Acampada",
		Date:         date,
		Location:     "Cercedilla",
		Scouters:     []string{"Bob"},
		Participants: 3,
		URL:          "https://www.notion.so/abc",
	}
}

func TestEchoHandler(t *testing.T) {
	sender := &senderSpy{}
	handler := EchoHandler(sender)

	err := handler(context.Background(), &Update{
		ChatID:   42,
		Username: "alice",
		Text:     "/echo hola",
		Command:  "echo",
	})
	if err != nil {
		t.Fatalf("EchoHandler() unexpected error: %v", err)
	}

	if len(sender.plainTexts) != 1 {
		t.Fatalf("sent %d plain messages, want 1", len(sender.plainTexts))
	}
	got := sender.plainTexts[0]
	for _, want := range []string{"alice", "42", "/echo hola"} {
		if !strings.Contains(got, want) {
			t.Errorf("echo reply missing %q in:\n%s", want, got)
		}
	}
	if sender.chatIDs[0] != 42 {
		t.Errorf("reply chat = %d, want 42", sender.chatIDs[0])
	}
}

func TestNextEventHandler(t *testing.T) {
	sender := &senderSpy{}
	handler := NextEventHandler(sender, &sourceStub{event: testEvent(t)})

	err := handler(context.Background(), &Update{ChatID: 7, Username: "alice", Command: "proximo"})
	if err != nil {
		t.Fatalf("NextEventHandler() unexpected error: %v", err)
	}

	if len(sender.htmlTexts) != 1 {
		t.Fatalf("sent %d HTML messages, want 1", len(sender.htmlTexts))
	}
	got := sender.htmlTexts[0]
	for _, want := range []string{"Acampada", "Cercedilla", "Ver en Notion"} {
		if !strings.Contains(got, want) {
			t.Errorf("reply missing %q in:\n%s", want, got)
		}
	}
	if sender.chatIDs[0] != 7 {
		t.Errorf("reply chat = %d, want 7", sender.chatIDs[0])
	}
}

func TestNextEventHandlerSourceFailure(t *testing.T) {
	sourceErr := errors.New("calendar is down")
	sender := &senderSpy{}
	handler := NextEventHandler(sender, &sourceStub{err: sourceErr})

	err := handler(context.Background(), &Update{ChatID: 7, Command: "proximo"})
	if !errors.Is(err, sourceErr) {
		t.Fatalf("NextEventHandler() error = %v, want wrapped source error", err)
	}
	if len(sender.htmlTexts) != 0 {
		t.Error("no reply must be sent when the source fails")
	}
}

func TestRegisterCommands(t *testing.T) {
	sender := &senderSpy{}
	d := NewDispatcher(NewAllowlist([]string{"alice"}), zap.NewNop())
	RegisterCommands(d, sender, &sourceStub{event: testEvent(t)})

	// echo is public
	if got := d.Dispatch(context.Background(), commandUpdate("mallory", "/echo hey")); got != OutcomeSuccess {
		t.Errorf("echo from unlisted user = %v, want success", got)
	}
	// proximo is restricted
	if got := d.Dispatch(context.Background(), commandUpdate("mallory", "/proximo")); got != OutcomeUnauthorized {
		t.Errorf("proximo from unlisted user = %v, want unauthorized", got)
	}
	if got := d.Dispatch(context.Background(), commandUpdate("alice", "/proximo")); got != OutcomeSuccess {
		t.Errorf("proximo from allow-listed user = %v, want success", got)
	}
}
