package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/slovogames/wordwheel/internal/game"
)

func TestBrokerPublishSubscribe(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("chat1")
	other := b.Subscribe("chat2")

	b.Publish("chat1", RoomEvent{
		Type:       "letter_guessed",
		PlayerID:   "a",
		Letter:     "О",
		Points:     100,
		MaskedWord: "█О██",
	})

	select {
	case data := <-ch:
		var ev RoomEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			t.Fatalf("decoding event: %v", err)
		}
		if ev.Type != "letter_guessed" || ev.PlayerID != "a" || ev.Letter != "О" || ev.Points != 100 {
			t.Errorf("event = %+v", ev)
		}
	default:
		t.Fatal("expected an event for chat1")
	}

	if len(other) != 0 {
		t.Error("chat2 subscriber received a chat1 event")
	}
}

func TestBrokerUnsubscribe(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("chat1")
	b.Unsubscribe("chat1", ch)

	b.Publish("chat1", RoomEvent{Type: "letter_guessed"})
	if len(ch) != 0 {
		t.Error("unsubscribed channel received an event")
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.subs) != 0 {
		t.Errorf("subs = %d rooms, want empty", len(b.subs))
	}
}

func TestBrokerDropsSlowSubscriber(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("chat1")

	// Overflow the buffer; Publish must not block on a reader that never drains.
	for i := 0; i < cap(ch)+4; i++ {
		b.Publish("chat1", RoomEvent{Type: "letter_guessed"})
	}
	if len(ch) != cap(ch) {
		t.Errorf("buffered = %d, want %d", len(ch), cap(ch))
	}
}

func TestEventsStreamDeliversGuess(t *testing.T) {
	store := testStore(t)
	rooms := game.NewSessionStore(stubPoints{base: 100})
	broker := NewBroker()

	r := chi.NewRouter()
	r.Route("/api/rooms/{roomID}", func(r chi.Router) {
		r.Use(roomMiddleware(rooms))
		r.Get("/events", handleEvents(broker))
		r.Post("/guess/letter", handleGuessLetter(testLogger(), store, broker))
	})

	sess := rooms.Get("chat1")
	sess.StartHosting("host", "Host", "Test Room")
	if err := sess.SetWord("host", "МОРЕ"); err != nil {
		t.Fatalf("setting word: %v", err)
	}
	if err := sess.Join("a", "Anna"); err != nil {
		t.Fatalf("joining: %v", err)
	}

	waitFor := func(cond func() bool) {
		t.Helper()
		deadline := time.Now().Add(2 * time.Second)
		for !cond() {
			if time.Now().After(deadline) {
				t.Fatal("condition not met in time")
			}
			time.Sleep(5 * time.Millisecond)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms/chat1/events", nil).WithContext(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.ServeHTTP(rec, req)
	}()

	var sub chan []byte
	waitFor(func() bool {
		broker.mu.RLock()
		defer broker.mu.RUnlock()
		for ch := range broker.subs["chat1"] {
			sub = ch
			return true
		}
		return false
	})

	w := doJSON(t, r, http.MethodPost, "/api/rooms/chat1/guess/letter",
		LetterGuessRequest{PlayerID: "a", Letter: "о"})
	if w.Code != http.StatusOK {
		t.Fatalf("guess: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// The stream goroutine owns the recorder until it exits: wait for it
	// to drain the published event, then stop it before reading the body.
	waitFor(func() bool { return len(sub) == 0 })
	cancel()
	<-done

	body := rec.Body.String()
	if !strings.Contains(body, "event: room") {
		t.Errorf("body missing SSE event line: %q", body)
	}
	for _, want := range []string{`"type":"letter_guessed"`, `"playerId":"a"`, `"letter":"О"`, `"points":100`, `"maskedWord":"█О██"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %s: %q", want, body)
		}
	}

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("content type = %q, want text/event-stream", ct)
	}
}
