package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"kounhany-ai-go/internal/model"
)

func turn(role, content string) model.ChatMessage {
	return model.ChatMessage{Role: role, Content: content, Timestamp: time.Now()}
}

func TestMemoryStoreAppendAndRecent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10)

	if err := store.Append(ctx, "u1",
		turn("user", "bonjour"),
		turn("assistant", "Bonjour ! Comment puis-je vous aider ?"),
	); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	all, err := store.Recent(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d turns, want 2", len(all))
	}
	if all[0].Role != "user" || all[1].Role != "assistant" {
		t.Errorf("turn order wrong: %s, %s", all[0].Role, all[1].Role)
	}

	last, err := store.Recent(ctx, "u1", 1)
	if err != nil {
		t.Fatalf("recent(1) failed: %v", err)
	}
	if len(last) != 1 || last[0].Role != "assistant" {
		t.Errorf("recent(1) should return the newest turn, got %+v", last)
	}
}

func TestMemoryStoreCap(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10)

	for i := 0; i < 8; i++ {
		err := store.Append(ctx, "u1",
			turn("user", fmt.Sprintf("question %d", i)),
			turn("assistant", fmt.Sprintf("réponse %d", i)),
		)
		if err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}

	all, err := store.Recent(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(all) != 10 {
		t.Fatalf("got %d turns, cap is 10", len(all))
	}
	// Oldest turns are evicted, the newest survive.
	if all[0].Content != "question 3" {
		t.Errorf("oldest kept turn = %q, want %q", all[0].Content, "question 3")
	}
	if all[9].Content != "réponse 7" {
		t.Errorf("newest turn = %q, want %q", all[9].Content, "réponse 7")
	}
}

func TestMemoryStoreHasHistoryAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10)

	if has, _ := store.HasHistory(ctx, "u1"); has {
		t.Error("new user should have no history")
	}

	if err := store.Append(ctx, "u1", turn("user", "salut")); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if has, _ := store.HasHistory(ctx, "u1"); !has {
		t.Error("user should have history after append")
	}
	if has, _ := store.HasHistory(ctx, "u2"); has {
		t.Error("sessions must not leak between users")
	}

	if err := store.Clear(ctx, "u1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if has, _ := store.HasHistory(ctx, "u1"); has {
		t.Error("history should be gone after clear")
	}
}

func TestMemoryStoreConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Append(ctx, "u1", turn("user", fmt.Sprintf("m%d", i)))
		}(i)
	}
	wg.Wait()

	all, err := store.Recent(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(all) != 10 {
		t.Fatalf("got %d turns after concurrent appends, cap is 10", len(all))
	}
}

func TestMemoryStoreRecentIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10)

	if err := store.Append(ctx, "u1", turn("user", "original")); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	got, _ := store.Recent(ctx, "u1", 0)
	got[0].Content = "mutated"

	again, _ := store.Recent(ctx, "u1", 0)
	if again[0].Content != "original" {
		t.Error("Recent must return a copy, not the backing slice")
	}
}
