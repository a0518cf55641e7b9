package store

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"chatcore/internal/i18n"
	"chatcore/internal/model"
)

func newTestStore() *MemoryStore {
	return NewMemoryStore(DefaultGallery(16), rand.New(rand.NewSource(1)))
}

func TestMemoryStore_CreateSeedsGreeting(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	conv, err := s.Create(ctx, "en")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if conv.ID == "" {
		t.Error("conversation should get an identifier")
	}
	if len(conv.Messages) != 1 {
		t.Fatalf("expected exactly one greeting message, got %d", len(conv.Messages))
	}
	greeting := conv.Messages[0]
	if greeting.Sender != model.SenderBot || greeting.Text != i18n.TextsFor("en").Greeting {
		t.Errorf("unexpected greeting: %+v", greeting)
	}
	if conv.Context.TopK != model.DefaultTopK || conv.Context.Gu != nil {
		t.Errorf("context should be default: %+v", conv.Context)
	}
	if len(conv.Gallery) != 16 {
		t.Errorf("gallery permutation should cover all images, got %d", len(conv.Gallery))
	}

	active, err := s.Active(ctx)
	if err != nil || active.ID != conv.ID {
		t.Errorf("new conversation should be active: %v, %v", active, err)
	}
}

func TestMemoryStore_AppendAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	conv, _ := s.Create(ctx, "ko")

	first, err := s.Append(ctx, conv.ID, model.NewUserMessage("hi", time.Now()))
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	second, _ := s.Append(ctx, conv.ID, model.NewBotMessage("hello", time.Now(), nil))

	if first.ID != "2" || second.ID != "3" {
		t.Errorf("expected ids 2 and 3 after the greeting, got %q and %q", first.ID, second.ID)
	}

	got, _ := s.Get(ctx, conv.ID)
	if len(got.Messages) != 3 {
		t.Errorf("expected 3 messages, got %d", len(got.Messages))
	}
}

func TestMemoryStore_SetLanguageResets(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	conv, _ := s.Create(ctx, "ko")

	gu := "강남구"
	_, _ = s.Append(ctx, conv.ID, model.NewUserMessage("질문", time.Now()))
	_ = s.SetContext(ctx, conv.ID, model.RecommendContext{Gu: &gu, TopK: 5})

	reset, err := s.SetLanguage(ctx, conv.ID, "vi")
	if err != nil {
		t.Fatalf("SetLanguage failed: %v", err)
	}
	if len(reset.Messages) != 1 {
		t.Fatalf("history should reset to a single greeting, got %d messages", len(reset.Messages))
	}
	if reset.Messages[0].Text != i18n.TextsFor("vi").Greeting {
		t.Errorf("greeting should switch locale: %q", reset.Messages[0].Text)
	}
	want := model.DefaultRecommendContext()
	if !reflect.DeepEqual(reset.Context, want) {
		t.Errorf("context should reset to %+v, got %+v", want, reset.Context)
	}
}

func TestMemoryStore_SelectResets(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	conv, _ := s.Create(ctx, "ko")
	other, _ := s.Create(ctx, "ko")

	_, _ = s.Append(ctx, conv.ID, model.NewUserMessage("질문", time.Now()))

	selected, err := s.Select(ctx, conv.ID)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(selected.Messages) != 1 {
		t.Errorf("switching conversations should reset history, got %d messages", len(selected.Messages))
	}

	active, _ := s.Active(ctx)
	if active.ID != conv.ID {
		t.Errorf("selected conversation should be active, got %s (other was %s)", active.ID, other.ID)
	}
}

func TestMemoryStore_BusyGate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	conv, _ := s.Create(ctx, "ko")

	if err := s.BeginTurn(ctx, conv.ID); err != nil {
		t.Fatalf("first BeginTurn failed: %v", err)
	}
	if err := s.BeginTurn(ctx, conv.ID); !errors.Is(err, ErrBusy) {
		t.Errorf("second BeginTurn should return ErrBusy, got %v", err)
	}
	if err := s.EndTurn(ctx, conv.ID); err != nil {
		t.Fatalf("EndTurn failed: %v", err)
	}
	if err := s.BeginTurn(ctx, conv.ID); err != nil {
		t.Errorf("BeginTurn after EndTurn should succeed, got %v", err)
	}
}

func TestMemoryStore_UnknownConversation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	if _, err := s.Get(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get should return ErrNotFound, got %v", err)
	}
	if err := s.BeginTurn(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("BeginTurn should return ErrNotFound, got %v", err)
	}
}

func TestShuffleGallery_Deterministic(t *testing.T) {
	gallery := DefaultGallery(16)

	a := ShuffleGallery(gallery, rand.New(rand.NewSource(7)))
	b := ShuffleGallery(gallery, rand.New(rand.NewSource(7)))
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should give the same permutation")
	}

	seen := make(map[string]bool, len(a))
	for _, img := range a {
		seen[img] = true
	}
	if len(seen) != len(gallery) {
		t.Errorf("shuffle must be a permutation, got %d distinct of %d", len(seen), len(gallery))
	}

	if !reflect.DeepEqual(gallery, DefaultGallery(16)) {
		t.Error("shuffle must not mutate its input")
	}
}
