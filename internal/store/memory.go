package store

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"chatcore/internal/i18n"
	"chatcore/internal/model"
)

// MemoryStore is the default in-process conversation store.
type MemoryStore struct {
	mu            sync.Mutex
	conversations map[string]*Conversation
	activeID      string
	gallery       []string
	rng           *rand.Rand
	now           func() time.Time
}

// NewMemoryStore creates an in-memory store. The rand source drives the
// per-conversation gallery permutation and is injectable for tests.
func NewMemoryStore(gallery []string, rng *rand.Rand) *MemoryStore {
	return &MemoryStore{
		conversations: make(map[string]*Conversation),
		gallery:       gallery,
		rng:           rng,
		now:           time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, language string) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := &Conversation{
		ID:       uuid.NewString(),
		Language: language,
	}
	s.resetLocked(conv)
	s.conversations[conv.ID] = conv
	s.activeID = conv.ID
	return copyConversation(conv), nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyConversation(conv), nil
}

func (s *MemoryStore) Active(_ context.Context) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[s.activeID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyConversation(conv), nil
}

func (s *MemoryStore) Select(_ context.Context, id string) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return nil, ErrNotFound
	}
	s.resetLocked(conv)
	s.activeID = id
	return copyConversation(conv), nil
}

func (s *MemoryStore) SetLanguage(_ context.Context, id, language string) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return nil, ErrNotFound
	}
	conv.Language = language
	s.resetLocked(conv)
	return copyConversation(conv), nil
}

func (s *MemoryStore) Append(_ context.Context, id string, msg model.Message) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return model.Message{}, ErrNotFound
	}
	msg.ID = strconv.Itoa(conv.NextID)
	conv.NextID++
	conv.Messages = append(conv.Messages, msg)
	return msg, nil
}

func (s *MemoryStore) SetContext(_ context.Context, id string, rc model.RecommendContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return ErrNotFound
	}
	conv.Context = rc
	return nil
}

func (s *MemoryStore) BeginTurn(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return ErrNotFound
	}
	if conv.Busy {
		return ErrBusy
	}
	conv.Busy = true
	return nil
}

func (s *MemoryStore) EndTurn(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return ErrNotFound
	}
	conv.Busy = false
	return nil
}

// resetLocked restores a conversation to its initial state: one greeting
// message, the default recommendation context, a fresh gallery shuffle.
func (s *MemoryStore) resetLocked(conv *Conversation) {
	greeting := model.NewBotMessage(i18n.TextsFor(conv.Language).Greeting, s.now(), nil)
	greeting.ID = "1"
	conv.Messages = []model.Message{greeting}
	conv.NextID = 2
	conv.Context = model.DefaultRecommendContext()
	conv.Gallery = ShuffleGallery(s.gallery, s.rng)
	conv.Busy = false
}

func copyConversation(conv *Conversation) *Conversation {
	out := *conv
	out.Messages = append([]model.Message(nil), conv.Messages...)
	out.Gallery = append([]string(nil), conv.Gallery...)
	return &out
}
