package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"chatcore/internal/i18n"
	"chatcore/internal/model"
)

const (
	conversationTTL    = 24 * time.Hour
	conversationPrefix = "conversation:"
	activeKey          = "conversation:active"
)

// RedisStore keeps conversations as JSON blobs in Redis so they survive a
// process restart. Read-modify-write cycles are serialized with a local
// mutex; conversations are only ever mutated from one logical operation
// at a time.
type RedisStore struct {
	mu      sync.Mutex
	rdb     *redis.Client
	gallery []string
	rng     *rand.Rand
	now     func() time.Time
}

// NewRedisStore creates a Redis-backed conversation store.
func NewRedisStore(rdb *redis.Client, gallery []string, rng *rand.Rand) *RedisStore {
	return &RedisStore{
		rdb:     rdb,
		gallery: gallery,
		rng:     rng,
		now:     time.Now,
	}
}

func (s *RedisStore) Create(ctx context.Context, language string) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := &Conversation{
		ID:       uuid.NewString(),
		Language: language,
	}
	s.resetLocked(conv)
	if err := s.saveLocked(ctx, conv); err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, activeKey, conv.ID, conversationTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to mark conversation active: %w", err)
	}
	return conv, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx, id)
}

func (s *RedisStore) Active(ctx context.Context) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.rdb.Get(ctx, activeKey).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load active conversation id: %w", err)
	}
	return s.loadLocked(ctx, id)
}

func (s *RedisStore) Select(ctx context.Context, id string) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, err := s.loadLocked(ctx, id)
	if err != nil {
		return nil, err
	}
	s.resetLocked(conv)
	if err := s.saveLocked(ctx, conv); err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, activeKey, id, conversationTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to mark conversation active: %w", err)
	}
	return conv, nil
}

func (s *RedisStore) SetLanguage(ctx context.Context, id, language string) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, err := s.loadLocked(ctx, id)
	if err != nil {
		return nil, err
	}
	conv.Language = language
	s.resetLocked(conv)
	if err := s.saveLocked(ctx, conv); err != nil {
		return nil, err
	}
	return conv, nil
}

func (s *RedisStore) Append(ctx context.Context, id string, msg model.Message) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, err := s.loadLocked(ctx, id)
	if err != nil {
		return model.Message{}, err
	}
	msg.ID = strconv.Itoa(conv.NextID)
	conv.NextID++
	conv.Messages = append(conv.Messages, msg)
	if err := s.saveLocked(ctx, conv); err != nil {
		return model.Message{}, err
	}
	return msg, nil
}

func (s *RedisStore) SetContext(ctx context.Context, id string, rc model.RecommendContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, err := s.loadLocked(ctx, id)
	if err != nil {
		return err
	}
	conv.Context = rc
	return s.saveLocked(ctx, conv)
}

func (s *RedisStore) BeginTurn(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, err := s.loadLocked(ctx, id)
	if err != nil {
		return err
	}
	if conv.Busy {
		return ErrBusy
	}
	conv.Busy = true
	return s.saveLocked(ctx, conv)
}

func (s *RedisStore) EndTurn(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, err := s.loadLocked(ctx, id)
	if err != nil {
		return err
	}
	conv.Busy = false
	return s.saveLocked(ctx, conv)
}

func (s *RedisStore) resetLocked(conv *Conversation) {
	greeting := model.NewBotMessage(i18n.TextsFor(conv.Language).Greeting, s.now(), nil)
	greeting.ID = "1"
	conv.Messages = []model.Message{greeting}
	conv.NextID = 2
	conv.Context = model.DefaultRecommendContext()
	conv.Gallery = ShuffleGallery(s.gallery, s.rng)
	conv.Busy = false
}

func (s *RedisStore) loadLocked(ctx context.Context, id string) (*Conversation, error) {
	data, err := s.rdb.Get(ctx, conversationPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	var conv Conversation
	if err := json.Unmarshal(data, &conv); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation: %w", err)
	}
	return &conv, nil
}

func (s *RedisStore) saveLocked(ctx context.Context, conv *Conversation) error {
	data, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation: %w", err)
	}
	if err := s.rdb.Set(ctx, conversationPrefix+conv.ID, data, conversationTTL).Err(); err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}
	return nil
}
