package store

import (
	"context"
	"errors"

	"chatcore/internal/model"
)

var (
	// ErrNotFound is returned for unknown conversation identifiers.
	ErrNotFound = errors.New("conversation not found")
	// ErrBusy is returned when a turn is already in flight for the
	// conversation. The busy gate lives here, at the input boundary,
	// because the upstream service gives no ordering guarantees.
	ErrBusy = errors.New("conversation is busy")
)

// Conversation is the unit of stored chat state: the ordered message
// history, the sticky recommendation filters, and the per-conversation
// gallery permutation for fallback card images.
type Conversation struct {
	ID       string                 `json:"id"`
	Language string                 `json:"language"`
	Messages []model.Message        `json:"messages"`
	Context  model.RecommendContext `json:"context"`
	Gallery  []string               `json:"gallery"`
	Busy     bool                   `json:"busy"`
	NextID   int                    `json:"next_id"`
}

// ConversationStore owns all conversation state. Messages are immutable
// once appended; implementations return copies, never internal slices.
type ConversationStore interface {
	// Create starts a new conversation seeded with a locale greeting
	// and makes it the active one.
	Create(ctx context.Context, language string) (*Conversation, error)
	// Get returns a copy of the conversation.
	Get(ctx context.Context, id string) (*Conversation, error)
	// Active returns the active conversation.
	Active(ctx context.Context) (*Conversation, error)
	// Select makes the conversation active and resets it: history back
	// to a single greeting, context back to default, gallery reshuffled.
	Select(ctx context.Context, id string) (*Conversation, error)
	// SetLanguage switches the conversation locale and resets it the
	// same way Select does.
	SetLanguage(ctx context.Context, id, language string) (*Conversation, error)
	// Append stores a message, assigning its identifier.
	Append(ctx context.Context, id string, msg model.Message) (model.Message, error)
	// SetContext replaces the recommendation filter context.
	SetContext(ctx context.Context, id string, rc model.RecommendContext) error
	// BeginTurn acquires the busy gate; ErrBusy when already held.
	BeginTurn(ctx context.Context, id string) error
	// EndTurn releases the busy gate.
	EndTurn(ctx context.Context, id string) error
}
