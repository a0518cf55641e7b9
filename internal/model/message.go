package model

import "time"

// Sender roles
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Response modes declared by the answering service
const (
	ModeSQL       = "sql"
	ModeRAG       = "rag"
	ModeRecommend = "recommend"
)

// Message is one turn in a conversation. Messages are immutable once
// appended to a store; the store replaces them wholesale, never in place.
type Message struct {
	ID         string         `json:"id"`
	Text       string         `json:"text"`
	Sender     string         `json:"sender"`
	Timestamp  time.Time      `json:"timestamp"`
	Chart      *ChartModel    `json:"chart_data,omitempty"`
	Table      *TableModel    `json:"table_data,omitempty"`
	Properties []PropertyCard `json:"property_data,omitempty"`
	SQLQuery   string         `json:"sql_query,omitempty"`
	Mode       string         `json:"mode,omitempty"`
	Sources    []string       `json:"sources,omitempty"`
}

// NewUserMessage builds a user turn. The store assigns the ID on append.
func NewUserMessage(text string, ts time.Time) Message {
	return Message{Text: text, Sender: SenderUser, Timestamp: ts}
}

// NewBotMessage builds a bot turn from a mode-specific presentation.
// A nil presentation yields a plain text message.
func NewBotMessage(text string, ts time.Time, p Presentation) Message {
	m := Message{Text: text, Sender: SenderBot, Timestamp: ts}
	if p != nil {
		p.apply(&m)
	}
	return m
}
