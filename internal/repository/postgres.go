package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"chatcore/internal/model"
)

// MessageArchive is an append-only Postgres sink for conversation
// messages. It is write-behind: the chat flow never waits on it and an
// archive failure only logs.
type MessageArchive struct {
	db *sqlx.DB
}

// NewMessageArchive connects to PostgreSQL and ensures the archive table.
func NewMessageArchive(dsn string, maxConn, maxIdleConn int) (*MessageArchive, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	archive := &MessageArchive{db: db}
	if err := archive.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return archive, nil
}

// Close closes the database connection
func (a *MessageArchive) Close() error {
	return a.db.Close()
}

func (a *MessageArchive) ensureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS chat_messages (
			id              BIGSERIAL PRIMARY KEY,
			conversation_id TEXT        NOT NULL,
			message_id      TEXT        NOT NULL,
			sender          TEXT        NOT NULL,
			mode            TEXT,
			body            TEXT        NOT NULL,
			payload         JSONB,
			created_at      TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_chat_messages_conversation
			ON chat_messages (conversation_id, id);
	`
	if _, err := a.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure archive schema: %w", err)
	}
	return nil
}

// SaveMessage appends one message to the archive. The presentation models
// (table, chart, cards, citations) go into a JSONB payload column so no
// schema change is needed when a new presentation shape appears.
func (a *MessageArchive) SaveMessage(ctx context.Context, conversationID string, msg *model.Message) error {
	payload := buildPayload(msg)

	const query = `
		INSERT INTO chat_messages (conversation_id, message_id, sender, mode, body, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := a.db.ExecContext(ctx, query,
		conversationID,
		msg.ID,
		msg.Sender,
		msg.Mode,
		msg.Text,
		payload,
		msg.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to archive message: %w", err)
	}
	return nil
}

// CountMessages reports how many messages a conversation has archived.
func (a *MessageArchive) CountMessages(ctx context.Context, conversationID string) (int, error) {
	var count int
	err := a.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM chat_messages WHERE conversation_id = $1`, conversationID)
	if err != nil {
		return 0, fmt.Errorf("failed to count archived messages: %w", err)
	}
	return count, nil
}

func buildPayload(msg *model.Message) model.JSONMap {
	payload := model.JSONMap{}
	put := func(key string, v any) {
		if v == nil {
			return
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return
		}
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return
		}
		payload[key] = decoded
	}

	if msg.Table != nil {
		put("table", msg.Table)
	}
	if msg.Chart != nil {
		put("chart", msg.Chart)
	}
	if len(msg.Properties) > 0 {
		put("properties", msg.Properties)
	}
	if len(msg.Sources) > 0 {
		put("sources", msg.Sources)
	}
	if msg.SQLQuery != "" {
		payload["sql"] = msg.SQLQuery
	}
	if len(payload) == 0 {
		return nil
	}
	return payload
}
