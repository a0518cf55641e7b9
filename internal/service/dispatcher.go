package service

import (
	"context"
	"log"
	"time"

	"chatcore/internal/i18n"
	"chatcore/internal/model"
	"chatcore/internal/store"
)

// Archiver persists messages outside the chat flow. Implemented by the
// Postgres message archive; nil disables archiving.
type Archiver interface {
	SaveMessage(ctx context.Context, conversationID string, msg *model.Message) error
}

// ChatService orchestrates one conversational turn: it forwards the
// question to the answering service, interprets the polymorphic reply
// into exactly one presentation model, and appends the resulting messages
// to the conversation store.
type ChatService struct {
	answerer Answerer
	store    store.ConversationStore
	rules    []AggregationRule
	archive  Archiver
}

// NewChatService creates a chat service. rules may be nil to use the
// built-in aggregation rules.
func NewChatService(answerer Answerer, st store.ConversationStore, rules []AggregationRule, archive Archiver) *ChatService {
	if rules == nil {
		rules = DefaultAggregationRules()
	}
	return &ChatService{
		answerer: answerer,
		store:    st,
		rules:    rules,
		archive:  archive,
	}
}

// Send runs one turn for the conversation and returns the appended
// messages: the user's question and the assistant's reply. While a turn
// is in flight, further sends for the same conversation fail with
// store.ErrBusy. A failed upstream request still appends an error reply;
// the busy gate is released on every path.
func (s *ChatService) Send(ctx context.Context, conversationID, question string) ([]model.Message, error) {
	conv, err := s.store.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	if err := s.store.BeginTurn(ctx, conversationID); err != nil {
		return nil, err
	}
	defer func() {
		// Clear the busy flag even when the request context is gone.
		if err := s.store.EndTurn(context.Background(), conversationID); err != nil {
			log.Printf("Warning: failed to clear busy flag for %s: %v", conversationID, err)
		}
	}()

	userMsg, err := s.store.Append(ctx, conversationID, model.NewUserMessage(question, time.Now()))
	if err != nil {
		return nil, err
	}
	s.archiveAsync(conversationID, userMsg)

	texts := i18n.TextsFor(conv.Language)

	resp, err := s.answerer.Ask(ctx, &model.AutoChatRequest{
		Question: question,
		Language: conv.Language,
		Gu:       conv.Context.Gu,
		MinRent:  conv.Context.MinRent,
		MaxRent:  conv.Context.MaxRent,
		TopK:     conv.Context.TopK,
	})
	if err != nil {
		failure := model.NewBotMessage(texts.ErrorPrefix+err.Error(), time.Now(), nil)
		botMsg, appendErr := s.store.Append(ctx, conversationID, failure)
		if appendErr != nil {
			return nil, appendErr
		}
		s.archiveAsync(conversationID, botMsg)
		return []model.Message{userMsg, botMsg}, nil
	}

	reply, mergedContext := s.interpret(conv, resp)
	if mergedContext != nil {
		if err := s.store.SetContext(ctx, conversationID, *mergedContext); err != nil {
			return nil, err
		}
	}

	botMsg, err := s.store.Append(ctx, conversationID, reply)
	if err != nil {
		return nil, err
	}
	s.archiveAsync(conversationID, botMsg)

	return []model.Message{userMsg, botMsg}, nil
}

// interpret builds the bot message for a reply. For recommend-mode
// replies it also returns the merged recommendation context.
func (s *ChatService) interpret(conv *store.Conversation, resp *model.AutoChatResponse) (model.Message, *model.RecommendContext) {
	texts := i18n.TextsFor(conv.Language)
	now := time.Now()

	mode := resp.Mode
	if mode == "" {
		mode = model.ModeRAG
	}

	answer := resp.Answer
	if answer == "" {
		answer = texts.DefaultAnswer
	}

	var columns []string
	var rows []model.Row
	if resp.Data != nil {
		columns = resp.Data.Columns
		rows = model.NormalizeRows(columns, resp.Data.Rows)
	}

	if mode == model.ModeRecommend {
		merged := conv.Context.Merge(resp)
		cards := MapRecommendations(columns, rows, conv.Gallery)
		msg := model.NewBotMessage(answer, now, model.RecommendPresentation{Cards: cards})
		return msg, &merged
	}

	var table *model.TableModel
	var chart *model.ChartModel
	if len(rows) > 0 {
		table = BuildTable(conv.Language, columns, rows)
	}
	if resp.Data != nil {
		chart = Aggregate(s.rules, columns, rows)
	}

	if mode == model.ModeSQL {
		return model.NewBotMessage(answer, now, model.SQLPresentation{
			Query: resp.SQL,
			Table: table,
			Chart: chart,
		}), nil
	}

	return model.NewBotMessage(answer, now, model.RagPresentation{
		Sources: resp.Sources,
		Table:   table,
		Chart:   chart,
	}), nil
}

func (s *ChatService) archiveAsync(conversationID string, msg model.Message) {
	if s.archive == nil {
		return
	}
	go func() {
		if err := s.archive.SaveMessage(context.Background(), conversationID, &msg); err != nil {
			log.Printf("Warning: failed to archive message %s/%s: %v", conversationID, msg.ID, err)
		}
	}()
}
