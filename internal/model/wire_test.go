package model

import (
	"encoding/json"
	"testing"
	"time"
)

func testTime() time.Time {
	return time.Date(2025, 11, 2, 12, 0, 0, 0, time.UTC)
}

func TestAutoChatResponse_Unmarshal(t *testing.T) {
	body := `{
		"mode": "sql",
		"answer": "done",
		"sql": "SELECT 1",
		"data": {"columns": ["gu"], "rows": [["강남구"], {"gu": "서초구"}]},
		"sources": ["doc-1", 42, "doc-2"],
		"gu": "강남구",
		"min_rent": 30,
		"top_k": 5
	}`

	var resp AutoChatResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if resp.Mode != "sql" || resp.Answer != "done" || resp.SQL != "SELECT 1" {
		t.Errorf("unexpected scalar fields: %+v", resp)
	}
	if resp.Data == nil || len(resp.Data.Columns) != 1 || len(resp.Data.Rows) != 2 {
		t.Fatalf("unexpected data block: %+v", resp.Data)
	}
	// Non-string citations are dropped, not fatal.
	if len(resp.Sources) != 2 || resp.Sources[0] != "doc-1" || resp.Sources[1] != "doc-2" {
		t.Errorf("unexpected sources: %v", resp.Sources)
	}
	if resp.Gu == nil || *resp.Gu != "강남구" {
		t.Errorf("unexpected gu: %v", resp.Gu)
	}
	if resp.MinRent == nil || *resp.MinRent != 30 {
		t.Errorf("unexpected min_rent: %v", resp.MinRent)
	}
	if resp.MaxRent != nil {
		t.Errorf("absent max_rent should stay nil, got %v", *resp.MaxRent)
	}
	if resp.TopK == nil || *resp.TopK != 5 {
		t.Errorf("unexpected top_k: %v", resp.TopK)
	}
}

func TestAutoChatResponse_Unmarshal_ToleratesTypeMismatch(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "string top_k", body: `{"mode":"recommend","top_k":"five"}`},
		{name: "numeric gu", body: `{"mode":"recommend","gu":12}`},
		{name: "object sources", body: `{"sources":{"a":1}}`},
		{name: "string data block", body: `{"data":"oops"}`},
		{name: "empty object", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp AutoChatResponse
			if err := json.Unmarshal([]byte(tt.body), &resp); err != nil {
				t.Fatalf("mismatched field should not fail the decode: %v", err)
			}
			if resp.TopK != nil || resp.Gu != nil {
				t.Errorf("mismatched fields should be dropped: %+v", resp)
			}
		})
	}
}

func TestRecommendContext_Merge(t *testing.T) {
	gu := "강남구"
	minRent := 30.0
	topK := 5.0

	prev := DefaultRecommendContext()
	merged := prev.Merge(&AutoChatResponse{Gu: &gu, MinRent: &minRent, TopK: &topK})

	if merged.Gu == nil || *merged.Gu != gu {
		t.Errorf("server gu should win: %+v", merged)
	}
	if merged.MinRent == nil || *merged.MinRent != minRent {
		t.Errorf("server min_rent should win: %+v", merged)
	}
	if merged.TopK != 5 {
		t.Errorf("server top_k should win, got %d", merged.TopK)
	}

	// Absent fields retain the previous value; top_k falls back to 3.
	again := merged.Merge(&AutoChatResponse{})
	if again.Gu == nil || *again.Gu != gu || again.MinRent == nil || again.TopK != 5 {
		t.Errorf("absent fields should retain prior values: %+v", again)
	}

	zeroed := RecommendContext{}
	if got := zeroed.Merge(&AutoChatResponse{}); got.TopK != DefaultTopK {
		t.Errorf("top_k should fall back to %d, got %d", DefaultTopK, got.TopK)
	}
}

func TestNewBotMessage_PresentationVariants(t *testing.T) {
	table := &TableModel{Title: "t", Headers: []string{"a"}, Rows: [][]any{{1}}}
	cards := []PropertyCard{{ID: "0"}}

	sql := NewBotMessage("x", testTime(), SQLPresentation{Query: "SELECT 1", Table: table})
	if sql.Mode != ModeSQL || sql.Table == nil || sql.SQLQuery != "SELECT 1" {
		t.Errorf("unexpected sql message: %+v", sql)
	}

	rec := NewBotMessage("x", testTime(), RecommendPresentation{Cards: cards})
	if rec.Mode != ModeRecommend || rec.Table != nil || rec.Chart != nil || len(rec.Properties) != 1 {
		t.Errorf("recommend message must not carry a table or chart: %+v", rec)
	}

	rag := NewBotMessage("x", testTime(), RagPresentation{Sources: []string{"s"}})
	if rag.Mode != ModeRAG || len(rag.Sources) != 1 {
		t.Errorf("unexpected rag message: %+v", rag)
	}

	plain := NewBotMessage("x", testTime(), nil)
	if plain.Mode != "" || plain.Table != nil || plain.Properties != nil {
		t.Errorf("plain message should carry no presentation: %+v", plain)
	}
}
