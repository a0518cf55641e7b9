package model

import (
	"encoding/json"

	"chatcore/internal/utils"
)

// AutoChatRequest is the body sent to the answering service's /chat/auto
// endpoint. The recommendation filters ride along on every question so the
// server can keep refining earlier recommend-mode answers.
type AutoChatRequest struct {
	Question string   `json:"question"`
	Language string   `json:"language"`
	Gu       *string  `json:"gu,omitempty"`
	MinRent  *float64 `json:"min_rent,omitempty"`
	MaxRent  *float64 `json:"max_rent,omitempty"`
	TopK     int      `json:"top_k"`
}

// RawTable is the untyped result-set block of a reply. Rows may be
// positional arrays, keyed records, or bare scalars.
type RawTable struct {
	Columns []string `json:"columns"`
	Rows    []any    `json:"rows"`
}

// AutoChatResponse is the polymorphic reply of the answering service.
// Every field is optional and the payload is untrusted, so decoding never
// fails on a wrong-typed field: mismatched values are simply dropped,
// which lets the context-merge rule fall back to the previous value.
type AutoChatResponse struct {
	Mode    string
	Answer  string
	SQL     string
	Data    *RawTable
	Sources []string

	// Server-declared recommend-context overrides.
	Gu      *string
	MinRent *float64
	MaxRent *float64
	TopK    *float64
}

// UnmarshalJSON decodes the reply field by field through the coercion
// helpers instead of a rigid struct decode.
func (r *AutoChatResponse) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Mode, _ = utils.AsString(raw["mode"])
	r.Answer, _ = utils.AsString(raw["answer"])
	r.SQL, _ = utils.AsString(raw["sql"])

	if list, ok := raw["sources"].([]any); ok {
		for _, item := range list {
			if s, ok := utils.AsString(item); ok {
				r.Sources = append(r.Sources, s)
			}
		}
	}

	if s, ok := utils.AsString(raw["gu"]); ok {
		r.Gu = &s
	}
	if f, ok := utils.AsFloat(raw["min_rent"]); ok {
		r.MinRent = &f
	}
	if f, ok := utils.AsFloat(raw["max_rent"]); ok {
		r.MaxRent = &f
	}
	if f, ok := utils.AsFloat(raw["top_k"]); ok {
		r.TopK = &f
	}

	if block, ok := raw["data"].(map[string]any); ok {
		table := &RawTable{}
		if cols, ok := block["columns"].([]any); ok {
			table.Columns = make([]string, len(cols))
			for i, col := range cols {
				table.Columns[i] = utils.Stringify(col)
			}
		}
		if rows, ok := block["rows"].([]any); ok {
			table.Rows = rows
		}
		r.Data = table
	}

	return nil
}
