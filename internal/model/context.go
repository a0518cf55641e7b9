package model

// DefaultTopK is the recommendation result count used when the server has
// never declared one.
const DefaultTopK = 3

// RecommendContext is the sticky recommendation filter state carried
// across turns: district, rent bounds and result count. Server-declared
// values override previous ones; absent fields retain their prior value.
type RecommendContext struct {
	Gu      *string  `json:"gu,omitempty"`
	MinRent *float64 `json:"min_rent,omitempty"`
	MaxRent *float64 `json:"max_rent,omitempty"`
	TopK    int      `json:"top_k"`
}

// DefaultRecommendContext returns the reset-state context.
func DefaultRecommendContext() RecommendContext {
	return RecommendContext{TopK: DefaultTopK}
}

// Merge folds server-declared filters from a recommend-mode reply into the
// context. A server value wins only when present and of the expected type.
func (c RecommendContext) Merge(resp *AutoChatResponse) RecommendContext {
	next := c
	if resp.Gu != nil {
		next.Gu = resp.Gu
	}
	if resp.MinRent != nil {
		next.MinRent = resp.MinRent
	}
	if resp.MaxRent != nil {
		next.MaxRent = resp.MaxRent
	}
	if resp.TopK != nil {
		next.TopK = int(*resp.TopK)
	} else if next.TopK == 0 {
		next.TopK = DefaultTopK
	}
	return next
}
