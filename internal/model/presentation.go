package model

// Chart kinds
const (
	ChartKindLine = "line"
	ChartKindBar  = "bar"
)

// TableModel is a locale-resolved rectangular result set.
// Every row is positionally aligned with Headers.
type TableModel struct {
	Title   string   `json:"title"`
	Headers []string `json:"headers"`
	Rows    [][]any  `json:"rows"`
}

// ChartPoint is one named value in a chart series.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ChartModel is a chartable series derived from a result set.
type ChartModel struct {
	Kind   string       `json:"type"`
	Title  string       `json:"title"`
	Points []ChartPoint `json:"data"`
}

// PropertyCard is a display-ready recommended listing.
type PropertyCard struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Location  string `json:"location"`
	Price     string `json:"price"`
	Area      string `json:"area"`
	Rooms     int    `json:"rooms"`
	Bathrooms int    `json:"bathrooms"`
	ImageURL  string `json:"image_url,omitempty"`
	Type      string `json:"type"`

	NearestStoreName        string   `json:"nearest_store_name,omitempty"`
	NearestSubway           string   `json:"nearest_subway,omitempty"`
	NearestSubwayDistanceKm *float64 `json:"nearest_subway_distance_km,omitempty"`
}

// Presentation is the mode-specific payload of a bot message. Exactly one
// variant backs each reply, so a recommendation reply structurally cannot
// carry a table.
type Presentation interface {
	apply(*Message)
}

// RagPresentation carries a retrieval-augmented answer's citations and,
// when the reply included a result set, its table and chart.
type RagPresentation struct {
	Sources []string
	Table   *TableModel
	Chart   *ChartModel
}

// SQLPresentation carries a database answer: the generated query plus the
// table and chart derived from its result set.
type SQLPresentation struct {
	Query string
	Table *TableModel
	Chart *ChartModel
}

// RecommendPresentation carries property recommendation cards.
type RecommendPresentation struct {
	Cards []PropertyCard
}

func (p RagPresentation) apply(m *Message) {
	m.Mode = ModeRAG
	m.Sources = p.Sources
	m.Table = p.Table
	m.Chart = p.Chart
}

func (p SQLPresentation) apply(m *Message) {
	m.Mode = ModeSQL
	m.SQLQuery = p.Query
	m.Table = p.Table
	m.Chart = p.Chart
}

func (p RecommendPresentation) apply(m *Message) {
	m.Mode = ModeRecommend
	m.Properties = p.Cards
}
