package model

// Row is the canonical positional row shape. Upstream rows arrive as
// arrays, keyed records or bare scalars; they are normalized here, at the
// system boundary, so no downstream consumer repeats the shape check.
type Row []any

// NormalizeRows converts raw rows into canonical rows aligned with
// columns. Keyed records are projected onto the column list (missing keys
// become nil), positional rows pass through unchanged, and any other
// scalar is wrapped as a single-cell row.
func NormalizeRows(columns []string, raw []any) []Row {
	rows := make([]Row, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case []any:
			rows = append(rows, Row(v))
		case map[string]any:
			row := make(Row, len(columns))
			for i, col := range columns {
				row[i] = v[col]
			}
			rows = append(rows, row)
		default:
			rows = append(rows, Row{item})
		}
	}
	return rows
}

// Record projects a row back onto its column names for keyed access.
// Cells beyond the column list are dropped; missing cells are absent keys.
func (r Row) Record(columns []string) map[string]any {
	record := make(map[string]any, len(columns))
	for i, col := range columns {
		if i < len(r) {
			record[col] = r[i]
		}
	}
	return record
}
