package service

import (
	"chatcore/internal/i18n"
	"chatcore/internal/model"
)

// BuildTable converts a raw result set into a locale-aware table model.
// Headers carry the display labels of the raw column keys; the title is a
// fixed locale phrase, independent of query content.
func BuildTable(lang string, columns []string, rows []model.Row) *model.TableModel {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = i18n.ColumnLabel(lang, col)
	}

	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = []any(row)
	}

	return &model.TableModel{
		Title:   i18n.TextsFor(lang).TableTitle,
		Headers: headers,
		Rows:    out,
	}
}
