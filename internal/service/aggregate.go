package service

import (
	"chatcore/internal/model"
	"chatcore/internal/utils"
)

// AggregationRule describes one way to derive a chart from a result set:
// when both columns are present, rows are grouped by GroupColumn and the
// per-group mean of ValueColumn is charted. The trigger is deliberately a
// pluggable rule so new grouping columns don't touch the dispatch logic.
type AggregationRule struct {
	GroupColumn string
	ValueColumn string
	Title       string
	Kind        string
}

// DefaultAggregationRules returns the built-in district/deal-price rule.
func DefaultAggregationRules() []AggregationRule {
	return []AggregationRule{
		{
			GroupColumn: "gu",
			ValueColumn: "deal_price",
			Title:       "구별 평균 거래금액",
			Kind:        model.ChartKindBar,
		},
	}
}

// Aggregate applies the first rule whose columns are both present and
// returns its grouped-average chart, or nil when no rule matches. Rows
// whose value does not coerce to a finite number are skipped silently;
// output order is first-seen group order.
func Aggregate(rules []AggregationRule, columns []string, rows []model.Row) *model.ChartModel {
	for _, rule := range rules {
		groupIdx := indexOf(columns, rule.GroupColumn)
		valueIdx := indexOf(columns, rule.ValueColumn)
		if groupIdx < 0 || valueIdx < 0 {
			continue
		}

		type accumulator struct {
			sum   float64
			count int
		}
		groups := make(map[string]*accumulator)
		order := make([]string, 0)

		for _, row := range rows {
			if groupIdx >= len(row) || valueIdx >= len(row) {
				continue
			}
			value, ok := utils.AsFloat(row[valueIdx])
			if !ok {
				continue
			}
			name := utils.Stringify(row[groupIdx])
			acc, seen := groups[name]
			if !seen {
				acc = &accumulator{}
				groups[name] = acc
				order = append(order, name)
			}
			acc.sum += value
			acc.count++
		}

		points := make([]model.ChartPoint, 0, len(order))
		for _, name := range order {
			acc := groups[name]
			points = append(points, model.ChartPoint{
				Name:  name,
				Value: acc.sum / float64(acc.count),
			})
		}

		return &model.ChartModel{
			Kind:   rule.Kind,
			Title:  rule.Title,
			Points: points,
		}
	}
	return nil
}

func indexOf(list []string, target string) int {
	for i, s := range list {
		if s == target {
			return i
		}
	}
	return -1
}
