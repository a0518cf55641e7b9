package service

import (
	"strconv"
	"strings"

	"chatcore/internal/model"
	"chatcore/internal/utils"
)

const (
	// fallbackBuildingName labels listings without a building name.
	fallbackBuildingName = "이름 없는 건물"
	cardType             = "recommended"

	// Source rent and deposit values are in units of 10,000 won.
	wonUnit = 10000
)

// MapRecommendations converts raw recommend-mode rows into display-ready
// property cards. Output order matches input order; the row index serves
// as fallback identifier and drives the gallery image assignment.
func MapRecommendations(columns []string, rows []model.Row, gallery []string) []model.PropertyCard {
	cards := make([]model.PropertyCard, 0, len(rows))
	for i, row := range rows {
		rec := row.Record(columns)

		card := model.PropertyCard{
			ID:        strconv.Itoa(i),
			Title:     fallbackBuildingName,
			Type:      cardType,
			Rooms:     0,
			Bathrooms: 0,
		}
		if id := utils.Stringify(rec["id"]); id != "" {
			card.ID = id
		}
		if name, ok := utils.AsString(rec["bldg_nm"]); ok && name != "" {
			card.Title = name
		}

		card.Location = buildLocation(rec)
		card.Price = buildPrice(rec)
		if area := utils.Stringify(rec["rent_area"]); area != "" {
			card.Area = area + "㎡"
		}
		if len(gallery) > 0 {
			card.ImageURL = gallery[i%len(gallery)]
		}

		if store, ok := utils.AsString(rec["nearest_store_name"]); ok {
			card.NearestStoreName = store
		}
		if subway, ok := utils.AsString(rec["nearest_subway_station"]); ok {
			card.NearestSubway = subway
		}
		if km, ok := utils.AsFloat(rec["nearest_subway_distance_km"]); ok {
			card.NearestSubwayDistanceKm = &km
		}

		cards = append(cards, card)
	}
	return cards
}

// buildLocation joins district, neighborhood and block-lot, skipping
// whatever is missing.
func buildLocation(rec map[string]any) string {
	blockLot := joinNonEmpty([]string{
		utils.Stringify(rec["mno"]),
		utils.Stringify(rec["sno"]),
	}, "-")

	return joinNonEmpty([]string{
		utils.Stringify(rec["cgg_nm"]),
		utils.Stringify(rec["stdg_nm"]),
		blockLot,
	}, " ")
}

// buildPrice renders up to two price parts, rent and deposit, converted
// from 10,000-won units.
func buildPrice(rec map[string]any) string {
	parts := make([]string, 0, 2)
	if rent, ok := utils.AsFloat(rec["rtfe"]); ok {
		parts = append(parts, "rent "+formatWon(rent)+" won")
	}
	if deposit, ok := utils.AsFloat(rec["grfe"]); ok {
		parts = append(parts, "deposit "+formatWon(deposit)+" won")
	}
	return strings.Join(parts, " · ")
}

func formatWon(v float64) string {
	return strconv.FormatFloat(v*wonUnit, 'f', -1, 64)
}

func joinNonEmpty(pieces []string, sep string) string {
	kept := pieces[:0]
	for _, p := range pieces {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
