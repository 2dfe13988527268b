package chart

import (
	"github.com/samber/lo"
)

// BuildProgressionSeries aligns the independent progression lists of the
// selected entities into one round-keyed tabular series.
//
// The round axis is the union of all selected entities' round identifiers
// in first-seen order. Entities are aligned by identifier equality, never
// by slice index, so an entity that skipped a round still lines up. A
// missing point contributes 0. The event name of a row comes from the
// first selected entity that has the point.
func BuildProgressionSeries(entities []Entity, selected []string) []SeriesRow {
	picked := selectEntities(entities, selected)
	if len(picked) == 0 {
		return []SeriesRow{}
	}

	axis := make([]string, 0, len(picked[0].Points))
	seen := make(map[string]struct{})
	for _, e := range picked {
		for _, p := range e.Points {
			if _, ok := seen[p.Round]; !ok {
				seen[p.Round] = struct{}{}
				axis = append(axis, p.Round)
			}
		}
	}

	byRound := make([]map[string]Point, len(picked))
	for i, e := range picked {
		byRound[i] = lo.SliceToMap(e.Points, func(p Point) (string, Point) {
			return p.Round, p
		})
	}

	rows := make([]SeriesRow, 0, len(axis))
	prev := make(map[string]float64, len(picked))
	for _, round := range axis {
		row := SeriesRow{
			Round:  round,
			Values: make(map[string]float64, len(picked)),
			Prior:  make(map[string]float64, len(picked)),
		}
		for i, e := range picked {
			var value float64
			if p, ok := byRound[i][round]; ok {
				value = p.Points
				if row.EventName == "" {
					row.EventName = p.EventName
				}
			}
			row.Values[e.Key] = value
			row.Prior[e.Key] = prev[e.Key]
			prev[e.Key] = value
		}
		rows = append(rows, row)
	}
	return rows
}

func selectEntities(entities []Entity, selected []string) []Entity {
	if len(selected) == 0 {
		return nil
	}
	wanted := make(map[string]struct{}, len(selected))
	for _, key := range selected {
		wanted[key] = struct{}{}
	}
	return lo.Filter(entities, func(e Entity, _ int) bool {
		_, ok := wanted[e.Key]
		return ok
	})
}
