package chart

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// teammates sharing a color are told apart by darkening one line this much
const teammateDarkenStep = 0.25

// Darken scales each RGB channel of a hex color by (1 - amount) and
// re-encodes it as 6-digit lowercase hex without a leading '#'. Invalid
// input is returned normalized but otherwise untouched.
func Darken(hexColor string, amount float64) string {
	normalized := strings.ToLower(strings.TrimPrefix(hexColor, "#"))
	if len(normalized) != 6 {
		return normalized
	}
	if amount < 0 {
		amount = 0
	} else if amount >= 1 {
		amount = 1
	}

	channels := make([]int, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(normalized[i*2:i*2+2], 16, 8)
		if err != nil {
			return normalized
		}
		scaled := int(float64(v) * (1 - amount))
		if scaled < 0 {
			scaled = 0
		} else if scaled > 255 {
			scaled = 255
		}
		channels[i] = scaled
	}
	return fmt.Sprintf("%02x%02x%02x", channels[0], channels[1], channels[2])
}

// AssignColors resolves the rendered line color per selected entity.
// Entities sharing a team color are ranked by their final cumulative
// points; the strongest keeps the team color, each following one gets a
// progressively darkened variant so teammates stay distinguishable.
// Callers charting constructors pass each entity a distinct color, so
// constructors are never darkened.
func AssignColors(entities []Entity, selected []string) map[string]string {
	picked := selectEntities(entities, selected)
	result := make(map[string]string, len(picked))

	byColor := make(map[string][]Entity)
	for _, e := range picked {
		color := strings.ToLower(strings.TrimPrefix(e.Color, "#"))
		byColor[color] = append(byColor[color], e)
	}

	for color, group := range byColor {
		if color == "" {
			for _, e := range group {
				result[e.Key] = ""
			}
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			return finalPoints(group[i]) > finalPoints(group[j])
		})
		for i, e := range group {
			result[e.Key] = Darken(color, teammateDarkenStep*float64(i))
		}
	}
	return result
}

func finalPoints(e Entity) float64 {
	if len(e.Points) == 0 {
		return 0
	}
	return e.Points[len(e.Points)-1].Points
}
