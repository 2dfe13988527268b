package chart

import (
	"fmt"
	"math"
)

// FormatLapTime renders seconds for display. Untimed values render "-".
// Reference (leader) values render "M:SS.mmm", everything else renders as
// a positive gap "+SS.mmm" since gaps are expected to stay under a minute.
func FormatLapTime(seconds *float64, leader bool) string {
	if seconds == nil {
		return "-"
	}
	if leader {
		minutes := int(math.Floor(*seconds / 60))
		return fmt.Sprintf("%d:%06.3f", minutes, *seconds-float64(minutes)*60)
	}
	return fmt.Sprintf("+%.3f", *seconds)
}
