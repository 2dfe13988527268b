package chart

// BuildLapSeries produces a per-lap series for the selected drivers.
//
// In direct mode each cell is the driver's raw lap time; laps without a
// time (pit stop, DNF, not reached) are absent so the chart leaves a gap
// instead of interpolating.
//
// In gap-to-leader mode each cell is the driver's cumulative race time
// minus the smallest cumulative time among the selected drivers at that
// lap; the leader's own cell is exactly 0. A driver's cumulative time
// becomes unusable at the first missing lap time and stays unusable for
// all later laps, since the true total cannot be known without the missing
// value. Laps where no selected driver has a usable cumulative time are
// dropped from the output.
func BuildLapSeries(drivers []DriverLaps, selected []string, mode LapSeriesMode) []LapRow {
	picked := selectDrivers(drivers, selected)
	if len(picked) == 0 {
		return []LapRow{}
	}

	maxLap := 0
	lookup := make([]map[int]Lap, len(picked))
	for i, d := range picked {
		// lap numbers may have holes, look up by value
		lookup[i] = make(map[int]Lap, len(d.Laps))
		for _, lap := range d.Laps {
			lookup[i][lap.Number] = lap
			if lap.Number > maxLap {
				maxLap = lap.Number
			}
		}
	}

	if mode == LapSeriesGapToLeader {
		return buildGapRows(picked, lookup, maxLap)
	}
	return buildDirectRows(picked, lookup, maxLap)
}

func buildDirectRows(picked []DriverLaps, lookup []map[int]Lap, maxLap int) []LapRow {
	rows := make([]LapRow, 0, maxLap)
	for lapNo := 1; lapNo <= maxLap; lapNo++ {
		row := LapRow{
			Lap:     lapNo,
			Values:  make(map[string]float64, len(picked)),
			Records: make(map[string]Lap, len(picked)),
		}
		for i, d := range picked {
			lap, ok := lookup[i][lapNo]
			if !ok || lap.Time == nil {
				continue
			}
			row.Values[d.Key] = *lap.Time
			row.Records[d.Key] = lap
		}
		rows = append(rows, row)
	}
	return rows
}

func buildGapRows(picked []DriverLaps, lookup []map[int]Lap, maxLap int) []LapRow {
	type cumState struct {
		total float64
		valid bool
	}
	state := make([]cumState, len(picked))
	for i := range state {
		state[i].valid = true
	}

	rows := make([]LapRow, 0, maxLap)
	for lapNo := 1; lapNo <= maxLap; lapNo++ {
		cells := make([]*float64, len(picked))
		leader := 0.0
		haveLeader := false
		for i := range picked {
			if !state[i].valid {
				continue
			}
			lap, ok := lookup[i][lapNo]
			if !ok || lap.Time == nil {
				// cumulative broken from here on
				state[i].valid = false
				continue
			}
			state[i].total += *lap.Time
			total := state[i].total
			cells[i] = &total
			if !haveLeader || total < leader {
				leader = total
				haveLeader = true
			}
		}
		if !haveLeader {
			continue
		}

		row := LapRow{
			Lap:     lapNo,
			Values:  make(map[string]float64, len(picked)),
			Records: make(map[string]Lap, len(picked)),
		}
		for i, d := range picked {
			if cells[i] == nil {
				continue
			}
			row.Values[d.Key] = *cells[i] - leader
			row.Records[d.Key] = lookup[i][lapNo]
		}
		rows = append(rows, row)
	}
	return rows
}

func selectDrivers(drivers []DriverLaps, selected []string) []DriverLaps {
	if len(selected) == 0 {
		return nil
	}
	wanted := make(map[string]struct{}, len(selected))
	for _, key := range selected {
		wanted[key] = struct{}{}
	}
	picked := make([]DriverLaps, 0, len(selected))
	for _, d := range drivers {
		if _, ok := wanted[d.Key]; ok {
			picked = append(picked, d)
		}
	}
	return picked
}
