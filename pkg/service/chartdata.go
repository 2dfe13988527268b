package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/lapwise/lapwise-go/pkg/chart"
	"github.com/lapwise/lapwise-go/pkg/model"
)

// ChartService turns the season payloads into ready-to-plot series. The
// heavy lifting lives in pkg/chart, this layer only maps DB shapes onto
// chart inputs.
type ChartService struct {
	seasons *SeasonService
}

func NewChartService(seasons *SeasonService) *ChartService {
	return &ChartService{seasons: seasons}
}

type ProgressionChartEntity struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Color         string `json:"color,omitempty"`
	FinalPosition int    `json:"final_position"`
}

type ProgressionChartResponse struct {
	Year     int                      `json:"year"`
	Type     string                   `json:"type"`
	Entities []ProgressionChartEntity `json:"entities"`
	Series   []chart.SeriesRow        `json:"series"`
}

// ProgressionChart builds the round-aligned cumulative points series for
// a selection of drivers or constructors. Drivers sharing a team color
// get teammate-darkened variants, constructor colors are left untouched.
func (c *ChartService) ProgressionChart(
	ctx context.Context,
	year int,
	mode string,
	selected []string,
) (*ProgressionChartResponse, error) {
	prog, err := c.seasons.PointsProgression(ctx, year, mode)
	if err != nil {
		return nil, err
	}

	var entities []chart.Entity
	if mode == "constructors" {
		entities = lo.Map(prog.Constructors,
			func(p model.ConstructorProgression, _ int) chart.Entity {
				return chart.Entity{
					Key:           p.TeamName,
					Name:          p.TeamName,
					Color:         deref(p.TeamColor),
					FinalPosition: p.FinalPosition,
					Points:        chartPoints(p.Progression),
				}
			})
	} else {
		entities = lo.Map(prog.Drivers,
			func(p model.DriverProgression, _ int) chart.Entity {
				return chart.Entity{
					Key:           p.DriverCode,
					Name:          p.FullName,
					Color:         deref(p.TeamColor),
					FinalPosition: p.FinalPosition,
					Points:        chartPoints(p.Progression),
				}
			})
	}
	if len(selected) == 0 {
		selected = lo.Map(entities, func(e chart.Entity, _ int) string { return e.Key })
	}
	if mode != "constructors" {
		colors := chart.AssignColors(entities, selected)
		for i := range entities {
			if color, ok := colors[entities[i].Key]; ok {
				entities[i].Color = color
			}
		}
	}

	resp := &ProgressionChartResponse{
		Year:   year,
		Type:   prog.Type,
		Series: chart.BuildProgressionSeries(entities, selected),
	}
	picked := lo.Filter(entities, func(e chart.Entity, _ int) bool {
		return lo.Contains(selected, e.Key)
	})
	resp.Entities = lo.Map(picked, func(e chart.Entity, _ int) ProgressionChartEntity {
		return ProgressionChartEntity{
			Key:           e.Key,
			Name:          e.Name,
			Color:         e.Color,
			FinalPosition: e.FinalPosition,
		}
	})
	return resp, nil
}

type LapChartDriver struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Color         string `json:"color,omitempty"`
	FinalPosition *int   `json:"final_position"`
}

type LapChartResponse struct {
	Year      int              `json:"year"`
	Round     int              `json:"round"`
	EventName string           `json:"event_name"`
	View      string           `json:"view"`
	Drivers   []LapChartDriver `json:"drivers"`
	Series    []chart.LapRow   `json:"series"`
	// tooltip labels per series row: "-" for missing laps, "M:SS.mmm"
	// for absolute times, "+SS.mmm" for gaps
	Labels []map[string]string `json:"labels"`
}

// LapChart builds per-lap series for a session, either raw lap times or
// gap to the race leader.
func (c *ChartService) LapChart(
	ctx context.Context,
	year, round int,
	sessionType string,
	selected []string,
	view string,
) (*LapChartResponse, error) {
	lapTimes, err := c.seasons.LapTimes(ctx, year, round, sessionType)
	if err != nil {
		return nil, err
	}

	drivers := lo.Map(lapTimes.Drivers,
		func(d model.DriverLapTimes, _ int) chart.DriverLaps {
			return chart.DriverLaps{
				Key:           d.DriverCode,
				Name:          d.FullName,
				Color:         deref(d.TeamColor),
				FinalPosition: d.FinalPosition,
				Laps: lo.Map(d.Laps, func(l model.LapData, _ int) chart.Lap {
					return chart.Lap{
						Number:      l.LapNumber,
						Time:        l.LapTimeSeconds,
						Compound:    l.Compound,
						TyreAge:     l.TyreLife,
						TrackStatus: l.TrackStatus,
					}
				}),
			}
		})
	if len(selected) == 0 {
		selected = lo.Map(drivers, func(d chart.DriverLaps, _ int) string { return d.Key })
	}

	mode := chart.LapSeriesDirect
	if view == "gap" {
		mode = chart.LapSeriesGapToLeader
	} else {
		view = "direct"
	}

	resp := &LapChartResponse{
		Year:      lapTimes.Year,
		Round:     lapTimes.Round,
		EventName: lapTimes.EventName,
		View:      view,
		Series:    chart.BuildLapSeries(drivers, selected, mode),
	}
	picked := lo.Filter(drivers, func(d chart.DriverLaps, _ int) bool {
		return lo.Contains(selected, d.Key)
	})
	resp.Drivers = lo.Map(picked, func(d chart.DriverLaps, _ int) LapChartDriver {
		return LapChartDriver{
			Key:           d.Key,
			Name:          d.Name,
			Color:         d.Color,
			FinalPosition: d.FinalPosition,
		}
	})
	resp.Labels = lapLabels(resp.Series, picked, mode)
	return resp, nil
}

func lapLabels(
	series []chart.LapRow,
	picked []chart.DriverLaps,
	mode chart.LapSeriesMode,
) []map[string]string {
	labels := make([]map[string]string, len(series))
	for i, row := range series {
		labels[i] = make(map[string]string, len(picked))
		for _, d := range picked {
			value, ok := row.Values[d.Key]
			if !ok {
				labels[i][d.Key] = chart.FormatLapTime(nil, false)
				continue
			}
			rec := row.Records[d.Key]
			if mode == chart.LapSeriesDirect || value == 0 {
				labels[i][d.Key] = chart.FormatLapTime(rec.Time, true)
			} else {
				labels[i][d.Key] = chart.FormatLapTime(&value, false)
			}
		}
	}
	return labels
}

func chartPoints(points []model.ProgressionPoint) []chart.Point {
	return lo.Map(points, func(p model.ProgressionPoint, _ int) chart.Point {
		return chart.Point{
			Round:     p.Round,
			Points:    p.CumulativePoints,
			EventName: deref(p.EventName),
		}
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
