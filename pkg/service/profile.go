package service

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"

	"github.com/lapwise/lapwise-go/pkg/model"
	"github.com/lapwise/lapwise-go/pkg/repository/driver"
	"github.com/lapwise/lapwise-go/pkg/repository/result"
	"github.com/lapwise/lapwise-go/pkg/repository/standings"
	"github.com/lapwise/lapwise-go/pkg/repository/team"
)

type ProfileService struct {
	pool *pgxpool.Pool
}

func NewProfileService(pool *pgxpool.Pool) *ProfileService {
	return &ProfileService{pool: pool}
}

// DriverProfile aggregates the career of one driver over all ingested
// seasons. Wins, podiums and race counts only consider main races,
// points include sprint races. A championship is a season won on total
// points.
func (p *ProfileService) DriverProfile(ctx context.Context, code string) (
	*model.DriverProfileResponse, error,
) {
	d, err := driver.LoadByCode(ctx, p.pool, code)
	if err != nil {
		return nil, err
	}
	races, err := result.LoadDriverRaceHistory(ctx, p.pool, d.ID)
	if err != nil {
		return nil, err
	}
	if len(races) == 0 {
		return nil, ErrNoData
	}

	resp := &model.DriverProfileResponse{
		DriverCode:   d.DriverCode,
		FullName:     d.FullName,
		DriverNumber: d.DriverNumber,
		CountryCode:  d.CountryCode,
		HeadshotURL:  d.DefaultHeadshotURL,
	}
	years := make(map[int]struct{})
	for _, r := range races {
		years[r.Year] = struct{}{}
		if r.Points != nil {
			resp.TotalPoints += *r.Points
		}
		if r.HeadshotURL != nil && resp.HeadshotURL == nil {
			resp.HeadshotURL = r.HeadshotURL
		}
		if r.SessionType != model.SessionRace {
			continue
		}
		resp.TotalRaces++
		if r.Position != nil {
			if *r.Position == 1 {
				resp.TotalWins++
			}
			if *r.Position <= 3 {
				resp.TotalPodiums++
			}
			if resp.BestFinish == nil || *r.Position < *resp.BestFinish {
				pos := *r.Position
				resp.BestFinish = &pos
			}
		}
	}
	resp.TotalSeasons = len(years)

	// rows are ordered most recent first
	latest := races[0]
	resp.LatestSeason = &latest.Year
	resp.CurrentTeam = &latest.TeamName
	resp.CurrentTeamColor = latest.TeamColor

	for year := range years {
		champion, err := p.driverChampion(ctx, year)
		if err != nil {
			return nil, err
		}
		if champion == code {
			resp.TotalChampionships++
		}
	}
	return resp, nil
}

func (p *ProfileService) DriverSeasonHistory(ctx context.Context, code string) (
	*model.DriverSeasonHistoryResponse, error,
) {
	d, err := driver.LoadByCode(ctx, p.pool, code)
	if err != nil {
		return nil, err
	}
	races, err := result.LoadDriverRaceHistory(ctx, p.pool, d.ID)
	if err != nil {
		return nil, err
	}
	if len(races) == 0 {
		return nil, ErrNoData
	}

	resp := &model.DriverSeasonHistoryResponse{
		DriverCode: d.DriverCode,
		FullName:   d.FullName,
		Seasons:    make([]model.SeasonHistory, 0),
	}
	index := make(map[int]int)
	for _, r := range races {
		i, ok := index[r.Year]
		if !ok {
			// first row per year is the most recent team
			resp.Seasons = append(resp.Seasons, model.SeasonHistory{
				Year:      r.Year,
				TeamName:  r.TeamName,
				TeamColor: r.TeamColor,
			})
			i = len(resp.Seasons) - 1
			index[r.Year] = i
		}
		season := &resp.Seasons[i]
		if r.Points != nil {
			season.TotalPoints += *r.Points
		}
		if r.SessionType != model.SessionRace {
			continue
		}
		season.Races++
		if r.Position != nil {
			if *r.Position == 1 {
				season.Wins++
			}
			if *r.Position <= 3 {
				season.Podiums++
			}
		}
	}
	for i := range resp.Seasons {
		season := &resp.Seasons[i]
		rows, err := standings.LoadDriverStandings(ctx, p.pool, season.Year)
		if err != nil {
			return nil, err
		}
		if _, pos, ok := lo.FindIndexOf(rows,
			func(r standings.DriverStandingRow) bool { return r.DriverCode == code },
		); ok {
			season.Position = pos + 1
		}
	}
	sort.Slice(resp.Seasons, func(i, j int) bool {
		return resp.Seasons[i].Year > resp.Seasons[j].Year
	})
	return resp, nil
}

func (p *ProfileService) DriverRaceHistory(ctx context.Context, code string) (
	*model.DriverRaceHistoryResponse, error,
) {
	d, err := driver.LoadByCode(ctx, p.pool, code)
	if err != nil {
		return nil, err
	}
	races, err := result.LoadDriverRaceHistory(ctx, p.pool, d.ID)
	if err != nil {
		return nil, err
	}
	if len(races) == 0 {
		return nil, ErrNoData
	}

	resp := &model.DriverRaceHistoryResponse{
		DriverCode: d.DriverCode,
		FullName:   d.FullName,
		Races:      make([]model.RaceHistory, 0, len(races)),
	}
	for _, r := range races {
		resp.Races = append(resp.Races, model.RaceHistory{
			Year:         r.Year,
			Round:        r.Round,
			EventName:    r.EventName,
			SessionType:  r.SessionType,
			TeamName:     r.TeamName,
			TeamColor:    r.TeamColor,
			Position:     r.Position,
			GridPosition: r.GridPosition,
			Points:       r.Points,
			Status:       r.Status,
			FastestLap:   r.FastestLap,
		})
	}
	return resp, nil
}

// ConstructorProfile aggregates a team's record over all ingested
// seasons. A win or podium is any driver of the team finishing there.
func (p *ProfileService) ConstructorProfile(ctx context.Context, name string) (
	*model.ConstructorProfileResponse, error,
) {
	t, err := team.LoadByName(ctx, p.pool, name)
	if err != nil {
		return nil, err
	}
	races, err := result.LoadTeamRaceHistory(ctx, p.pool, t.ID)
	if err != nil {
		return nil, err
	}
	if len(races) == 0 {
		return nil, ErrNoData
	}

	resp := &model.ConstructorProfileResponse{
		TeamName:  t.Name,
		TeamColor: t.TeamColor,
		Country:   t.Country,
	}
	years := make(map[int]struct{})
	events := make(map[[2]int]struct{})
	for _, r := range races {
		years[r.Year] = struct{}{}
		if r.Points != nil {
			resp.TotalPoints += *r.Points
		}
		if r.SessionType != model.SessionRace {
			continue
		}
		events[[2]int{r.Year, r.Round}] = struct{}{}
		if r.Position != nil {
			if *r.Position == 1 {
				resp.TotalWins++
			}
			if *r.Position <= 3 {
				resp.TotalPodiums++
			}
		}
	}
	resp.TotalSeasons = len(years)
	resp.TotalRaces = len(events)
	resp.LatestSeason = &races[0].Year

	for year := range years {
		champion, err := p.constructorChampion(ctx, year)
		if err != nil {
			return nil, err
		}
		if champion == name {
			resp.TotalChampionships++
		}
	}
	return resp, nil
}

func (p *ProfileService) ConstructorSeasonHistory(ctx context.Context, name string) (
	*model.ConstructorSeasonHistoryResponse, error,
) {
	t, err := team.LoadByName(ctx, p.pool, name)
	if err != nil {
		return nil, err
	}
	races, err := result.LoadTeamRaceHistory(ctx, p.pool, t.ID)
	if err != nil {
		return nil, err
	}
	if len(races) == 0 {
		return nil, ErrNoData
	}

	resp := &model.ConstructorSeasonHistoryResponse{
		TeamName: t.Name,
		Seasons:  make([]model.SeasonHistory, 0),
	}
	index := make(map[int]int)
	events := make(map[[2]int]struct{})
	for _, r := range races {
		i, ok := index[r.Year]
		if !ok {
			resp.Seasons = append(resp.Seasons, model.SeasonHistory{
				Year:      r.Year,
				TeamName:  t.Name,
				TeamColor: t.TeamColor,
			})
			i = len(resp.Seasons) - 1
			index[r.Year] = i
		}
		season := &resp.Seasons[i]
		if r.Points != nil {
			season.TotalPoints += *r.Points
		}
		if r.SessionType != model.SessionRace {
			continue
		}
		if _, ok := events[[2]int{r.Year, r.Round}]; !ok {
			events[[2]int{r.Year, r.Round}] = struct{}{}
			season.Races++
		}
		if r.Position != nil {
			if *r.Position == 1 {
				season.Wins++
			}
			if *r.Position <= 3 {
				season.Podiums++
			}
		}
	}
	for i := range resp.Seasons {
		season := &resp.Seasons[i]
		rows, err := standings.LoadConstructorStandings(ctx, p.pool, season.Year)
		if err != nil {
			return nil, err
		}
		if _, pos, ok := lo.FindIndexOf(rows,
			func(r standings.ConstructorStandingRow) bool { return r.TeamName == name },
		); ok {
			season.Position = pos + 1
		}
	}
	sort.Slice(resp.Seasons, func(i, j int) bool {
		return resp.Seasons[i].Year > resp.Seasons[j].Year
	})
	return resp, nil
}

func (p *ProfileService) ConstructorRaceHistory(ctx context.Context, name string) (
	*model.ConstructorRaceHistoryResponse, error,
) {
	t, err := team.LoadByName(ctx, p.pool, name)
	if err != nil {
		return nil, err
	}
	races, err := result.LoadTeamRaceHistory(ctx, p.pool, t.ID)
	if err != nil {
		return nil, err
	}
	if len(races) == 0 {
		return nil, ErrNoData
	}

	resp := &model.ConstructorRaceHistoryResponse{
		TeamName: t.Name,
		Races:    make([]model.ConstructorRaceHistory, 0, len(races)),
	}
	for _, r := range races {
		resp.Races = append(resp.Races, model.ConstructorRaceHistory{
			Year:        r.Year,
			Round:       r.Round,
			EventName:   r.EventName,
			SessionType: r.SessionType,
			DriverCode:  r.DriverCode,
			FullName:    r.FullName,
			Position:    r.Position,
			Points:      r.Points,
			Status:      r.Status,
		})
	}
	return resp, nil
}

func (p *ProfileService) driverChampion(ctx context.Context, year int) (string, error) {
	rows, err := standings.LoadDriverStandings(ctx, p.pool, year)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}
	return rows[0].DriverCode, nil
}

func (p *ProfileService) constructorChampion(ctx context.Context, year int) (string, error) {
	rows, err := standings.LoadConstructorStandings(ctx, p.pool, year)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}
	return rows[0].TeamName, nil
}
