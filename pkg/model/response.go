package model

import "time"

// Response payloads for the REST API. Field names are the wire contract
// with the frontend, keep them stable.

type DriverStanding struct {
	Position    int     `json:"position"`
	DriverCode  string  `json:"driver_code"`
	FullName    string  `json:"full_name"`
	TeamName    string  `json:"team_name"`
	TeamColor   *string `json:"team_color"`
	TotalPoints float64 `json:"total_points"`
	HeadshotURL *string `json:"headshot_url"`
}

type ConstructorStanding struct {
	Position    int     `json:"position"`
	TeamName    string  `json:"team_name"`
	TeamColor   *string `json:"team_color"`
	TotalPoints float64 `json:"total_points"`
}

type StandingsResponse struct {
	Year         int                   `json:"year"`
	Drivers      []DriverStanding      `json:"drivers"`
	Constructors []ConstructorStanding `json:"constructors"`
}

type RoundPodiumDriver struct {
	FullName    string  `json:"full_name"`
	DriverCode  string  `json:"driver_code"`
	TeamName    string  `json:"team_name"`
	TeamColor   *string `json:"team_color"`
	HeadshotURL *string `json:"headshot_url"`
	FastestLap  bool    `json:"fastest_lap"`
}

type RoundSummary struct {
	Round       int                 `json:"round"`
	EventName   string              `json:"event_name"`
	Date        time.Time           `json:"date"`
	CircuitName string              `json:"circuit_name"`
	SessionType string              `json:"session_type"`
	Podium      []RoundPodiumDriver `json:"podium"`
}

type SeasonRoundsResponse struct {
	Year   int            `json:"year"`
	Rounds []RoundSummary `json:"rounds"`
}

// ProgressionPoint is the cumulative championship points of one entity up
// to and including one round. Sprint rounds carry a "-sprint" suffix on the
// round identifier ("2-sprint" runs before "2").
type ProgressionPoint struct {
	Round            string  `json:"round"`
	CumulativePoints float64 `json:"cumulative_points"`
	EventName        *string `json:"event_name"`
}

type DriverProgression struct {
	DriverCode    string             `json:"driver_code"`
	FullName      string             `json:"full_name"`
	TeamColor     *string            `json:"team_color"`
	FinalPosition int                `json:"final_position"`
	Progression   []ProgressionPoint `json:"progression"`
}

type ConstructorProgression struct {
	TeamName      string             `json:"team_name"`
	TeamColor     *string            `json:"team_color"`
	FinalPosition int                `json:"final_position"`
	Progression   []ProgressionPoint `json:"progression"`
}

type ProgressionResponse struct {
	Year         int                      `json:"year"`
	Type         string                   `json:"type"`
	Drivers      []DriverProgression      `json:"drivers,omitempty"`
	Constructors []ConstructorProgression `json:"constructors,omitempty"`
}

type LapData struct {
	LapNumber      int      `json:"lap_number"`
	LapTimeSeconds *float64 `json:"lap_time_seconds"`
	Compound       *string  `json:"compound"`
	TyreLife       *int     `json:"tyre_life"`
	TrackStatus    *string  `json:"track_status"`
}

type DriverLapTimes struct {
	DriverCode    string    `json:"driver_code"`
	FullName      string    `json:"full_name"`
	TeamColor     *string   `json:"team_color"`
	FinalPosition *int      `json:"final_position"`
	Laps          []LapData `json:"laps"`
}

type LapTimesResponse struct {
	Year      int              `json:"year"`
	Round     int              `json:"round"`
	EventName string           `json:"event_name"`
	Drivers   []DriverLapTimes `json:"drivers"`
}

type CircuitInfo struct {
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Country       string   `json:"country"`
	TrackLengthKm *float64 `json:"track_length_km"`
}

type SessionInfo struct {
	ID          int         `json:"id"`
	Year        int         `json:"year"`
	Round       int         `json:"round"`
	SessionType string      `json:"session_type"`
	EventName   string      `json:"event_name"`
	Date        time.Time   `json:"date"`
	Circuit     CircuitInfo `json:"circuit"`
}

type DriverInfo struct {
	DriverNumber *int   `json:"driver_number"`
	DriverCode   string `json:"driver_code"`
	FullName     string `json:"full_name"`
}

type TeamInfo struct {
	Name      string  `json:"name"`
	TeamColor *string `json:"team_color"`
}

type SessionResultDetail struct {
	Position      *int       `json:"position"`
	Status        string     `json:"status"`
	HeadshotURL   *string    `json:"headshot_url"`
	Driver        DriverInfo `json:"driver"`
	Team          TeamInfo   `json:"team"`
	GridPosition  *int       `json:"grid_position"`
	Points        *float64   `json:"points"`
	LapsCompleted *int       `json:"laps_completed"`
	TimeSeconds   *float64   `json:"time_seconds"`
	FastestLap    bool       `json:"fastest_lap"`
	Q1TimeSeconds *float64   `json:"q1_time_seconds"`
	Q2TimeSeconds *float64   `json:"q2_time_seconds"`
	Q3TimeSeconds *float64   `json:"q3_time_seconds"`
}

type SessionResultsResponse struct {
	Session SessionInfo           `json:"session"`
	Results []SessionResultDetail `json:"results"`
}

type DriverProfileResponse struct {
	DriverCode         string  `json:"driver_code"`
	FullName           string  `json:"full_name"`
	DriverNumber       *int    `json:"driver_number"`
	CountryCode        *string `json:"country_code"`
	HeadshotURL        *string `json:"headshot_url"`
	TotalSeasons       int     `json:"total_seasons"`
	TotalRaces         int     `json:"total_races"`
	TotalChampionships int     `json:"total_championships"`
	TotalWins          int     `json:"total_wins"`
	TotalPodiums       int     `json:"total_podiums"`
	TotalPoints        float64 `json:"total_points"`
	BestFinish         *int    `json:"best_finish"`
	CurrentTeam        *string `json:"current_team"`
	CurrentTeamColor   *string `json:"current_team_color"`
	LatestSeason       *int    `json:"latest_season"`
}

type SeasonHistory struct {
	Year        int     `json:"year"`
	TeamName    string  `json:"team_name"`
	TeamColor   *string `json:"team_color"`
	Position    int     `json:"position"`
	TotalPoints float64 `json:"total_points"`
	Wins        int     `json:"wins"`
	Podiums     int     `json:"podiums"`
	Races       int     `json:"races"`
}

type DriverSeasonHistoryResponse struct {
	DriverCode string          `json:"driver_code"`
	FullName   string          `json:"full_name"`
	Seasons    []SeasonHistory `json:"seasons"`
}

type RaceHistory struct {
	Year         int      `json:"year"`
	Round        int      `json:"round"`
	EventName    string   `json:"event_name"`
	SessionType  string   `json:"session_type"`
	TeamName     string   `json:"team_name"`
	TeamColor    *string  `json:"team_color"`
	Position     *int     `json:"position"`
	GridPosition *int     `json:"grid_position"`
	Points       *float64 `json:"points"`
	Status       string   `json:"status"`
	FastestLap   bool     `json:"fastest_lap"`
}

type DriverRaceHistoryResponse struct {
	DriverCode string        `json:"driver_code"`
	FullName   string        `json:"full_name"`
	Races      []RaceHistory `json:"races"`
}

type ConstructorProfileResponse struct {
	TeamName           string  `json:"team_name"`
	TeamColor          *string `json:"team_color"`
	Country            *string `json:"country"`
	TotalSeasons       int     `json:"total_seasons"`
	TotalRaces         int     `json:"total_races"`
	TotalChampionships int     `json:"total_championships"`
	TotalWins          int     `json:"total_wins"`
	TotalPodiums       int     `json:"total_podiums"`
	TotalPoints        float64 `json:"total_points"`
	LatestSeason       *int    `json:"latest_season"`
}

type ConstructorSeasonHistoryResponse struct {
	TeamName string          `json:"team_name"`
	Seasons  []SeasonHistory `json:"seasons"`
}

type ConstructorRaceHistory struct {
	Year        int      `json:"year"`
	Round       int      `json:"round"`
	EventName   string   `json:"event_name"`
	SessionType string   `json:"session_type"`
	DriverCode  string   `json:"driver_code"`
	FullName    string   `json:"full_name"`
	Position    *int     `json:"position"`
	Points      *float64 `json:"points"`
	Status      string   `json:"status"`
}

type ConstructorRaceHistoryResponse struct {
	TeamName string                   `json:"team_name"`
	Races    []ConstructorRaceHistory `json:"races"`
}
