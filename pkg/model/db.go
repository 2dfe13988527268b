package model

import "time"

// Session types as ingested. A race weekend (round) has a qualifying and a
// race, sprint weekends additionally have sprint_qualifying and sprint_race.
const (
	SessionRace             = "race"
	SessionSprintRace       = "sprint_race"
	SessionQualifying       = "qualifying"
	SessionSprintQualifying = "sprint_qualifying"
)

type Circuit struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Country       string   `json:"country"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	TrackLengthKm *float64 `json:"track_length_km"`
}

type Team struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	TeamColor *string `json:"team_color"`
	Country   *string `json:"country"`
}

type Driver struct {
	ID                 int     `json:"id"`
	FullName           string  `json:"full_name"`
	DriverCode         string  `json:"driver_code"`
	DriverNumber       *int    `json:"driver_number"`
	CountryCode        *string `json:"country_code"`
	DefaultHeadshotURL *string `json:"default_headshot_url"`
}

type Session struct {
	ID          int       `json:"id"`
	Year        int       `json:"year"`
	Round       int       `json:"round"`
	SessionType string    `json:"session_type"`
	EventName   string    `json:"event_name"`
	Date        time.Time `json:"date"`
	CircuitID   int       `json:"circuit_id"`
}

type SessionResult struct {
	ID            int      `json:"id"`
	SessionID     int      `json:"session_id"`
	DriverID      int      `json:"driver_id"`
	TeamID        int      `json:"team_id"`
	Position      *int     `json:"position"`
	Status        string   `json:"status"`
	HeadshotURL   *string  `json:"headshot_url"`
	GridPosition  *int     `json:"grid_position"`
	Points        *float64 `json:"points"`
	LapsCompleted *int     `json:"laps_completed"`
	TimeSeconds   *float64 `json:"time_seconds"`
	FastestLap    bool     `json:"fastest_lap"`
	Q1TimeSeconds *float64 `json:"q1_time_seconds"`
	Q2TimeSeconds *float64 `json:"q2_time_seconds"`
	Q3TimeSeconds *float64 `json:"q3_time_seconds"`
}

// Lap mirrors one row of the laps table. Timing fields are nil for laps
// where the source had no value (pit in/out laps, retirements).
type Lap struct {
	ID                        int      `json:"id"`
	SessionID                 int      `json:"session_id"`
	DriverID                  int      `json:"driver_id"`
	LapNumber                 int      `json:"lap_number"`
	LapTimeSeconds            *float64 `json:"lap_time_seconds"`
	Sector1TimeSeconds        *float64 `json:"sector1_time_seconds"`
	Sector2TimeSeconds        *float64 `json:"sector2_time_seconds"`
	Sector3TimeSeconds        *float64 `json:"sector3_time_seconds"`
	LapStartTimeSeconds       *float64 `json:"lap_start_time_seconds"`
	Sector1SessionTimeSeconds *float64 `json:"sector1_session_time_seconds"`
	Sector2SessionTimeSeconds *float64 `json:"sector2_session_time_seconds"`
	Sector3SessionTimeSeconds *float64 `json:"sector3_session_time_seconds"`
	PitInTimeSeconds          *float64 `json:"pit_in_time_seconds"`
	PitOutTimeSeconds         *float64 `json:"pit_out_time_seconds"`
	PitDurationSeconds        *float64 `json:"pit_duration_seconds"`
	Stint                     *int     `json:"stint"`
	SpeedI1                   *float64 `json:"speed_i1"`
	SpeedI2                   *float64 `json:"speed_i2"`
	SpeedFL                   *float64 `json:"speed_fl"`
	SpeedST                   *float64 `json:"speed_st"`
	Compound                  *string  `json:"compound"`
	TyreLife                  *int     `json:"tyre_life"`
	FreshTyre                 *bool    `json:"fresh_tyre"`
	Position                  *int     `json:"position"`
	TrackStatus               *string  `json:"track_status"`
	IsPersonalBest            *bool    `json:"is_personal_best"`
	IsAccurate                *bool    `json:"is_accurate"`
	Deleted                   *bool    `json:"deleted"`
	DeletedReason             *string  `json:"deleted_reason"`
}

type WeatherSample struct {
	ID            int      `json:"id"`
	SessionID     int      `json:"session_id"`
	TimeSeconds   float64  `json:"time_seconds"`
	AirTemp       *float64 `json:"air_temp"`
	TrackTemp     *float64 `json:"track_temp"`
	Humidity      *float64 `json:"humidity"`
	Pressure      *float64 `json:"pressure"`
	Rainfall      *bool    `json:"rainfall"`
	WindSpeed     *float64 `json:"wind_speed"`
	WindDirection *int     `json:"wind_direction"`
}

type RaceControlMessage struct {
	ID           int      `json:"id"`
	SessionID    int      `json:"session_id"`
	TimeSeconds  *float64 `json:"time_seconds"`
	Lap          *int     `json:"lap"`
	Category     *string  `json:"category"`
	Flag         *string  `json:"flag"`
	Scope        *string  `json:"scope"`
	RacingNumber *string  `json:"racing_number"`
	Message      string   `json:"message"`
}
