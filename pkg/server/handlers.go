package server

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/lapwise/lapwise-go/pkg/model"
)

func intParam(r *http.Request, name string) (int, bool) {
	val, err := strconv.Atoi(chi.URLParam(r, name))
	return val, err == nil
}

// csvQuery splits a comma separated query parameter, dropping empty
// entries. A missing parameter yields nil (meaning "all").
func csvQuery(r *http.Request, name string) []string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ret := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			ret = append(ret, trimmed)
		}
	}
	return ret
}

func progressionMode(r *http.Request) (string, bool) {
	mode := r.URL.Query().Get("mode")
	switch mode {
	case "", "drivers":
		return "drivers", true
	case "constructors":
		return "constructors", true
	default:
		return "", false
	}
}

func (s *Server) handleSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := s.seasons.AvailableSeasons(r.Context())
	s.respond(w, map[string]any{"seasons": seasons}, err)
}

func (s *Server) handleSeasonRounds(w http.ResponseWriter, r *http.Request) {
	year, ok := intParam(r, "season")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid season")
		return
	}
	res, err := s.seasons.SeasonRounds(r.Context(), year)
	s.respond(w, res, err)
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	year, ok := intParam(r, "season")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid season")
		return
	}
	res, err := s.seasons.Standings(r.Context(), year)
	s.respond(w, res, err)
}

func (s *Server) handlePointsProgression(w http.ResponseWriter, r *http.Request) {
	year, ok := intParam(r, "season")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid season")
		return
	}
	mode, ok := progressionMode(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "mode must be drivers or constructors")
		return
	}
	res, err := s.seasons.PointsProgression(r.Context(), year, mode)
	s.respond(w, res, err)
}

func (s *Server) handleProgressionChart(w http.ResponseWriter, r *http.Request) {
	year, ok := intParam(r, "season")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid season")
		return
	}
	mode, ok := progressionMode(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "mode must be drivers or constructors")
		return
	}
	res, err := s.charts.ProgressionChart(
		r.Context(), year, mode, csvQuery(r, "selected"))
	s.respond(w, res, err)
}

func (s *Server) sessionKey(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, ok := intParam(r, "season")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid season")
		return 0, 0, false
	}
	round, ok := intParam(r, "round")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid round")
		return 0, 0, false
	}
	return year, round, true
}

func (s *Server) handleRaceResults(w http.ResponseWriter, r *http.Request) {
	year, round, ok := s.sessionKey(w, r)
	if !ok {
		return
	}
	res, err := s.seasons.SessionResults(r.Context(), year, round, model.SessionRace)
	s.respond(w, res, err)
}

func (s *Server) handleSprintResults(w http.ResponseWriter, r *http.Request) {
	year, round, ok := s.sessionKey(w, r)
	if !ok {
		return
	}
	res, err := s.seasons.SessionResults(
		r.Context(), year, round, model.SessionSprintRace)
	s.respond(w, res, err)
}

func (s *Server) handleRaceLapTimes(w http.ResponseWriter, r *http.Request) {
	year, round, ok := s.sessionKey(w, r)
	if !ok {
		return
	}
	res, err := s.seasons.LapTimes(r.Context(), year, round, model.SessionRace)
	s.respond(w, res, err)
}

func (s *Server) handleSprintLapTimes(w http.ResponseWriter, r *http.Request) {
	year, round, ok := s.sessionKey(w, r)
	if !ok {
		return
	}
	res, err := s.seasons.LapTimes(r.Context(), year, round, model.SessionSprintRace)
	s.respond(w, res, err)
}

func (s *Server) handleLapChart(w http.ResponseWriter, r *http.Request) {
	year, round, ok := s.sessionKey(w, r)
	if !ok {
		return
	}
	view := r.URL.Query().Get("view")
	switch view {
	case "", "direct", "gap":
	default:
		writeError(w, http.StatusBadRequest, "view must be direct or gap")
		return
	}
	res, err := s.charts.LapChart(
		r.Context(), year, round, model.SessionRace, csvQuery(r, "drivers"), view)
	s.respond(w, res, err)
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	year, round, ok := s.sessionKey(w, r)
	if !ok {
		return
	}
	samples, err := s.seasons.Weather(r.Context(), year, round, model.SessionRace)
	s.respond(w, map[string]any{"weather": samples}, err)
}

func (s *Server) handleRaceControl(w http.ResponseWriter, r *http.Request) {
	year, round, ok := s.sessionKey(w, r)
	if !ok {
		return
	}
	msgs, err := s.seasons.RaceControl(r.Context(), year, round, model.SessionRace)
	s.respond(w, map[string]any{"messages": msgs}, err)
}

func (s *Server) handleDriverProfile(w http.ResponseWriter, r *http.Request) {
	res, err := s.profiles.DriverProfile(r.Context(), chi.URLParam(r, "code"))
	s.respond(w, res, err)
}

func (s *Server) handleDriverSeasonHistory(w http.ResponseWriter, r *http.Request) {
	res, err := s.profiles.DriverSeasonHistory(r.Context(), chi.URLParam(r, "code"))
	s.respond(w, res, err)
}

func (s *Server) handleDriverRaceHistory(w http.ResponseWriter, r *http.Request) {
	res, err := s.profiles.DriverRaceHistory(r.Context(), chi.URLParam(r, "code"))
	s.respond(w, res, err)
}

func (s *Server) handleConstructorProfile(w http.ResponseWriter, r *http.Request) {
	res, err := s.profiles.ConstructorProfile(r.Context(), constructorName(r))
	s.respond(w, res, err)
}

func (s *Server) handleConstructorSeasonHistory(w http.ResponseWriter, r *http.Request) {
	res, err := s.profiles.ConstructorSeasonHistory(r.Context(), constructorName(r))
	s.respond(w, res, err)
}

func (s *Server) handleConstructorRaceHistory(w http.ResponseWriter, r *http.Request) {
	res, err := s.profiles.ConstructorRaceHistory(r.Context(), constructorName(r))
	s.respond(w, res, err)
}

// constructorName decodes the path segment, team names contain spaces.
func constructorName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
