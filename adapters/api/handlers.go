package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/IoTIVP/data-veil/app"
	"github.com/IoTIVP/data-veil/domain/core"
	"github.com/IoTIVP/data-veil/domain/sensor"
)

// handleHealth reports liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVeil corrupts one sensor log
func (s *Server) handleVeil(w http.ResponseWriter, r *http.Request) {
	var req veilRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	name := chi.URLParam(r, "sensor")
	result, err := s.service.Veil(r.Context(), app.VeilRequest{
		Sensor:   name,
		Channels: sensor.Channels(req.Channels),
		Strength: req.Strength,
		Profile:  req.Profile,
		Seed:     req.Seed,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, veilResponse{
		Sensor:   result.Run.Sensor,
		Channels: result.Channels,
		Run:      result.Run,
	})
}

// handleFusion corrupts aligned streams jointly
func (s *Server) handleFusion(w http.ResponseWriter, r *http.Request) {
	var req fusionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	result, err := s.service.FuseStreams(r.Context(), app.FusionRequest{
		Streams:  req.Streams,
		Strength: req.Strength,
		Profile:  req.Profile,
		Seed:     req.Seed,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, fusionResponse{
		Streams: result.Streams,
		Run:     result.Run,
	})
}

// handleSensors lists the registered veil names
func (s *Server) handleSensors(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, sensorsResponse{Sensors: s.service.Sensors()})
}

// handleProfiles lists profiles with their resolved per-sensor strengths
func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	sensors := s.service.Sensors()
	names := s.service.Profiles()

	entries := make([]profileEntry, 0, len(names))
	for _, name := range names {
		strengths := make(map[string]float64, len(sensors))
		for _, sensorName := range sensors {
			strength, err := s.service.ProfileStrength(name, sensorName)
			if err != nil {
				s.logger.Warn("failed to resolve profile %q for %q: %v", name, sensorName, err)
				continue
			}
			strengths[sensorName] = strength
		}
		entries = append(entries, profileEntry{Name: name, Strengths: strengths})
	}

	s.respondJSON(w, http.StatusOK, profilesResponse{Profiles: entries})
}

// handleRuns lists recent audit rows
func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	runs, err := s.service.RecentRuns(r.Context(), limit)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, runsResponse{Runs: runs})
}

// respondJSON writes a JSON body with the given status.
func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response: %v", err)
	}
}

// respondError maps domain errors onto HTTP statuses: schema and parameter
// violations are the caller's fault, unknown names are 404, anything else is
// a server error.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	body := errorResponse{Error: err.Error()}

	var missing *core.MissingChannelsError
	if errors.As(err, &missing) {
		body.Missing = missing.Keys
	}

	switch {
	case core.IsSchemaError(err), errors.Is(err, core.ErrStrength):
		s.respondJSON(w, http.StatusBadRequest, body)
	case core.IsNotFoundError(err):
		s.respondJSON(w, http.StatusNotFound, body)
	default:
		s.logger.Error("veil request failed: %v", err)
		s.respondJSON(w, http.StatusInternalServerError, body)
	}
}
