package api

import (
	"github.com/IoTIVP/data-veil/models"
)

// veilRequest is the POST /api/veil/{sensor} body.
type veilRequest struct {
	Channels map[string][]float64 `json:"channels"`
	Strength *float64             `json:"strength,omitempty"`
	Profile  string               `json:"profile,omitempty"`
	Seed     *int64               `json:"seed,omitempty"`
}

// veilResponse carries the corrupted channels plus the audit row.
type veilResponse struct {
	Sensor   string               `json:"sensor"`
	Channels map[string][]float64 `json:"channels"`
	Run      models.VeilRun       `json:"run"`
}

// fusionRequest is the POST /api/fusion body.
type fusionRequest struct {
	Streams  map[string][]float64 `json:"streams"`
	Strength *float64             `json:"strength,omitempty"`
	Profile  string               `json:"profile,omitempty"`
	Seed     *int64               `json:"seed,omitempty"`
}

// fusionResponse carries the jointly corrupted streams plus the audit row.
type fusionResponse struct {
	Streams map[string][]float64 `json:"streams"`
	Run     models.VeilRun       `json:"run"`
}

// sensorsResponse lists the registered veil names.
type sensorsResponse struct {
	Sensors []string `json:"sensors"`
}

// profilesResponse lists profile names with their per-sensor strengths.
type profilesResponse struct {
	Profiles []profileEntry `json:"profiles"`
}

type profileEntry struct {
	Name      string             `json:"name"`
	Strengths map[string]float64 `json:"strengths"`
}

// runsResponse lists recent audit rows, newest first.
type runsResponse struct {
	Runs []models.VeilRun `json:"runs"`
}

// errorResponse is the uniform error body. Missing is set only for schema
// errors that name absent channels.
type errorResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing,omitempty"`
}
