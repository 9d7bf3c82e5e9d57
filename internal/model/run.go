package model

import "time"

// RunStatus represents the current state of a pipeline run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run records a single pipeline execution in the local run store.
type Run struct {
	ID            string    `json:"id"`
	ProfilePath   string    `json:"profile_path"`
	ShapefilePath string    `json:"shapefile_path"`
	ArtifactPath  string    `json:"artifact_path,omitempty"`
	AreaCount     int       `json:"area_count"`
	DroppedRows   int       `json:"dropped_rows"`
	Status        RunStatus `json:"status"`
	Error         string    `json:"error,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
