// Package store persists run history for the artifact build pipeline.
package store

import (
	"context"

	"github.com/grit-analytics/opportunity-map/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus `json:"status,omitempty"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for run history.
type Store interface {
	CreateRun(ctx context.Context, profilePath, shapefilePath string) (*model.Run, error)
	CompleteRun(ctx context.Context, runID, artifactPath string, areaCount, droppedRows int) error
	FailRun(ctx context.Context, runID string, cause error) error
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	Migrate(ctx context.Context) error
	Close() error
}
