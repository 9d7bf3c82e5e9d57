package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/grit-analytics/opportunity-map/internal/model"
)

func TestFormatRunsList(t *testing.T) {
	created := time.Date(2026, 8, 1, 14, 30, 0, 0, time.UTC)
	runs := []model.Run{
		{
			ID:          "0a1b2c3d-4e5f-6789-abcd-ef0123456789",
			ProfilePath: "data/opportunity_profile.xlsx",
			Status:      model.RunStatusComplete,
			AreaCount:   188,
			DroppedRows: 3,
			CreatedAt:   created,
		},
		{
			ID:          "ffffffff-0000-1111-2222-333333333333",
			ProfilePath: "short.csv",
			Status:      model.RunStatusFailed,
			CreatedAt:   created,
		},
	}

	var buf bytes.Buffer
	formatRunsList(&buf, runs)

	out := buf.String()
	assert.Contains(t, out, "0a1b2c3d")
	assert.NotContains(t, out, "0a1b2c3d-4e5f")
	assert.Contains(t, out, "complete")
	assert.Contains(t, out, "188")
	assert.Contains(t, out, "short.csv")
	assert.Contains(t, out, "2026-08-01 14:30")
	// Long paths are truncated from the left so the file name survives.
	assert.Contains(t, out, "...")
}

func TestTruncateID(t *testing.T) {
	assert.Equal(t, "12345678", truncateID("123456789abc"))
	assert.Equal(t, "short", truncateID("short"))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("", "a", "b"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}
