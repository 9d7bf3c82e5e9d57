package artifact

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	p, err := BuildPayload("Community Opportunity Index", testResult())
	require.NoError(t, err)

	html, err := Render(p)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "<title>Community Opportunity Index</title>")
	assert.Contains(t, out, "FeatureCollection")
	assert.Contains(t, out, "toggleScoreFilter")
	assert.Contains(t, out, "toggleDistrictFilter")
	assert.Contains(t, out, "updateDistrictLabels")
	// Record data is inlined, including the multi-jurisdiction marker.
	assert.Contains(t, out, "B*")
	assert.Contains(t, out, "POTOMAC")
	// Thresholds ship with the percentile keys the client reads.
	assert.Contains(t, out, "p33")
	assert.Contains(t, out, "p67")
}

func TestWriteHTML(t *testing.T) {
	p, err := BuildPayload("t", testResult())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "map.html")
	require.NoError(t, WriteHTML(path, p))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))
}
