package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleDataset() Dataset {
	return Dataset{
		Headers: []string{"Day", "Course Code", "Course Name", "Start", "End", "Location"},
		Rows: []map[string]string{
			{"Day": "Monday", "Course Code": "CS 15-122", "Course Name": "Principles of Imperative Computation", "Start": "09:00", "End": "10:20", "Location": "GHC 4401"},
			{"Day": "Tuesday", "Course Code": "MATH 21-127", "Course Name": "Concepts of Mathematics", "Start": "11:30", "End": "12:50", "Location": "DH 2210"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	payload, err := NewCSVExporter().Render(scheduleDataset(), "ignored")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Day,Course Code,Course Name,Start,End,Location", lines[0])
	assert.Contains(t, lines[1], "CS 15-122")
	assert.Contains(t, lines[2], "DH 2210")
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{}, "")
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	payload, err := NewPDFExporter().Render(scheduleDataset(), "Weekly Schedule")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "")
	assert.Error(t, err)
}

func TestClipKeepsShortValues(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	long := strings.Repeat("x", 60)
	clipped := clip(long, 48)
	assert.Len(t, clipped, 48)
	assert.True(t, strings.HasSuffix(clipped, "..."))
}
