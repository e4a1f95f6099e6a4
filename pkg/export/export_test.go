package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRenderOrdersColumnsByHeader(t *testing.T) {
	content, err := NewCSVExporter().Render(Dataset{
		Headers: []string{"Roll Number", "Student Name", "Percentage"},
		Rows: []map[string]string{
			{"Percentage": "80%", "Student Name": "Alice", "Roll Number": "21CS001"},
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Roll Number,Student Name,Percentage", strings.TrimSpace(lines[0]))
	assert.Equal(t, "21CS001,Alice,80%", strings.TrimSpace(lines[1]))
}

func TestCSVRenderMissingCellIsEmpty(t *testing.T) {
	content, err := NewCSVExporter().Render(Dataset{
		Headers: []string{"A", "B"},
		Rows:    []map[string]string{{"A": "1"}},
	})
	require.NoError(t, err)
	assert.Contains(t, string(content), "1,")
}

func TestCSVRenderRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	require.Error(t, err)
}

func TestPDFRenderProducesDocument(t *testing.T) {
	content, err := NewPDFExporter().Render(Dataset{
		Headers: []string{"Roll Number", "Student Name"},
		Rows:    []map[string]string{{"Roll Number": "21CS001", "Student Name": "Alice"}},
	}, "Attendance Report CS301")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "%PDF"))
}

func TestPDFRenderRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "")
	require.Error(t, err)
}
