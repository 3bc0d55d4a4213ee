package reporter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/models"
)

func TestWriteJSON(t *testing.T) {
	set := models.NewSearchResultSet()
	set.Add("npm://lodash@4.17.21", []models.UsageRecord{{Namespace: "acme", ProjectUUID: "p1"}})
	set.Add("npm://react@18.2.0", nil)

	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, WriteJSON(path, set))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string][]models.UsageRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded["npm://lodash@4.17.21"], 1)
	assert.Empty(t, decoded["npm://react@18.2.0"])
}

func TestWriteCSV(t *testing.T) {
	rows := []map[string]string{
		{"namespace": "acme", "project_name": "webapp, inc", "searched_dependency": "npm://lodash@4.17.21"},
	}

	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, WriteCSV(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	parsed, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	require.Len(t, parsed, 2)
	assert.Equal(t, []string{"namespace", "project_name", "searched_dependency"}, parsed[0])
	// Commas in values survive the round trip.
	assert.Equal(t, "webapp, inc", parsed[1][1])
}

func TestWriteCSV_NoRowsWritesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, WriteCSV(path, nil))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDisplayResults_GroupedTree(t *testing.T) {
	var buf bytes.Buffer
	DisplayResults(&buf, "npm://lodash@4.17.21", []models.UsageRecord{
		{Namespace: "acme", ProjectUUID: "p1", ProjectName: "webapp", DependencyScope: "DEPENDENCY_SCOPE_DIRECT", ParentPackageVersionName: "npm://webapp@1.0.0"},
		{Namespace: "acme", ProjectUUID: "p2"},
	})

	out := buf.String()
	assert.Contains(t, out, "SEARCH RESULTS for npm://lodash@4.17.21")
	assert.Contains(t, out, "Found 2 usage(s) across 1 namespace(s)")
	assert.Contains(t, out, "Namespace: acme")
	assert.Contains(t, out, "Project: webapp (p1)")
	assert.Contains(t, out, "Parent package version: npm://webapp@1.0.0")
	assert.Contains(t, out, "Project: Unknown Project (p2)")
	assert.Contains(t, out, "(No parent package version info)")
}

func TestDisplayResults_NoRecords(t *testing.T) {
	var buf bytes.Buffer
	DisplayResults(&buf, "npm://left-pad@1.3.0", nil)
	assert.Contains(t, buf.String(), "No projects found using this dependency.")
}

func TestDisplaySummary(t *testing.T) {
	set := models.NewSearchResultSet()
	set.Add("npm://lodash@4.17.21", []models.UsageRecord{
		{Namespace: "acme", ProjectUUID: "p1"},
		{Namespace: "acme.prod", ProjectUUID: "p1"},
	})

	var buf bytes.Buffer
	DisplaySummary(&buf, set)
	assert.Contains(t, buf.String(), "npm://lodash@4.17.21")
	assert.Contains(t, buf.String(), "2")
}
