package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/models"
	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/searcher"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCollectIdentifiers_SkipsInvalidTokens(t *testing.T) {
	idents, err := collectIdentifiers(discardLogger(),
		"npm://lodash@4.17.21, not-a-specifier ,npm://react@18.2.0, npm://no-version", "")
	require.NoError(t, err)

	// Malformed tokens are skipped, not fatal; the valid ones survive in
	// order.
	assert.Equal(t, []models.DependencyIdentifier{
		{Ecosystem: "npm", Name: "lodash", Version: "4.17.21"},
		{Ecosystem: "npm", Name: "react", Version: "18.2.0"},
	}, idents)
}

func TestCollectIdentifiers_AllInvalid(t *testing.T) {
	_, err := collectIdentifiers(discardLogger(), "bogus,also-bogus", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNoValidDependencies)
}

func TestCollectIdentifiers_NoSources(t *testing.T) {
	_, err := collectIdentifiers(discardLogger(), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--dependencies or --manifest")
}

func TestCollectIdentifiers_ManifestDropsUnpinnedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte("requests==2.31.0\nboto3\n"), 0o644))

	idents, err := collectIdentifiers(discardLogger(), "", path)
	require.NoError(t, err)
	assert.Equal(t, []models.DependencyIdentifier{
		{Ecosystem: "pypi", Name: "requests", Version: "2.31.0"},
	}, idents)
}

func TestCollectIdentifiers_UnreadableManifestWithValidTokens(t *testing.T) {
	// A bad manifest is skipped like any other bad input; the specifier
	// list still carries the run.
	idents, err := collectIdentifiers(discardLogger(),
		"npm://lodash@4.17.21", filepath.Join(t.TempDir(), "missing", "go.mod"))
	require.NoError(t, err)
	assert.Len(t, idents, 1)
}

func TestCollectIdentifiers_ManifestOnlyUnpinned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte("boto3\nflask\n"), 0o644))

	_, err := collectIdentifiers(discardLogger(), "", path)
	assert.ErrorIs(t, err, models.ErrNoValidDependencies)
}

func TestPrintSummary_ReportsFailedExports(t *testing.T) {
	set := models.NewSearchResultSet()
	set.Add("npm://lodash@4.17.21", []models.UsageRecord{{Namespace: "acme", ProjectUUID: "p1"}})

	result := &searcher.Result{
		Results:       set,
		Searched:      1,
		JSONFilename:  "out.json",
		FailedExports: []string{"out.csv"},
	}

	var buf bytes.Buffer
	printSummary(&buf, result)

	out := buf.String()
	assert.Contains(t, out, "Results saved to: out.json")
	assert.Contains(t, out, "Export failed for: out.csv")
}
