// Package searcher orchestrates one run: it searches each dependency in
// turn, displays and accumulates the results, and exports them to
// timestamped JSON and CSV files.
package searcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/config"
	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/endor"
	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/models"
	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/reporter"
)

// outputBasename is the stem of the exported result files.
const outputBasename = "dependency_search_results"

// timestampLayout formats the export filename timestamp.
const timestampLayout = "20060102_150405"

// Searcher runs dependency-usage searches against one authenticated client.
type Searcher struct {
	cfg    *config.Config
	client *endor.Client
	logger *slog.Logger
	out    io.Writer
	runID  string
	now    func() time.Time
}

// New creates a Searcher. Display output goes to out.
func New(cfg *config.Config, client *endor.Client, logger *slog.Logger, out io.Writer) *Searcher {
	runID := uuid.NewString()
	return &Searcher{
		cfg:    cfg,
		client: client,
		logger: logger.With("run_id", runID),
		out:    out,
		runID:  runID,
		now:    time.Now,
	}
}

// Result is the outcome of one run.
type Result struct {
	Results       *models.SearchResultSet
	FailedEarly   int // searches that ended on a failed page, partial results kept
	Searched      int
	JSONFilename  string
	CSVFilename   string
	FailedExports []string // paths that could not be written
}

// Run searches each identifier fully, one after the other; pages within a
// search are sequential because each cursor depends on the prior response.
// A search that fails mid-pagination keeps the records already retrieved
// and the run moves on to the next identifier.
func (s *Searcher) Run(ctx context.Context, idents []models.DependencyIdentifier) *Result {
	set := models.NewSearchResultSet()
	failed := 0

	for _, ident := range idents {
		s.logger.Info("searching for dependency usage", "dependency", ident.Label())

		records, err := s.client.SearchUsage(ctx, s.cfg.Namespace, ident)
		if err != nil {
			// Partial results on failure are policy, not an accident.
			failed++
		}
		set.Add(ident.Label(), records)

		reporter.DisplayResults(s.out, ident.Label(), records)
	}

	return &Result{
		Results:     set,
		FailedEarly: failed,
		Searched:    len(idents),
	}
}

// Export writes the JSON and CSV result files for the run. Export failures
// are logged and reported but do not invalidate the in-memory results.
func (s *Searcher) Export(result *Result) error {
	timestamp := s.now().Format(timestampLayout)
	jsonPath := filepath.Join(s.cfg.OutputDir, fmt.Sprintf("%s_%s.json", outputBasename, timestamp))
	csvPath := filepath.Join(s.cfg.OutputDir, fmt.Sprintf("%s_%s.csv", outputBasename, timestamp))

	var firstErr error

	if err := reporter.WriteJSON(jsonPath, result.Results); err != nil {
		s.logger.Error("error saving JSON file", "path", jsonPath, "error", err)
		result.FailedExports = append(result.FailedExports, jsonPath)
		firstErr = err
	} else {
		result.JSONFilename = jsonPath
		s.logger.Info("results saved to JSON", "path", jsonPath)
	}

	rows := reporter.Flatten(result.Results)
	if len(rows) == 0 {
		s.logger.Info("no results to save to CSV")
		return firstErr
	}
	if err := reporter.WriteCSV(csvPath, rows); err != nil {
		s.logger.Error("error saving CSV file", "path", csvPath, "error", err)
		result.FailedExports = append(result.FailedExports, csvPath)
		if firstErr == nil {
			firstErr = err
		}
	} else {
		result.CSVFilename = csvPath
		s.logger.Info("results saved to CSV", "path", csvPath)
	}

	return firstErr
}
