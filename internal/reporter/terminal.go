package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/models"
)

// DisplayResults prints the grouped usage tree for one searched dependency.
func DisplayResults(w io.Writer, label string, records []models.UsageRecord) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(w, "SEARCH RESULTS for %s\n", label)
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 60))

	if len(records) == 0 {
		fmt.Fprintln(w, "No projects found using this dependency.")
		return
	}

	namespaces := make(map[string]bool)
	for _, r := range records {
		namespaces[r.Namespace] = true
	}
	fmt.Fprintf(w, "Found %d usage(s) across %d namespace(s)\n\n", len(records), len(namespaces))

	for _, ns := range GroupUsages(records) {
		fmt.Fprintf(w, "Namespace: %s\n", ns.Namespace)
		for _, proj := range ns.Projects {
			fmt.Fprintf(w, "  └── Project: %s\n", proj.Key)
			for _, usage := range proj.Usages {
				fmt.Fprintf(w, "      ├── Scope: %s\n", usage.DependencyScope)
				if usage.ParentPackageVersionName != "" {
					fmt.Fprintf(w, "      └── Parent package version: %s\n", usage.ParentPackageVersionName)
				} else {
					fmt.Fprintln(w, "      └── (No parent package version info)")
				}
			}
		}
		fmt.Fprintln(w)
	}
}

// DisplaySummary renders the per-dependency run summary table.
func DisplaySummary(w io.Writer, set *models.SearchResultSet) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Dependency", "Usages", "Namespaces", "Projects"})

	for _, label := range set.Labels() {
		records := set.Records(label)
		namespaces := make(map[string]bool)
		projects := make(map[string]bool)
		for _, r := range records {
			namespaces[r.Namespace] = true
			projects[ProjectKey(r)] = true
		}
		t.AppendRow(table.Row{label, len(records), len(namespaces), len(projects)})
	}

	t.Render()
}
