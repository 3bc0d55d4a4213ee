// Package reporter groups usage records for display and flattens them for
// export.
package reporter

import (
	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/models"
)

// UnknownProjectLabel is the display placeholder for records whose joined
// project carried no name. Display only; the record is untouched.
const UnknownProjectLabel = "Unknown Project"

// SearchedDependencyColumn tags each exported row with the label of the
// dependency whose search produced it.
const SearchedDependencyColumn = "searched_dependency"

// ProjectGroup is the ordered usages of one project within a namespace.
type ProjectGroup struct {
	Key    string
	Usages []models.UsageRecord
}

// NamespaceGroup is the ordered projects of one namespace.
type NamespaceGroup struct {
	Namespace string
	Projects  []*ProjectGroup
}

// ProjectKey returns the display grouping key "projectName (projectUuid)",
// substituting the unknown-project placeholder for empty names.
func ProjectKey(r models.UsageRecord) string {
	name := r.ProjectName
	if name == "" {
		name = UnknownProjectLabel
	}
	return name + " (" + r.ProjectUUID + ")"
}

// GroupUsages groups records by namespace and then project key, preserving
// first-seen namespace order and first-seen project order within each
// namespace. No sorting: grouping is stable across however many pages the
// records arrived on.
func GroupUsages(records []models.UsageRecord) []*NamespaceGroup {
	var groups []*NamespaceGroup
	byNamespace := make(map[string]*NamespaceGroup)
	byProject := make(map[string]map[string]*ProjectGroup)

	for _, r := range records {
		ns, ok := byNamespace[r.Namespace]
		if !ok {
			ns = &NamespaceGroup{Namespace: r.Namespace}
			byNamespace[r.Namespace] = ns
			byProject[r.Namespace] = make(map[string]*ProjectGroup)
			groups = append(groups, ns)
		}

		key := ProjectKey(r)
		proj, ok := byProject[r.Namespace][key]
		if !ok {
			proj = &ProjectGroup{Key: key}
			byProject[r.Namespace][key] = proj
			ns.Projects = append(ns.Projects, proj)
		}
		proj.Usages = append(proj.Usages, r)
	}

	return groups
}

// Flatten produces one export row per record across all searched
// dependencies, each annotated with the searched-dependency label.
func Flatten(set *models.SearchResultSet) []map[string]string {
	var rows []map[string]string
	for _, label := range set.Labels() {
		for _, r := range set.Records(label) {
			rows = append(rows, map[string]string{
				"namespace":                   r.Namespace,
				"project_uuid":                r.ProjectUUID,
				"project_name":                r.ProjectName,
				"dependency_name":             r.DependencyName,
				"dependency_version":          r.DependencyVersion,
				"dependency_scope":            r.DependencyScope,
				"parent_package_version_name": r.ParentPackageVersionName,
				SearchedDependencyColumn:      label,
			})
		}
	}
	return rows
}
