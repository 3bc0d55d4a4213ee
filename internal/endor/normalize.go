package endor

import (
	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/models"
)

// projectReferenceKind is the reference key under which the server attaches
// the joined Project records.
const projectReferenceKind = "Project"

// NormalizeObjects flattens raw joined objects into usage records. It is a
// total function: missing fields degrade to empty-string defaults, and
// every object yields exactly one record; nothing is filtered here.
func NormalizeObjects(requestNamespace string, objects []RawObject) []models.UsageRecord {
	records := make([]models.UsageRecord, 0, len(objects))
	for _, obj := range objects {
		records = append(records, normalizeObject(requestNamespace, obj))
	}
	return records
}

// normalizeObject maps one raw object to a UsageRecord. The namespace comes
// from the object's tenant metadata when present, otherwise from the
// namespace the query was issued under. The project name comes from the
// first joined Project record; the join may technically list several, but
// only the first is surfaced.
func normalizeObject(requestNamespace string, obj RawObject) models.UsageRecord {
	namespace := obj.TenantMeta.Namespace
	if namespace == "" {
		namespace = requestNamespace
	}

	projectName := ""
	if ref, ok := obj.Meta.References[projectReferenceKind]; ok && len(ref.List.Objects) > 0 {
		projectName = ref.List.Objects[0].Meta.Name
	}

	return models.UsageRecord{
		Namespace:                namespace,
		ProjectUUID:              obj.Spec.ImporterData.ProjectUUID,
		ProjectName:              projectName,
		DependencyName:           obj.Spec.DependencyData.PackageName,
		DependencyVersion:        obj.Spec.DependencyData.ResolvedVersion,
		DependencyScope:          obj.Spec.DependencyData.Scope,
		ParentPackageVersionName: obj.Spec.ImporterData.PackageVersionName,
	}
}
