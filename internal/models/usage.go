package models

import (
	"bytes"
	"encoding/json"
)

// UsageRecord is one flattened dependency-to-project usage edge. Fields
// default to the empty string when the source object omits them, except
// Namespace which defaults to the namespace the query was issued under.
// Records are immutable after construction; equality is structural over all
// seven fields. Two identical records are both kept, since they may
// represent distinct importer edges.
type UsageRecord struct {
	Namespace                string `json:"namespace"`
	ProjectUUID              string `json:"project_uuid"`
	ProjectName              string `json:"project_name"`
	DependencyName           string `json:"dependency_name"`
	DependencyVersion        string `json:"dependency_version"`
	DependencyScope          string `json:"dependency_scope"`
	ParentPackageVersionName string `json:"parent_package_version_name"`
}

// SearchResultSet maps each searched dependency's canonical label to the
// usage records found for it, preserving search order and, within a label,
// page-arrival order.
type SearchResultSet struct {
	labels  []string
	byLabel map[string][]UsageRecord
}

// NewSearchResultSet returns an empty result set.
func NewSearchResultSet() *SearchResultSet {
	return &SearchResultSet{byLabel: make(map[string][]UsageRecord)}
}

// Add records the results for a dependency label. A label searched with
// zero results is still recorded so it appears in exports.
func (s *SearchResultSet) Add(label string, records []UsageRecord) {
	if _, ok := s.byLabel[label]; !ok {
		s.labels = append(s.labels, label)
	}
	s.byLabel[label] = append(s.byLabel[label], records...)
}

// Labels returns the searched labels in insertion order.
func (s *SearchResultSet) Labels() []string {
	return s.labels
}

// Records returns the usage records for a label in arrival order.
func (s *SearchResultSet) Records(label string) []UsageRecord {
	return s.byLabel[label]
}

// TotalUsages returns the number of records across all labels.
func (s *SearchResultSet) TotalUsages() int {
	n := 0
	for _, records := range s.byLabel {
		n += len(records)
	}
	return n
}

// MarshalJSON encodes the set as a JSON object keyed by label, in insertion
// order rather than the map-key order encoding/json would impose.
func (s *SearchResultSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range s.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		records := s.byLabel[label]
		if records == nil {
			records = []UsageRecord{}
		}
		val, err := json.Marshal(records)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
