package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchResultSet_InsertionOrder(t *testing.T) {
	set := NewSearchResultSet()
	set.Add("npm://b@1", []UsageRecord{{Namespace: "ns1"}})
	set.Add("npm://a@1", nil)
	set.Add("npm://b@1", []UsageRecord{{Namespace: "ns2"}})

	assert.Equal(t, []string{"npm://b@1", "npm://a@1"}, set.Labels())
	assert.Len(t, set.Records("npm://b@1"), 2)
	assert.Equal(t, 2, set.TotalUsages())
}

func TestSearchResultSet_MarshalJSON(t *testing.T) {
	set := NewSearchResultSet()
	set.Add("npm://z@1", []UsageRecord{{Namespace: "ns", DependencyName: "npm://z"}})
	set.Add("npm://a@1", nil)

	data, err := json.Marshal(set)
	require.NoError(t, err)

	// Keys stay in insertion order, not sorted; zero-result labels encode
	// as an empty array.
	want := `{"npm://z@1":[{"namespace":"ns","project_uuid":"","project_name":"","dependency_name":"npm://z","dependency_version":"","dependency_scope":"","parent_package_version_name":""}],"npm://a@1":[]}`
	assert.JSONEq(t, want, string(data))
	assert.Equal(t, want, string(data))
}
