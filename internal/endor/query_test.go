package endor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/models"
)

func TestBuildUsageQuery(t *testing.T) {
	ident := models.DependencyIdentifier{Ecosystem: "npm", Name: "lodash", Version: "4.17.21"}
	query := BuildUsageQuery(ident)

	spec := query.Spec.QuerySpec
	assert.Equal(t, "DependencyMetadata", spec.Kind)
	assert.Equal(t,
		"context.type==CONTEXT_TYPE_MAIN and "+
			"spec.dependency_data.package_name==npm://lodash and "+
			"spec.dependency_data.resolved_version==4.17.21",
		spec.ListParameters.Filter)
	assert.Equal(t, "meta.name,spec.dependency_data,spec.importer_data", spec.ListParameters.Mask)
	assert.True(t, spec.ListParameters.Traverse)
	assert.Empty(t, spec.ListParameters.PageToken)

	require.Len(t, spec.References, 1)
	ref := spec.References[0]
	assert.Equal(t, "spec.importer_data.project_uuid", ref.ConnectFrom)
	assert.Equal(t, "uuid", ref.ConnectTo)
	assert.Equal(t, "Project", ref.QuerySpec.Kind)
	assert.Equal(t, "uuid,meta.name", ref.QuerySpec.ListParameters.Mask)
}

func TestBuildUsageQuery_Idempotent(t *testing.T) {
	ident := models.DependencyIdentifier{Ecosystem: "pypi", Name: "requests", Version: "2.31.0"}

	first, err := json.Marshal(BuildUsageQuery(ident))
	require.NoError(t, err)
	second, err := json.Marshal(BuildUsageQuery(ident))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSetPageToken_OnlyTokenChanges(t *testing.T) {
	ident := models.DependencyIdentifier{Ecosystem: "npm", Name: "react", Version: "18.2.0"}

	plain := BuildUsageQuery(ident)
	tokened := BuildUsageQuery(ident)
	tokened.SetPageToken("cursor-123")

	plainJSON, err := json.Marshal(plain)
	require.NoError(t, err)
	tokenedJSON, err := json.Marshal(tokened)
	require.NoError(t, err)
	assert.NotEqual(t, plainJSON, tokenedJSON)

	// Clearing the cursor restores the first-page body byte for byte.
	tokened.SetPageToken("")
	cleared, err := json.Marshal(tokened)
	require.NoError(t, err)
	assert.Equal(t, plainJSON, cleared)
}
