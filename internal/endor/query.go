package endor

import (
	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/models"
)

// Query body for POST /namespaces/{ns}/queries. The shape mirrors the QUERY
// API's meta/spec envelope with a nested query_spec and reference blocks.

// QueryRequest is the full request body for one dependency search. Only the
// page token changes between pagination steps.
type QueryRequest struct {
	Meta QueryMeta `json:"meta"`
	Spec QueryBody `json:"spec"`
}

// QueryMeta names the query for server-side bookkeeping.
type QueryMeta struct {
	Name string `json:"name"`
}

// QueryBody wraps the query spec.
type QueryBody struct {
	QuerySpec QuerySpec `json:"query_spec"`
}

// QuerySpec selects a record kind and its list parameters, optionally
// joined to related kinds through references.
type QuerySpec struct {
	Kind           string         `json:"kind"`
	ListParameters ListParameters `json:"list_parameters"`
	References     []Reference    `json:"references,omitempty"`
}

// ListParameters carries the filter predicate, field mask, traversal flag,
// and the opaque pagination cursor.
type ListParameters struct {
	Filter    string `json:"filter,omitempty"`
	Mask      string `json:"mask,omitempty"`
	Traverse  bool   `json:"traverse,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

// Reference describes a server-side join from a field of the primary kind
// to a field of a related kind.
type Reference struct {
	ConnectFrom string    `json:"connect_from"`
	ConnectTo   string    `json:"connect_to"`
	QuerySpec   QuerySpec `json:"query_spec"`
}

// BuildUsageQuery constructs the query for one dependency identifier: all
// DependencyMetadata records in the main context whose package name and
// resolved version match exactly, joined to the importing Project for its
// name. The field mask is the minimal set normalization reads.
//
// The filter is built by plain concatenation with no escaping; identifiers
// containing filter metacharacters are the caller's responsibility.
func BuildUsageQuery(ident models.DependencyIdentifier) *QueryRequest {
	return &QueryRequest{
		Meta: QueryMeta{
			Name: "Dependencies with Project Info: " + ident.FullName(),
		},
		Spec: QueryBody{
			QuerySpec: QuerySpec{
				Kind: "DependencyMetadata",
				ListParameters: ListParameters{
					Filter: "context.type==CONTEXT_TYPE_MAIN and " +
						"spec.dependency_data.package_name==" + ident.FullName() + " and " +
						"spec.dependency_data.resolved_version==" + ident.Version,
					Mask:     "meta.name,spec.dependency_data,spec.importer_data",
					Traverse: true,
				},
				References: []Reference{
					{
						ConnectFrom: "spec.importer_data.project_uuid",
						ConnectTo:   "uuid",
						QuerySpec: QuerySpec{
							Kind: "Project",
							ListParameters: ListParameters{
								Mask: "uuid,meta.name",
							},
						},
					},
				},
			},
		},
	}
}

// SetPageToken attaches the cursor for the next pagination step. An empty
// token restores the first-page request shape.
func (q *QueryRequest) SetPageToken(token string) {
	q.Spec.QuerySpec.ListParameters.PageToken = token
}
