package endor

// Response shapes for the QUERY API. Every field is optional on the wire;
// absent fields decode to zero values, which is exactly the default the
// normalizer wants.

// queryResponseEnvelope is the slice of the response the client consumes:
// spec.query_response.list.objects and the next-page cursor.
type queryResponseEnvelope struct {
	Spec struct {
		QueryResponse struct {
			List struct {
				Objects  []RawObject `json:"objects"`
				Response struct {
					NextPageToken string `json:"next_page_token"`
				} `json:"response"`
			} `json:"list"`
		} `json:"query_response"`
	} `json:"spec"`
}

// RawObject is one joined DependencyMetadata record as returned by the
// server, with the resolved Project attached under meta.references.
type RawObject struct {
	Meta struct {
		Name       string                   `json:"name"`
		References map[string]ReferenceList `json:"references"`
	} `json:"meta"`
	TenantMeta struct {
		Namespace string `json:"namespace"`
	} `json:"tenant_meta"`
	Spec struct {
		DependencyData struct {
			PackageName     string `json:"package_name"`
			ResolvedVersion string `json:"resolved_version"`
			Scope           string `json:"scope"`
		} `json:"dependency_data"`
		ImporterData struct {
			ProjectUUID        string `json:"project_uuid"`
			PackageVersionName string `json:"package_version_name"`
		} `json:"importer_data"`
	} `json:"spec"`
}

// ReferenceList holds the joined objects for one reference kind.
type ReferenceList struct {
	List struct {
		Objects []ReferencedObject `json:"objects"`
	} `json:"list"`
}

// ReferencedObject is a joined record reduced to the masked fields.
type ReferencedObject struct {
	UUID string `json:"uuid"`
	Meta struct {
		Name string `json:"name"`
	} `json:"meta"`
}
