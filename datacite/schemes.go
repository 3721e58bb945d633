package datacite

// Kernel namespace and schema constants
const (
	Namespace             = "http://datacite.org/schema/kernel-4"
	XSINamespace          = "http://www.w3.org/2001/XMLSchema-instance"
	DefaultSchemaLocation = "http://datacite.org/schema/kernel-4 http://schema.datacite.org/meta/kernel-4/metadata.xsd"
)

// Identifier scheme names
const (
	SchemeORCID = "ORCID"
	SchemeROR   = "ROR"
	SchemeISNI  = "ISNI"
	SchemeGRID  = "GRID"
)

// schemeURIs maps known identifier schemes to their resolver URIs.
// An unknown scheme resolves to an empty URI; that is not an error.
var schemeURIs = map[string]string{
	SchemeORCID: "https://orcid.org",
	SchemeROR:   "https://ror.org",
	SchemeISNI:  "https://isni.org",
	SchemeGRID:  "https://www.grid.ac",
}

// SchemeURI returns the resolver URI for an identifier scheme, or ""
// when the scheme is not in the built-in table.
func SchemeURI(scheme string) string {
	return schemeURIs[scheme]
}

// KnownScheme reports whether the scheme is in the built-in table.
func KnownScheme(scheme string) bool {
	_, ok := schemeURIs[scheme]
	return ok
}
