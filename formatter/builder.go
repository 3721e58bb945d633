package formatter

import "github.com/McNamara84/ernie-sub017/datacite"

// Settings controls serializer output that is fixed per deployment
// rather than per document.
type Settings struct {
	// SchemaLocation is the value of the xsi:schemaLocation attribute
	// on the XML root element. Empty selects the kernel default.
	SchemaLocation string
}

// Builder serializes canonical kernel documents to XML and JSON
type Builder struct {
	schemaLocation string
}

// NewBuilder creates a new builder for serializing kernel documents
func NewBuilder(settings Settings) *Builder {
	loc := settings.SchemaLocation
	if loc == "" {
		loc = datacite.DefaultSchemaLocation
	}
	return &Builder{schemaLocation: loc}
}
