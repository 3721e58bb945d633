package config

// ExportSettings contains serializer settings fixed per deployment
type ExportSettings struct {
	// SchemaLocation is the URL of the kernel XSD; it is paired with
	// the kernel namespace to form the xsi:schemaLocation attribute on
	// the XML root element
	SchemaLocation string `yaml:"schemaLocation" validate:"omitempty,url"`
}

// ExportConfig is the root configuration structure
type ExportConfig struct {
	Export ExportSettings `yaml:"export"`

	// IdentifierSchemes registers local identifier schemes and their
	// resolver URIs in addition to the built-in kernel table
	IdentifierSchemes map[string]string `yaml:"identifierSchemes" validate:"omitempty,dive,url"`
}
