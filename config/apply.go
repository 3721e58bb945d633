package config

import (
	"github.com/McNamara84/ernie-sub017/converter"
	"github.com/McNamara84/ernie-sub017/datacite"
	"github.com/McNamara84/ernie-sub017/formatter"
)

// ConverterOptions maps the loaded configuration onto canonicalizer
// options
func (c ExportConfig) ConverterOptions() converter.Options {
	return converter.Options{IdentifierSchemes: c.IdentifierSchemes}
}

// FormatterSettings maps the loaded configuration onto serializer
// settings. The configured XSD URL is paired with the kernel namespace
// to form the xsi:schemaLocation value.
func (c ExportConfig) FormatterSettings() formatter.Settings {
	if c.Export.SchemaLocation == "" {
		return formatter.Settings{}
	}
	return formatter.Settings{
		SchemaLocation: datacite.Namespace + " " + c.Export.SchemaLocation,
	}
}
