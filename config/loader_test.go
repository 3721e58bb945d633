package config

// These tests verify that we can properly configure the export codec
// with YAML input.
import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// a valid export config entry
const VALID_EXPORT string = `
export:
  schemaLocation: https://schema.datacite.org/meta/kernel-4/metadata.xsd
`

// a valid identifier scheme registration
const VALID_SCHEMES string = `
identifierSchemes:
  Scopus: https://www.scopus.com
`

// tests that a full config parses with all fields populated
func TestParseValidConfig(t *testing.T) {
	cfg, err := parseExportConfig([]byte(VALID_EXPORT + VALID_SCHEMES))
	assert.Nil(t, err, "Valid config triggered an error.")
	assert.Equal(t, "https://schema.datacite.org/meta/kernel-4/metadata.xsd", cfg.Export.SchemaLocation)
	assert.Equal(t, "https://www.scopus.com", cfg.IdentifierSchemes["Scopus"])
}

// tests the mapping of a loaded config onto codec options and settings
func TestConfigMapping(t *testing.T) {
	cfg, err := parseExportConfig([]byte(VALID_EXPORT + VALID_SCHEMES))
	assert.Nil(t, err)

	opts := cfg.ConverterOptions()
	assert.Equal(t, "https://www.scopus.com", opts.IdentifierSchemes["Scopus"])

	settings := cfg.FormatterSettings()
	assert.Equal(t,
		"http://datacite.org/schema/kernel-4 https://schema.datacite.org/meta/kernel-4/metadata.xsd",
		settings.SchemaLocation)

	// no schema location configured leaves the serializer default
	empty, err := parseExportConfig([]byte(""))
	assert.Nil(t, err)
	assert.Equal(t, "", empty.FormatterSettings().SchemaLocation)
}

// tests that an empty config is acceptable (everything has defaults)
func TestParseEmptyConfig(t *testing.T) {
	cfg, err := parseExportConfig([]byte(""))
	assert.Nil(t, err, "Empty config triggered an error.")
	assert.Equal(t, "", cfg.Export.SchemaLocation)
}

// tests that a malformed YAML document triggers an error
func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := parseExportConfig([]byte("export: [not: a: mapping"))
	assert.NotNil(t, err, "Malformed YAML didn't trigger an error.")
}

// tests that a non-URL schema location triggers an error
func TestParseRejectsBadSchemaLocation(t *testing.T) {
	yaml := "export:\n  schemaLocation: not-a-url\n"
	_, err := parseExportConfig([]byte(yaml))
	assert.NotNil(t, err, "Config with bad schemaLocation didn't trigger an error.")
}

// tests that a non-URL scheme registration triggers an error
func TestParseRejectsBadSchemeURI(t *testing.T) {
	yaml := "identifierSchemes:\n  Scopus: not a url\n"
	_, err := parseExportConfig([]byte(yaml))
	assert.NotNil(t, err, "Config with bad scheme URI didn't trigger an error.")
}

// tests loading from a file, including the missing-file error path
func TestLoadExportConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.yml")
	err := os.WriteFile(path, []byte(VALID_EXPORT+VALID_SCHEMES), 0o600)
	assert.Nil(t, err)

	cfg, err := LoadExportConfig(path)
	assert.Nil(t, err, "Loading a valid config file triggered an error.")
	assert.Equal(t, "https://www.scopus.com", cfg.IdentifierSchemes["Scopus"])

	_, err = LoadExportConfig(filepath.Join(dir, "missing.yml"))
	assert.NotNil(t, err, "Missing config file didn't trigger an error.")
}
