package integration

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/McNamara84/ernie-sub017/converter"
	"github.com/McNamara84/ernie-sub017/formatter"
	"github.com/McNamara84/ernie-sub017/tests/helpers"
)

func exportJSON(t *testing.T) []byte {
	t.Helper()
	doc, err := converter.Canonicalize(helpers.FullResource(), converter.Options{})
	if err != nil {
		t.Fatalf("Canonicalize failed: %v", err)
	}
	out, err := formatter.NewBuilder(formatter.Settings{}).BuildJSON(doc)
	if err != nil {
		t.Fatalf("BuildJSON failed: %v", err)
	}
	return out
}

// Registration scenario: exact creator object shape for the JSON client
func TestExportJSON_RegistrationScenario(t *testing.T) {
	doc, err := converter.Canonicalize(helpers.PersonCreatorResource(), converter.Options{})
	if err != nil {
		t.Fatalf("Canonicalize failed: %v", err)
	}
	out, err := formatter.NewBuilder(formatter.Settings{}).BuildJSON(doc)
	if err != nil {
		t.Fatalf("BuildJSON failed: %v", err)
	}

	want := `"creators":[{"name":"Doe, Jane","nameType":"Personal","givenName":"Jane","familyName":"Doe","nameIdentifiers":[{"nameIdentifier":"0000-0002-1825-0097","nameIdentifierScheme":"ORCID","schemeUri":"https://orcid.org"}]}]`
	if !strings.Contains(string(out), want) {
		t.Errorf("creator shape mismatch:\ngot  %s\nwant substring %s", out, want)
	}
	if !strings.Contains(string(out), `"doi":"10.5880/TEST.001"`) {
		t.Errorf("doi missing from JSON output:\n%s", out)
	}
}

// Full pipeline: the JSON document carries every populated collection
// under its camelCase key
func TestExportJSON_FullResource(t *testing.T) {
	out := exportJSON(t)

	var parsed map[string]any
	if err := json.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	for _, key := range []string{
		"doi", "creators", "titles", "publisher", "publicationYear", "types",
		"subjects", "contributors", "dates", "language", "relatedIdentifiers",
		"sizes", "formats", "version", "rightsList", "descriptions",
		"geoLocations", "fundingReferences",
	} {
		if _, ok := parsed[key]; !ok {
			t.Errorf("key %q missing from JSON document", key)
		}
	}

	// closed range renders as one value, not separate bounds
	dates := parsed["dates"].([]any)
	foundRange := false
	for _, d := range dates {
		if d.(map[string]any)["date"] == "2019-01-01/2020-12-31" {
			foundRange = true
		}
	}
	if !foundRange {
		t.Errorf("closed date range not rendered as \"start/end\": %v", dates)
	}

	// coordinates must be numbers
	locations := parsed["geoLocations"].([]any)
	point := locations[0].(map[string]any)["geoLocationPoint"].(map[string]any)
	if _, ok := point["pointLongitude"].(float64); !ok {
		t.Errorf("pointLongitude must be a JSON number, got %T", point["pointLongitude"])
	}
}

// Idempotence across the whole pipeline
func TestExportJSON_Idempotence(t *testing.T) {
	if !bytes.Equal(exportJSON(t), exportJSON(t)) {
		t.Error("two exports of identical input must be byte-identical")
	}
}

// XML and JSON must disagree only in syntax, not in content
func TestExportJSON_MatchesXMLContent(t *testing.T) {
	doc, err := converter.Canonicalize(helpers.FullResource(), converter.Options{})
	if err != nil {
		t.Fatalf("Canonicalize failed: %v", err)
	}
	b := formatter.NewBuilder(formatter.Settings{})
	xmlOut := string(b.BuildXML(doc))
	jsonOut, err := b.BuildJSON(doc)
	if err != nil {
		t.Fatalf("BuildJSON failed: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(jsonOut, &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if parsed["doi"] != "10.5880/TEST.001" || !strings.Contains(xmlOut, ">10.5880/TEST.001</identifier>") {
		t.Error("identifier differs between the two syntaxes")
	}
	creators := parsed["creators"].([]any)
	first := creators[0].(map[string]any)
	if first["name"] != "Doe, Jane" || !strings.Contains(xmlOut, ">Doe, Jane</creatorName>") {
		t.Error("creator name differs between the two syntaxes")
	}
}
