package formatter_test

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/McNamara84/ernie-sub017/datacite"
	"github.com/McNamara84/ernie-sub017/formatter"
)

// parsedResource is the subset of the kernel needed to verify the
// round-trip property
type parsedResource struct {
	XMLName    xml.Name `xml:"resource"`
	Identifier struct {
		Type  string `xml:"identifierType,attr"`
		Value string `xml:",chardata"`
	} `xml:"identifier"`
	Creators []struct {
		Name struct {
			NameType string `xml:"nameType,attr"`
			Value    string `xml:",chardata"`
		} `xml:"creatorName"`
		NameIdentifiers []struct {
			Scheme    string `xml:"nameIdentifierScheme,attr"`
			SchemeURI string `xml:"schemeURI,attr"`
			Value     string `xml:",chardata"`
		} `xml:"nameIdentifier"`
	} `xml:"creators>creator"`
}

func reparse(t *testing.T, out []byte) parsedResource {
	t.Helper()
	var p parsedResource
	if err := xml.Unmarshal(out, &p); err != nil {
		t.Fatalf("output is not well-formed XML: %v\n%s", err, out)
	}
	return p
}

// TestBuildXMLRoundTrip verifies the output reparses and the identifier
// element text equals the input DOI
func TestBuildXMLRoundTrip(t *testing.T) {
	doc := &datacite.Resource{
		DOI: "10.5880/TEST.001",
		Creators: []datacite.Party{{
			Name:       "Doe, Jane",
			NameType:   "Personal",
			GivenName:  "Jane",
			FamilyName: "Doe",
			NameIdentifiers: []datacite.NameIdentifier{{
				NameIdentifier:       "0000-0002-1825-0097",
				NameIdentifierScheme: "ORCID",
				SchemeURI:            "https://orcid.org",
			}},
		}},
		Titles:          []datacite.Title{{Title: "Test Dataset"}},
		Publisher:       "GFZ Data Services",
		PublicationYear: 2021,
		Types:           datacite.ResourceType{ResourceTypeGeneral: "Dataset"},
	}

	out := formatter.NewBuilder(formatter.Settings{}).BuildXML(doc)
	p := reparse(t, out)

	if p.Identifier.Value != "10.5880/TEST.001" || p.Identifier.Type != "DOI" {
		t.Errorf("identifier round-trip failed: %+v", p.Identifier)
	}
	if len(p.Creators) != 1 || p.Creators[0].Name.Value != "Doe, Jane" {
		t.Fatalf("creator round-trip failed: %+v", p.Creators)
	}
	if p.Creators[0].Name.NameType != "Personal" {
		t.Errorf("nameType must be an attribute of creatorName, got %q", p.Creators[0].Name.NameType)
	}
	id := p.Creators[0].NameIdentifiers[0]
	if id.Value != "0000-0002-1825-0097" || id.SchemeURI != "https://orcid.org" {
		t.Errorf("name identifier round-trip failed: %+v", id)
	}
}

// TestBuildXMLEscaping checks all five XML metacharacters survive a
// reparse unchanged
func TestBuildXMLEscaping(t *testing.T) {
	doc := &datacite.Resource{
		DOI: "10.5880/TEST.002",
		Creators: []datacite.Party{{
			Name:     "O'Brien & Sons <Ltd>",
			NameType: "Organizational",
		}},
		Titles: []datacite.Title{{Title: `He said "hello" <&> 'bye'`}},
	}

	out := formatter.NewBuilder(formatter.Settings{}).BuildXML(doc)

	if !bytes.Contains(out, []byte("O&apos;Brien &amp; Sons &lt;Ltd&gt;")) {
		t.Errorf("metacharacters not escaped:\n%s", out)
	}
	if bytes.Contains(out, []byte("<Ltd>")) {
		t.Error("raw angle brackets leaked into the output")
	}

	p := reparse(t, out)
	if p.Creators[0].Name.Value != "O'Brien & Sons <Ltd>" {
		t.Errorf("escaped name did not round-trip, got %q", p.Creators[0].Name.Value)
	}
}

// TestBuildXMLElementOrder verifies the schema-mandated sequence of the
// root's children
func TestBuildXMLElementOrder(t *testing.T) {
	doc := &datacite.Resource{
		DOI:             "10.5880/TEST.003",
		Creators:        []datacite.Party{{Name: "Doe, Jane", NameType: "Personal"}},
		Titles:          []datacite.Title{{Title: "T"}},
		Publisher:       "P",
		PublicationYear: 2021,
		Types:           datacite.ResourceType{ResourceTypeGeneral: "Dataset"},
		Subjects:        []datacite.Subject{{Subject: "geophysics"}},
		Contributors:    []datacite.Party{{Name: "Roe, R.", NameType: "Personal", ContributorType: "DataCollector"}},
		Dates:           []datacite.Date{{Date: "2021", DateType: "Issued"}},
		Language:        "en",
		RelatedIdentifiers: []datacite.RelatedIdentifier{
			{RelatedIdentifier: "10.1000/x", RelatedIdentifierType: "DOI", RelationType: "IsSupplementTo"},
		},
		Sizes:             []string{"1 MB"},
		Formats:           []string{"text/csv"},
		Version:           "1.0",
		RightsList:        []datacite.Rights{{Rights: "CC BY 4.0"}},
		Descriptions:      []datacite.Description{{Description: "d", DescriptionType: "Abstract"}},
		GeoLocations:      []datacite.GeoLocation{{Point: &datacite.GeoLocationPoint{PointLongitude: 1, PointLatitude: 2}}},
		FundingReferences: []datacite.FundingReference{{FunderName: "DFG"}},
	}

	out := string(formatter.NewBuilder(formatter.Settings{}).BuildXML(doc))

	order := []string{
		"<identifier", "<creators>", "<titles>", "<publisher>", "<publicationYear>",
		"<resourceType", "<subjects>", "<contributors>", "<dates>", "<language>",
		"<relatedIdentifiers>", "<sizes>", "<formats>", "<version>", "<rightsList>",
		"<descriptions>", "<geoLocations>", "<fundingReferences>",
	}
	last := -1
	for _, elem := range order {
		idx := strings.Index(out, elem)
		if idx < 0 {
			t.Fatalf("element %s missing from output", elem)
		}
		if idx < last {
			t.Errorf("element %s out of sequence", elem)
		}
		last = idx
	}

	if !strings.Contains(out, `contributorType="DataCollector"`) {
		t.Error("contributorType must be an attribute of the contributor element")
	}
	if !strings.Contains(out, `xmlns="http://datacite.org/schema/kernel-4"`) {
		t.Error("root element must carry the kernel namespace")
	}
}

// TestBuildXMLIdempotence verifies byte-identical output across two
// invocations
func TestBuildXMLIdempotence(t *testing.T) {
	doc := &datacite.Resource{
		DOI:      "10.5880/TEST.004",
		Creators: []datacite.Party{{Name: "Doe, Jane", NameType: "Personal"}},
	}
	b := formatter.NewBuilder(formatter.Settings{})
	if !bytes.Equal(b.BuildXML(doc), b.BuildXML(doc)) {
		t.Error("two invocations with identical input must be byte-identical")
	}
}

// TestBuildXMLGeoShapes verifies the box bounds and polygon points
// serialize as numeric element text
func TestBuildXMLGeoShapes(t *testing.T) {
	doc := &datacite.Resource{
		DOI: "10.5880/TEST.005",
		GeoLocations: []datacite.GeoLocation{
			{Box: &datacite.GeoLocationBox{WestBoundLongitude: -10.5, EastBoundLongitude: 10, SouthBoundLatitude: -5, NorthBoundLatitude: 5}},
			{Polygon: &datacite.GeoLocationPolygon{
				PolygonPoints: []datacite.GeoLocationPoint{
					{PointLongitude: 0, PointLatitude: 0},
					{PointLongitude: 1, PointLatitude: 0},
					{PointLongitude: 1, PointLatitude: 1},
				},
				InPolygonPoint: &datacite.GeoLocationPoint{PointLongitude: 0.5, PointLatitude: 0.25},
			}},
		},
	}

	out := string(formatter.NewBuilder(formatter.Settings{}).BuildXML(doc))
	for _, want := range []string{
		"<westBoundLongitude>-10.5</westBoundLongitude>",
		"<northBoundLatitude>5</northBoundLatitude>",
		"<polygonPoint><pointLongitude>1</pointLongitude><pointLatitude>0</pointLatitude></polygonPoint>",
		"<inPolygonPoint><pointLongitude>0.5</pointLongitude><pointLatitude>0.25</pointLatitude></inPolygonPoint>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in:\n%s", want, out)
		}
	}
	reparse(t, []byte(out))
}
