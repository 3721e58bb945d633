package helpers

import (
	"github.com/McNamara84/ernie-sub017/resource"
)

// TestDOI is the registered identifier of the standard fixture
const TestDOI = "10.5880/TEST.001"

func ptr[T any](v T) *T { return &v }

// FullResource builds a fully hydrated aggregate exercising every
// collection the codec consumes: both party kinds, all date shapes,
// all geolocation shapes, funding with and without identifier groups.
func FullResource() *resource.Resource {
	polygon, err := resource.NewGeoLocationPolygon([]resource.Coordinate{
		{Longitude: 13.0, Latitude: 52.3},
		{Longitude: 13.8, Latitude: 52.3},
		{Longitude: 13.8, Latitude: 52.7},
		{Longitude: 13.0, Latitude: 52.7},
	}, &resource.Coordinate{Longitude: 13.4, Latitude: 52.5})
	if err != nil {
		panic("fixture polygon is invalid: " + err.Error())
	}

	return &resource.Resource{
		DOI:             TestDOI,
		PublicationYear: 2021,
		Version:         "1.0",
		ResourceType:    resource.ResourceType{General: "Dataset", Label: "Seismic waveform data"},
		Language:        "en",
		Publisher:       "GFZ Data Services",
		Titles: []resource.Title{
			{Value: "Seismic monitoring of the Brandenburg basin"},
			{Value: "Seismisches Monitoring", Type: "TranslatedTitle", Lang: "de"},
		},
		Creators: []resource.Creator{
			resource.NewPersonCreator(resource.Person{
				FamilyName:     "Doe",
				GivenName:      "Jane",
				NameIdentifier: "0000-0002-1825-0097",
			}, []resource.Affiliation{
				{Name: "GFZ German Research Centre for Geosciences", Identifier: "04z8jg394"},
			}, 0),
			resource.NewInstitutionCreator(resource.Institution{
				Name: "GFZ German Research Centre for Geosciences",
			}, nil, 1),
		},
		Contributors: []resource.Contributor{
			resource.NewPersonContributor(resource.Person{
				FamilyName: "Roe",
				GivenName:  "Richard",
			}, "DataCollector", []resource.Affiliation{
				{Name: "University of Potsdam"},
			}, 0),
			resource.NewInstitutionContributor(resource.Institution{
				Name:           "Deutsches GeoForschungsZentrum",
				NameIdentifier: "04z8jg394",
			}, "HostingInstitution", nil, 1),
		},
		Dates: []resource.ResourceDate{
			resource.NewResourceDate("Issued", ptr("2021-05-04"), nil, nil),
			resource.NewResourceDate("Collected", nil, ptr("2019-01-01"), ptr("2020-12-31")),
			resource.NewResourceDate("Updated", nil, ptr("2022-01-01"), nil),
		},
		Descriptions: []resource.Description{
			{Type: "Abstract", Text: "Continuous waveform recordings from 12 stations.", Lang: "en"},
		},
		GeoLocations: []resource.GeoLocation{
			resource.NewGeoLocationPoint(13.4, 52.5),
			resource.NewGeoLocationBox(13.0, 13.8, 52.3, 52.7),
			polygon,
		},
		RelatedIdentifiers: []resource.RelatedIdentifier{
			{Identifier: "10.5880/TEST.000", IdentifierType: "DOI", RelationType: "IsNewVersionOf", Position: 0},
		},
		FundingReferences: []resource.FundingReference{
			{FunderName: "Deutsche Forschungsgemeinschaft", AwardNumber: "SFB 1294"},
			{
				FunderName:           "European Commission",
				FunderIdentifier:     "10.13039/501100000780",
				FunderIdentifierType: "Crossref Funder ID",
				AwardTitle:           "Horizon 2020",
			},
		},
		Rights: []resource.Rights{
			{Identifier: "CC-BY-4.0", Name: "Creative Commons Attribution 4.0 International", URI: "https://creativecommons.org/licenses/by/4.0/"},
		},
		Subjects: []resource.Subject{
			{Value: "seismology"},
			{Value: "EARTH SCIENCE", Scheme: "NASA/GCMD Earth Science Keywords"},
		},
		Sizes:   []string{"2.4 GB"},
		Formats: []string{"application/x-miniseed"},
	}
}

// PersonCreatorResource builds the minimal single-creator aggregate
// used by the registration scenario tests
func PersonCreatorResource() *resource.Resource {
	return &resource.Resource{
		DOI:             TestDOI,
		PublicationYear: 2021,
		Publisher:       "GFZ Data Services",
		Titles:          []resource.Title{{Value: "Test Dataset"}},
		Creators: []resource.Creator{
			resource.NewPersonCreator(resource.Person{
				FamilyName:     "Doe",
				GivenName:      "Jane",
				NameIdentifier: "0000-0002-1825-0097",
			}, nil, 0),
		},
	}
}
