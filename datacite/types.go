package datacite

// Resource is the top-level canonical Metadata Kernel document
type Resource struct {
	DOI                string              `json:"doi,omitempty"`
	Creators           []Party             `json:"creators"`
	Titles             []Title             `json:"titles"`
	Publisher          string              `json:"publisher,omitempty"`
	PublicationYear    int                 `json:"publicationYear,omitempty"`
	Types              ResourceType        `json:"types"`
	Subjects           []Subject           `json:"subjects,omitempty"`
	Contributors       []Party             `json:"contributors,omitempty"`
	Dates              []Date              `json:"dates,omitempty"`
	Language           string              `json:"language,omitempty"`
	RelatedIdentifiers []RelatedIdentifier `json:"relatedIdentifiers,omitempty"`
	Sizes              []string            `json:"sizes,omitempty"`
	Formats            []string            `json:"formats,omitempty"`
	Version            string              `json:"version,omitempty"`
	RightsList         []Rights            `json:"rightsList,omitempty"`
	Descriptions       []Description       `json:"descriptions,omitempty"`
	GeoLocations       []GeoLocation       `json:"geoLocations,omitempty"`
	FundingReferences  []FundingReference  `json:"fundingReferences,omitempty"`
}

// Name type values for Party
const (
	NameTypePersonal       = "Personal"
	NameTypeOrganizational = "Organizational"
)

// Party represents a creator or contributor entry.
// ContributorType is only set for contributors.
type Party struct {
	Name            string           `json:"name"`
	NameType        string           `json:"nameType,omitempty"`
	GivenName       string           `json:"givenName,omitempty"`
	FamilyName      string           `json:"familyName,omitempty"`
	NameIdentifiers []NameIdentifier `json:"nameIdentifiers,omitempty"`
	Affiliations    []Affiliation    `json:"affiliation,omitempty"`
	ContributorType string           `json:"contributorType,omitempty"`
}

// NameIdentifier is a persistent identifier for a person or organization
type NameIdentifier struct {
	NameIdentifier       string `json:"nameIdentifier"`
	NameIdentifierScheme string `json:"nameIdentifierScheme"`
	SchemeURI            string `json:"schemeUri,omitempty"`
}

// Affiliation is an organizational affiliation of a creator or contributor
type Affiliation struct {
	Name                        string `json:"name"`
	AffiliationIdentifier       string `json:"affiliationIdentifier,omitempty"`
	AffiliationIdentifierScheme string `json:"affiliationIdentifierScheme,omitempty"`
	SchemeURI                   string `json:"schemeUri,omitempty"`
}

// Title is a name of the resource
type Title struct {
	Title     string `json:"title"`
	TitleType string `json:"titleType,omitempty"`
	Lang      string `json:"lang,omitempty"`
}

// ResourceType describes the general category and free-text label of the resource
type ResourceType struct {
	ResourceTypeGeneral string `json:"resourceTypeGeneral,omitempty"`
	ResourceType        string `json:"resourceType,omitempty"`
}

// Subject is a keyword or classification code describing the resource
type Subject struct {
	Subject            string `json:"subject"`
	SubjectScheme      string `json:"subjectScheme,omitempty"`
	SchemeURI          string `json:"schemeUri,omitempty"`
	ValueURI           string `json:"valueUri,omitempty"`
	ClassificationCode string `json:"classificationCode,omitempty"`
}

// Date is a rendered lifecycle date. A closed range is rendered as
// "start/end"; an open-ended range as the single known bound.
type Date struct {
	Date     string `json:"date"`
	DateType string `json:"dateType"`
}

// RelatedIdentifier links the resource to another persistent identifier
type RelatedIdentifier struct {
	RelatedIdentifier     string `json:"relatedIdentifier"`
	RelatedIdentifierType string `json:"relatedIdentifierType"`
	RelationType          string `json:"relationType"`
	RelatedMetadataScheme string `json:"relatedMetadataScheme,omitempty"`
	SchemeURI             string `json:"schemeUri,omitempty"`
	SchemeType            string `json:"schemeType,omitempty"`
}

// Rights is a license or rights statement
type Rights struct {
	Rights                 string `json:"rights,omitempty"`
	RightsURI              string `json:"rightsUri,omitempty"`
	RightsIdentifier       string `json:"rightsIdentifier,omitempty"`
	RightsIdentifierScheme string `json:"rightsIdentifierScheme,omitempty"`
	SchemeURI              string `json:"schemeUri,omitempty"`
}

// Description is a textual description of the resource
type Description struct {
	Description     string `json:"description"`
	DescriptionType string `json:"descriptionType"`
	Lang            string `json:"lang,omitempty"`
}

// GeoLocation carries at most one spatial shape. A location with no
// shape set renders nothing.
type GeoLocation struct {
	Point   *GeoLocationPoint   `json:"geoLocationPoint,omitempty"`
	Box     *GeoLocationBox     `json:"geoLocationBox,omitempty"`
	Polygon *GeoLocationPolygon `json:"geoLocationPolygon,omitempty"`
}

// GeoLocationPoint is a single coordinate pair
type GeoLocationPoint struct {
	PointLongitude float64 `json:"pointLongitude"`
	PointLatitude  float64 `json:"pointLatitude"`
}

// GeoLocationBox is a bounding box with all four bounds present
type GeoLocationBox struct {
	WestBoundLongitude float64 `json:"westBoundLongitude"`
	EastBoundLongitude float64 `json:"eastBoundLongitude"`
	SouthBoundLatitude float64 `json:"southBoundLatitude"`
	NorthBoundLatitude float64 `json:"northBoundLatitude"`
}

// GeoLocationPolygon is a closed area of at least three points with an
// optional point known to lie inside the polygon
type GeoLocationPolygon struct {
	PolygonPoints  []GeoLocationPoint `json:"polygonPoints"`
	InPolygonPoint *GeoLocationPoint  `json:"inPolygonPoint,omitempty"`
}

// FundingReference names a funder and optionally an award
type FundingReference struct {
	FunderName           string `json:"funderName"`
	FunderIdentifier     string `json:"funderIdentifier,omitempty"`
	FunderIdentifierType string `json:"funderIdentifierType,omitempty"`
	SchemeURI            string `json:"schemeUri,omitempty"`
	AwardNumber          string `json:"awardNumber,omitempty"`
	AwardURI             string `json:"awardUri,omitempty"`
	AwardTitle           string `json:"awardTitle,omitempty"`
}
