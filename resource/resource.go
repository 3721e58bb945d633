package resource

// Resource is the fully hydrated aggregate handed to the export codec.
// All collections are position-ordered as loaded from storage.
type Resource struct {
	DOI             string
	PublicationYear int
	Version         string
	ResourceType    ResourceType
	Language        string
	Publisher       string

	Titles             []Title
	Creators           []Creator
	Contributors       []Contributor
	Dates              []ResourceDate
	Descriptions       []Description
	GeoLocations       []GeoLocation
	RelatedIdentifiers []RelatedIdentifier
	FundingReferences  []FundingReference
	Rights             []Rights
	Subjects           []Subject
	Sizes              []string
	Formats            []string
}

// ResourceType is the general category plus a free-text label
type ResourceType struct {
	General string // e.g. "Dataset"
	Label   string
}

// Title is one name of the resource
type Title struct {
	Value string
	Type  string // empty for the main title
	Lang  string
}

// Description is a textual description of the resource
type Description struct {
	Type string // e.g. "Abstract", "Methods"
	Text string
	Lang string
}

// RelatedIdentifier links the resource to another persistent identifier
type RelatedIdentifier struct {
	Identifier     string
	IdentifierType string // e.g. "DOI", "URL"
	RelationType   string // e.g. "IsSupplementTo"
	MetadataScheme string
	SchemeURI      string
	SchemeType     string
	Position       int
}

// FundingReference names a funder and optionally an award
type FundingReference struct {
	FunderName           string
	FunderIdentifier     string
	FunderIdentifierType string // e.g. "Crossref Funder ID", "ROR"
	SchemeURI            string
	AwardNumber          string
	AwardURI             string
	AwardTitle           string
}

// Rights is a license reference in SPDX style
type Rights struct {
	Identifier string // e.g. "CC-BY-4.0"
	Name       string
	URI        string
	SchemeURI  string
}

// Subject is a keyword or classification entry
type Subject struct {
	Value              string
	Scheme             string
	SchemeURI          string
	ValueURI           string
	ClassificationCode string
}
