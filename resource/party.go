package resource

// Person is an individual creator or contributor
type Person struct {
	FamilyName       string
	GivenName        string
	NameIdentifier   string
	IdentifierScheme string // defaults to ORCID when an identifier is set
}

// Institution is an organizational creator or contributor
type Institution struct {
	Name             string
	NameIdentifier   string
	IdentifierScheme string // defaults to ROR when an identifier is set
}

// Affiliation is an organization a person or institution belongs to.
// An identifier implies a scheme; the scheme defaults to ROR.
type Affiliation struct {
	Name             string
	Identifier       string
	IdentifierScheme string
	SchemeURI        string
}

// Creator is a position-ordered authorship entry backed by exactly one
// of Person or Institution. Use the constructors; a creator with both
// or neither set is rejected at canonicalization.
type Creator struct {
	Person       *Person
	Institution  *Institution
	Affiliations []Affiliation
	Position     int
}

// Contributor is like Creator but additionally carries the contributor
// type (e.g. "DataCollector", "HostingInstitution"). Its affiliations
// are its own, not the creator's.
type Contributor struct {
	Person       *Person
	Institution  *Institution
	Type         string
	Affiliations []Affiliation
	Position     int
}

// NewPersonCreator builds a creator backed by a person
func NewPersonCreator(p Person, affiliations []Affiliation, position int) Creator {
	return Creator{Person: &p, Affiliations: affiliations, Position: position}
}

// NewInstitutionCreator builds a creator backed by an institution
func NewInstitutionCreator(i Institution, affiliations []Affiliation, position int) Creator {
	return Creator{Institution: &i, Affiliations: affiliations, Position: position}
}

// NewPersonContributor builds a contributor backed by a person
func NewPersonContributor(p Person, contributorType string, affiliations []Affiliation, position int) Contributor {
	return Contributor{Person: &p, Type: contributorType, Affiliations: affiliations, Position: position}
}

// NewInstitutionContributor builds a contributor backed by an institution
func NewInstitutionContributor(i Institution, contributorType string, affiliations []Affiliation, position int) Contributor {
	return Contributor{Institution: &i, Type: contributorType, Affiliations: affiliations, Position: position}
}
