package converter

import (
	"github.com/McNamara84/ernie-sub017/datacite"
	"github.com/McNamara84/ernie-sub017/resource"
)

// Converter builds the canonical Metadata Kernel tree for one resource
type Converter struct {
	Res      *resource.Resource
	Opts     Options
	Warnings *WarningAggregator
}

// NewConverter creates a new converter instance for one resource
func NewConverter(res *resource.Resource, opts Options) *Converter {
	return &Converter{Res: res, Opts: opts, Warnings: NewWarningAggregator()}
}

// Canonicalize converts a hydrated resource aggregate into the
// canonical kernel document. It is a convenience wrapper that also
// logs the consolidated warnings.
func Canonicalize(res *resource.Resource, opts Options) (*datacite.Resource, error) {
	c := NewConverter(res, opts)
	doc, err := c.Canonicalize()
	if err != nil {
		return nil, err
	}
	c.Warnings.LogAll(res.DOI)
	return doc, nil
}

// Canonicalize builds the canonical document. A precondition violation
// in the aggregate (creator tagged neither person nor institution)
// aborts the whole conversion; partial data follows the kernel's
// omission rules instead.
func (c *Converter) Canonicalize() (*datacite.Resource, error) {
	res := c.Res

	doc := &datacite.Resource{
		DOI:             res.DOI,
		Publisher:       res.Publisher,
		PublicationYear: res.PublicationYear,
		Language:        res.Language,
		Version:         res.Version,
		Types: datacite.ResourceType{
			ResourceTypeGeneral: res.ResourceType.General,
			ResourceType:        res.ResourceType.Label,
		},
		Sizes:   res.Sizes,
		Formats: res.Formats,
	}
	if res.PublicationYear == 0 {
		c.Warnings.Add(WarningYearMissing, res.DOI)
	}

	creators, err := c.buildCreators(res.Creators)
	if err != nil {
		return nil, err
	}
	doc.Creators = creators

	contributors, err := c.buildContributors(res.Contributors)
	if err != nil {
		return nil, err
	}
	doc.Contributors = contributors

	doc.Titles = buildTitles(res.Titles)
	doc.Subjects = buildSubjects(res.Subjects)
	doc.Dates = c.buildDates(res.Dates)
	doc.RelatedIdentifiers = buildRelatedIdentifiers(res.RelatedIdentifiers)
	doc.RightsList = buildRightsList(res.Rights)
	doc.Descriptions = buildDescriptions(res.Descriptions)
	doc.GeoLocations = c.buildGeoLocations(res.GeoLocations)
	doc.FundingReferences = c.buildFundingReferences(res.FundingReferences)

	return doc, nil
}

// schemeURI resolves an identifier scheme to its resolver URI. The
// built-in kernel table wins over configured extras; an unknown scheme
// yields an empty URI and a warning, not an error.
func (c *Converter) schemeURI(scheme, example string) string {
	if datacite.KnownScheme(scheme) {
		return datacite.SchemeURI(scheme)
	}
	if uri, ok := c.Opts.IdentifierSchemes[scheme]; ok {
		return uri
	}
	c.Warnings.Add(WarningUnknownScheme, example)
	return ""
}
