package converter

import (
	"fmt"

	"github.com/McNamara84/ernie-sub017/datacite"
	"github.com/McNamara84/ernie-sub017/resource"
)

// personName formats a person's display name as "Family, Given".
// Either part may be absent; a person with neither gets the literal
// fallback "Unknown".
const fallbackPersonName = "Unknown"

func (c *Converter) personName(p resource.Person) string {
	switch {
	case p.FamilyName != "" && p.GivenName != "":
		return p.FamilyName + ", " + p.GivenName
	case p.FamilyName != "":
		return p.FamilyName
	case p.GivenName != "":
		return p.GivenName
	default:
		c.Warnings.Add(WarningFallbackName, p.NameIdentifier)
		return fallbackPersonName
	}
}

func (c *Converter) buildCreators(creators []resource.Creator) ([]datacite.Party, error) {
	out := make([]datacite.Party, 0, len(creators))
	for i, cr := range creators {
		party, err := c.buildParty(cr.Person, cr.Institution, cr.Affiliations)
		if err != nil {
			return nil, fmt.Errorf("creator %d: %w", i, err)
		}
		out = append(out, party)
	}
	return out, nil
}

func (c *Converter) buildContributors(contributors []resource.Contributor) ([]datacite.Party, error) {
	out := make([]datacite.Party, 0, len(contributors))
	for i, co := range contributors {
		// The contributor's own affiliation list, never the creator's
		party, err := c.buildParty(co.Person, co.Institution, co.Affiliations)
		if err != nil {
			return nil, fmt.Errorf("contributor %d: %w", i, err)
		}
		party.ContributorType = co.Type
		out = append(out, party)
	}
	return out, nil
}

// buildParty dispatches on the tagged union: exactly one of person or
// institution must be set. Anything else is a defect in the aggregate
// and aborts the conversion.
func (c *Converter) buildParty(p *resource.Person, inst *resource.Institution, affiliations []resource.Affiliation) (datacite.Party, error) {
	switch {
	case p != nil && inst == nil:
		return c.buildPersonParty(*p, affiliations), nil
	case inst != nil && p == nil:
		return c.buildInstitutionParty(*inst, affiliations), nil
	default:
		return datacite.Party{}, fmt.Errorf("exactly one of person or institution must be set")
	}
}

func (c *Converter) buildPersonParty(p resource.Person, affiliations []resource.Affiliation) datacite.Party {
	party := datacite.Party{
		Name:       c.personName(p),
		NameType:   datacite.NameTypePersonal,
		GivenName:  p.GivenName,
		FamilyName: p.FamilyName,
	}
	if p.NameIdentifier != "" {
		scheme := p.IdentifierScheme
		if scheme == "" {
			scheme = datacite.SchemeORCID
		}
		party.NameIdentifiers = []datacite.NameIdentifier{{
			NameIdentifier:       p.NameIdentifier,
			NameIdentifierScheme: scheme,
			SchemeURI:            c.schemeURI(scheme, p.NameIdentifier),
		}}
	}
	party.Affiliations = c.buildAffiliations(affiliations)
	return party
}

func (c *Converter) buildInstitutionParty(inst resource.Institution, affiliations []resource.Affiliation) datacite.Party {
	party := datacite.Party{
		Name:     inst.Name,
		NameType: datacite.NameTypeOrganizational,
	}
	if inst.NameIdentifier != "" {
		scheme := inst.IdentifierScheme
		if scheme == "" {
			scheme = datacite.SchemeROR
		}
		party.NameIdentifiers = []datacite.NameIdentifier{{
			NameIdentifier:       inst.NameIdentifier,
			NameIdentifierScheme: scheme,
			SchemeURI:            c.schemeURI(scheme, inst.NameIdentifier),
		}}
	}
	party.Affiliations = c.buildAffiliations(affiliations)
	return party
}

// buildAffiliations emits the name always; the identifier group only
// when an identifier is present, with the scheme defaulting to ROR.
func (c *Converter) buildAffiliations(affiliations []resource.Affiliation) []datacite.Affiliation {
	if len(affiliations) == 0 {
		return nil
	}
	out := make([]datacite.Affiliation, 0, len(affiliations))
	for _, a := range affiliations {
		entry := datacite.Affiliation{Name: a.Name}
		if a.Identifier != "" {
			scheme := a.IdentifierScheme
			if scheme == "" {
				scheme = datacite.SchemeROR
			}
			entry.AffiliationIdentifier = a.Identifier
			entry.AffiliationIdentifierScheme = scheme
			if a.SchemeURI != "" {
				entry.SchemeURI = a.SchemeURI
			} else {
				entry.SchemeURI = c.schemeURI(scheme, a.Identifier)
			}
		}
		out = append(out, entry)
	}
	return out
}
