package formatter

import (
	"strconv"
	"strings"

	"github.com/McNamara84/ernie-sub017/datacite"
)

// BuildXML serializes a kernel document to namespaced XML. Child
// elements of the root follow the schema-mandated sequence; every text
// and attribute value is escaped, so the output always parses as
// well-formed XML.
func (bld *Builder) BuildXML(doc *datacite.Resource) []byte {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>")
	b.WriteString("<resource xmlns=\"")
	b.WriteString(datacite.Namespace)
	b.WriteString("\" xmlns:xsi=\"")
	b.WriteString(datacite.XSINamespace)
	b.WriteString("\" xsi:schemaLocation=\"")
	b.WriteString(xmlEscape(bld.schemaLocation))
	b.WriteString("\">")

	// identifier
	if doc.DOI != "" {
		b.WriteString("<identifier identifierType=\"DOI\">")
		b.WriteString(xmlEscape(doc.DOI))
		b.WriteString("</identifier>")
	} else {
		b.WriteString("<identifier identifierType=\"DOI\"/>")
	}

	writePartiesXML(&b, "creators", "creator", "creatorName", doc.Creators)
	writeTitlesXML(&b, doc.Titles)
	if doc.Publisher != "" {
		writeElem(&b, "publisher", doc.Publisher)
	}
	if doc.PublicationYear != 0 {
		writeElem(&b, "publicationYear", strconv.Itoa(doc.PublicationYear))
	}
	writeResourceTypeXML(&b, doc.Types)
	writeSubjectsXML(&b, doc.Subjects)
	writePartiesXML(&b, "contributors", "contributor", "contributorName", doc.Contributors)
	writeDatesXML(&b, doc.Dates)
	if doc.Language != "" {
		writeElem(&b, "language", doc.Language)
	}
	writeRelatedIdentifiersXML(&b, doc.RelatedIdentifiers)
	writeStringListXML(&b, "sizes", "size", doc.Sizes)
	writeStringListXML(&b, "formats", "format", doc.Formats)
	if doc.Version != "" {
		writeElem(&b, "version", doc.Version)
	}
	writeRightsListXML(&b, doc.RightsList)
	writeDescriptionsXML(&b, doc.Descriptions)
	writeGeoLocationsXML(&b, doc.GeoLocations)
	writeFundingReferencesXML(&b, doc.FundingReferences)

	b.WriteString("</resource>")
	return []byte(b.String())
}

func writePartiesXML(b *strings.Builder, wrapper, entry, nameElem string, parties []datacite.Party) {
	if len(parties) == 0 {
		return
	}
	b.WriteString("<" + wrapper + ">")
	for _, p := range parties {
		b.WriteString("<")
		b.WriteString(entry)
		// contributorType is an attribute of the entry element
		writeAttr(b, "contributorType", p.ContributorType)
		b.WriteString(">")

		b.WriteString("<")
		b.WriteString(nameElem)
		writeAttr(b, "nameType", p.NameType)
		b.WriteString(">")
		b.WriteString(xmlEscape(p.Name))
		b.WriteString("</")
		b.WriteString(nameElem)
		b.WriteString(">")

		if p.GivenName != "" {
			writeElem(b, "givenName", p.GivenName)
		}
		if p.FamilyName != "" {
			writeElem(b, "familyName", p.FamilyName)
		}
		for _, id := range p.NameIdentifiers {
			b.WriteString("<nameIdentifier")
			writeAttr(b, "nameIdentifierScheme", id.NameIdentifierScheme)
			writeAttr(b, "schemeURI", id.SchemeURI)
			b.WriteString(">")
			b.WriteString(xmlEscape(id.NameIdentifier))
			b.WriteString("</nameIdentifier>")
		}
		for _, a := range p.Affiliations {
			b.WriteString("<affiliation")
			writeAttr(b, "affiliationIdentifier", a.AffiliationIdentifier)
			writeAttr(b, "affiliationIdentifierScheme", a.AffiliationIdentifierScheme)
			writeAttr(b, "schemeURI", a.SchemeURI)
			b.WriteString(">")
			b.WriteString(xmlEscape(a.Name))
			b.WriteString("</affiliation>")
		}

		b.WriteString("</" + entry + ">")
	}
	b.WriteString("</" + wrapper + ">")
}

func writeTitlesXML(b *strings.Builder, titles []datacite.Title) {
	if len(titles) == 0 {
		return
	}
	b.WriteString("<titles>")
	for _, t := range titles {
		b.WriteString("<title")
		writeAttr(b, "titleType", t.TitleType)
		writeAttr(b, "xml:lang", t.Lang)
		b.WriteString(">")
		b.WriteString(xmlEscape(t.Title))
		b.WriteString("</title>")
	}
	b.WriteString("</titles>")
}

func writeResourceTypeXML(b *strings.Builder, rt datacite.ResourceType) {
	if rt.ResourceTypeGeneral == "" && rt.ResourceType == "" {
		return
	}
	b.WriteString("<resourceType")
	writeAttr(b, "resourceTypeGeneral", rt.ResourceTypeGeneral)
	b.WriteString(">")
	b.WriteString(xmlEscape(rt.ResourceType))
	b.WriteString("</resourceType>")
}

func writeSubjectsXML(b *strings.Builder, subjects []datacite.Subject) {
	if len(subjects) == 0 {
		return
	}
	b.WriteString("<subjects>")
	for _, s := range subjects {
		b.WriteString("<subject")
		writeAttr(b, "subjectScheme", s.SubjectScheme)
		writeAttr(b, "schemeURI", s.SchemeURI)
		writeAttr(b, "valueURI", s.ValueURI)
		writeAttr(b, "classificationCode", s.ClassificationCode)
		b.WriteString(">")
		b.WriteString(xmlEscape(s.Subject))
		b.WriteString("</subject>")
	}
	b.WriteString("</subjects>")
}

func writeDatesXML(b *strings.Builder, dates []datacite.Date) {
	if len(dates) == 0 {
		return
	}
	b.WriteString("<dates>")
	for _, d := range dates {
		b.WriteString("<date")
		writeAttr(b, "dateType", d.DateType)
		b.WriteString(">")
		b.WriteString(xmlEscape(d.Date))
		b.WriteString("</date>")
	}
	b.WriteString("</dates>")
}

func writeRelatedIdentifiersXML(b *strings.Builder, related []datacite.RelatedIdentifier) {
	if len(related) == 0 {
		return
	}
	b.WriteString("<relatedIdentifiers>")
	for _, r := range related {
		b.WriteString("<relatedIdentifier")
		writeAttr(b, "relatedIdentifierType", r.RelatedIdentifierType)
		writeAttr(b, "relationType", r.RelationType)
		writeAttr(b, "relatedMetadataScheme", r.RelatedMetadataScheme)
		writeAttr(b, "schemeURI", r.SchemeURI)
		writeAttr(b, "schemeType", r.SchemeType)
		b.WriteString(">")
		b.WriteString(xmlEscape(r.RelatedIdentifier))
		b.WriteString("</relatedIdentifier>")
	}
	b.WriteString("</relatedIdentifiers>")
}

func writeStringListXML(b *strings.Builder, wrapper, entry string, values []string) {
	if len(values) == 0 {
		return
	}
	b.WriteString("<" + wrapper + ">")
	for _, v := range values {
		writeElem(b, entry, v)
	}
	b.WriteString("</" + wrapper + ">")
}

func writeRightsListXML(b *strings.Builder, rights []datacite.Rights) {
	if len(rights) == 0 {
		return
	}
	b.WriteString("<rightsList>")
	for _, r := range rights {
		b.WriteString("<rights")
		writeAttr(b, "rightsURI", r.RightsURI)
		writeAttr(b, "rightsIdentifier", r.RightsIdentifier)
		writeAttr(b, "rightsIdentifierScheme", r.RightsIdentifierScheme)
		writeAttr(b, "schemeURI", r.SchemeURI)
		b.WriteString(">")
		b.WriteString(xmlEscape(r.Rights))
		b.WriteString("</rights>")
	}
	b.WriteString("</rightsList>")
}

func writeDescriptionsXML(b *strings.Builder, descriptions []datacite.Description) {
	if len(descriptions) == 0 {
		return
	}
	b.WriteString("<descriptions>")
	for _, d := range descriptions {
		b.WriteString("<description")
		writeAttr(b, "descriptionType", d.DescriptionType)
		writeAttr(b, "xml:lang", d.Lang)
		b.WriteString(">")
		b.WriteString(xmlEscape(d.Description))
		b.WriteString("</description>")
	}
	b.WriteString("</descriptions>")
}

func writeGeoLocationsXML(b *strings.Builder, locations []datacite.GeoLocation) {
	if len(locations) == 0 {
		return
	}
	b.WriteString("<geoLocations>")
	for _, g := range locations {
		b.WriteString("<geoLocation>")
		if g.Point != nil {
			b.WriteString("<geoLocationPoint>")
			writeCoordXML(b, "pointLongitude", g.Point.PointLongitude)
			writeCoordXML(b, "pointLatitude", g.Point.PointLatitude)
			b.WriteString("</geoLocationPoint>")
		}
		if g.Box != nil {
			b.WriteString("<geoLocationBox>")
			writeCoordXML(b, "westBoundLongitude", g.Box.WestBoundLongitude)
			writeCoordXML(b, "eastBoundLongitude", g.Box.EastBoundLongitude)
			writeCoordXML(b, "southBoundLatitude", g.Box.SouthBoundLatitude)
			writeCoordXML(b, "northBoundLatitude", g.Box.NorthBoundLatitude)
			b.WriteString("</geoLocationBox>")
		}
		if g.Polygon != nil {
			b.WriteString("<geoLocationPolygon>")
			for _, p := range g.Polygon.PolygonPoints {
				b.WriteString("<polygonPoint>")
				writeCoordXML(b, "pointLongitude", p.PointLongitude)
				writeCoordXML(b, "pointLatitude", p.PointLatitude)
				b.WriteString("</polygonPoint>")
			}
			if in := g.Polygon.InPolygonPoint; in != nil {
				b.WriteString("<inPolygonPoint>")
				writeCoordXML(b, "pointLongitude", in.PointLongitude)
				writeCoordXML(b, "pointLatitude", in.PointLatitude)
				b.WriteString("</inPolygonPoint>")
			}
			b.WriteString("</geoLocationPolygon>")
		}
		b.WriteString("</geoLocation>")
	}
	b.WriteString("</geoLocations>")
}

func writeFundingReferencesXML(b *strings.Builder, funding []datacite.FundingReference) {
	if len(funding) == 0 {
		return
	}
	b.WriteString("<fundingReferences>")
	for _, f := range funding {
		b.WriteString("<fundingReference>")
		writeElem(b, "funderName", f.FunderName)
		if f.FunderIdentifier != "" {
			b.WriteString("<funderIdentifier")
			writeAttr(b, "funderIdentifierType", f.FunderIdentifierType)
			writeAttr(b, "schemeURI", f.SchemeURI)
			b.WriteString(">")
			b.WriteString(xmlEscape(f.FunderIdentifier))
			b.WriteString("</funderIdentifier>")
		}
		if f.AwardNumber != "" {
			b.WriteString("<awardNumber")
			writeAttr(b, "awardURI", f.AwardURI)
			b.WriteString(">")
			b.WriteString(xmlEscape(f.AwardNumber))
			b.WriteString("</awardNumber>")
		}
		if f.AwardTitle != "" {
			writeElem(b, "awardTitle", f.AwardTitle)
		}
		b.WriteString("</fundingReference>")
	}
	b.WriteString("</fundingReferences>")
}

func writeElem(b *strings.Builder, name, value string) {
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(">")
	b.WriteString(xmlEscape(value))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

// writeAttr writes a name="value" attribute; an empty value writes
// nothing at all rather than an empty attribute
func writeAttr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString("=\"")
	b.WriteString(xmlEscape(value))
	b.WriteString("\"")
}

func writeCoordXML(b *strings.Builder, name string, value float64) {
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(">")
	b.WriteString(strconv.FormatFloat(value, 'f', -1, 64))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
