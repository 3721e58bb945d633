package converter

import (
	"github.com/McNamara84/ernie-sub017/datacite"
	"github.com/McNamara84/ernie-sub017/resource"
)

func buildTitles(titles []resource.Title) []datacite.Title {
	out := make([]datacite.Title, 0, len(titles))
	for _, t := range titles {
		out = append(out, datacite.Title{
			Title:     t.Value,
			TitleType: t.Type,
			Lang:      t.Lang,
		})
	}
	return out
}

func buildSubjects(subjects []resource.Subject) []datacite.Subject {
	if len(subjects) == 0 {
		return nil
	}
	out := make([]datacite.Subject, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, datacite.Subject{
			Subject:            s.Value,
			SubjectScheme:      s.Scheme,
			SchemeURI:          s.SchemeURI,
			ValueURI:           s.ValueURI,
			ClassificationCode: s.ClassificationCode,
		})
	}
	return out
}

// buildDates renders each date by its tagged shape. A closed range
// becomes "start/end"; an open-ended range becomes whichever bound is
// present; a single date with an empty value is omitted entirely.
func (c *Converter) buildDates(dates []resource.ResourceDate) []datacite.Date {
	if len(dates) == 0 {
		return nil
	}
	out := make([]datacite.Date, 0, len(dates))
	for _, d := range dates {
		var value string
		switch d.Shape() {
		case resource.DateClosedRange:
			start, end := d.Bounds()
			value = start + "/" + end
		case resource.DateOpenEndedRange:
			start, end := d.Bounds()
			if start != "" {
				value = start
			} else {
				value = end
			}
		default:
			value = d.Value()
			if value == "" {
				c.Warnings.Add(WarningEmptyDate, d.Type)
				continue
			}
		}
		out = append(out, datacite.Date{Date: value, DateType: d.Type})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func buildRelatedIdentifiers(related []resource.RelatedIdentifier) []datacite.RelatedIdentifier {
	if len(related) == 0 {
		return nil
	}
	out := make([]datacite.RelatedIdentifier, 0, len(related))
	for _, r := range related {
		out = append(out, datacite.RelatedIdentifier{
			RelatedIdentifier:     r.Identifier,
			RelatedIdentifierType: r.IdentifierType,
			RelationType:          r.RelationType,
			RelatedMetadataScheme: r.MetadataScheme,
			SchemeURI:             r.SchemeURI,
			SchemeType:            r.SchemeType,
		})
	}
	return out
}

func buildRightsList(rights []resource.Rights) []datacite.Rights {
	if len(rights) == 0 {
		return nil
	}
	out := make([]datacite.Rights, 0, len(rights))
	for _, r := range rights {
		entry := datacite.Rights{
			Rights:    r.Name,
			RightsURI: r.URI,
			SchemeURI: r.SchemeURI,
		}
		if r.Identifier != "" {
			entry.RightsIdentifier = r.Identifier
			entry.RightsIdentifierScheme = "SPDX"
		}
		out = append(out, entry)
	}
	return out
}

func buildDescriptions(descriptions []resource.Description) []datacite.Description {
	if len(descriptions) == 0 {
		return nil
	}
	out := make([]datacite.Description, 0, len(descriptions))
	for _, d := range descriptions {
		out = append(out, datacite.Description{
			Description:     d.Text,
			DescriptionType: d.Type,
			Lang:            d.Lang,
		})
	}
	return out
}

// buildGeoLocations renders each location by its tagged shape. A
// shapeless location renders nothing for that entry; it does not
// suppress the other entries.
func (c *Converter) buildGeoLocations(locations []resource.GeoLocation) []datacite.GeoLocation {
	if len(locations) == 0 {
		return nil
	}
	out := make([]datacite.GeoLocation, 0, len(locations))
	for _, g := range locations {
		switch g.Shape() {
		case resource.GeoPoint:
			p := g.Point()
			out = append(out, datacite.GeoLocation{
				Point: &datacite.GeoLocationPoint{
					PointLongitude: p.Longitude,
					PointLatitude:  p.Latitude,
				},
			})
		case resource.GeoBox:
			west, east, south, north := g.Box()
			out = append(out, datacite.GeoLocation{
				Box: &datacite.GeoLocationBox{
					WestBoundLongitude: west,
					EastBoundLongitude: east,
					SouthBoundLatitude: south,
					NorthBoundLatitude: north,
				},
			})
		case resource.GeoPolygon:
			points, inPoint := g.Polygon()
			polygon := &datacite.GeoLocationPolygon{
				PolygonPoints: make([]datacite.GeoLocationPoint, 0, len(points)),
			}
			for _, p := range points {
				polygon.PolygonPoints = append(polygon.PolygonPoints, datacite.GeoLocationPoint{
					PointLongitude: p.Longitude,
					PointLatitude:  p.Latitude,
				})
			}
			if inPoint != nil {
				polygon.InPolygonPoint = &datacite.GeoLocationPoint{
					PointLongitude: inPoint.Longitude,
					PointLatitude:  inPoint.Latitude,
				}
			}
			out = append(out, datacite.GeoLocation{Polygon: polygon})
		default:
			c.Warnings.Add(WarningShapelessGeo, c.Res.DOI)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// buildFundingReferences always emits the funder name; the funder
// identifier, its type and scheme URI travel only as a group, while the
// award fields are each independently optional.
func (c *Converter) buildFundingReferences(funding []resource.FundingReference) []datacite.FundingReference {
	if len(funding) == 0 {
		return nil
	}
	out := make([]datacite.FundingReference, 0, len(funding))
	for _, f := range funding {
		entry := datacite.FundingReference{
			FunderName:  f.FunderName,
			AwardNumber: f.AwardNumber,
			AwardURI:    f.AwardURI,
			AwardTitle:  f.AwardTitle,
		}
		if f.FunderIdentifier != "" {
			entry.FunderIdentifier = f.FunderIdentifier
			entry.FunderIdentifierType = f.FunderIdentifierType
			entry.SchemeURI = f.SchemeURI
			if f.FunderIdentifierType == "" {
				c.Warnings.Add(WarningFunderIDNoType, f.FunderName)
			}
		}
		out = append(out, entry)
	}
	return out
}
