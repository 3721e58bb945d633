package resource

import "fmt"

// GeoShape tags the spatial form of a geolocation
type GeoShape int

const (
	// GeoNone marks a location whose raw fields never completed any
	// shape; it renders nothing
	GeoNone GeoShape = iota
	// GeoPoint is a single coordinate pair
	GeoPoint
	// GeoBox is a bounding box with all four bounds
	GeoBox
	// GeoPolygon is a closed area of at least three points
	GeoPolygon
)

// Coordinate is a longitude/latitude pair
type Coordinate struct {
	Longitude float64
	Latitude  float64
}

// GeoLocation is a spatial reference tagged by shape. Build it with
// GeoLocationFromRaw or one of the explicit constructors.
type GeoLocation struct {
	shape GeoShape

	point Coordinate // GeoPoint

	west, east   float64 // GeoBox
	south, north float64

	polygon []Coordinate // GeoPolygon
	inPoint *Coordinate
}

// GeoLocationFromRaw collapses the nullable storage fields into a
// tagged shape. Priority follows the kernel: a complete point wins,
// then a complete box, then a polygon with at least three points.
// Anything else yields a shapeless location that renders nothing.
func GeoLocationFromRaw(lon, lat *float64, west, east, south, north *float64, polygon []Coordinate, inLon, inLat *float64) GeoLocation {
	if lon != nil && lat != nil {
		return NewGeoLocationPoint(*lon, *lat)
	}
	if west != nil && east != nil && south != nil && north != nil {
		return NewGeoLocationBox(*west, *east, *south, *north)
	}
	if len(polygon) >= 3 {
		var in *Coordinate
		if inLon != nil && inLat != nil {
			in = &Coordinate{Longitude: *inLon, Latitude: *inLat}
		}
		g, _ := NewGeoLocationPolygon(polygon, in)
		return g
	}
	return GeoLocation{}
}

// NewGeoLocationPoint builds a point location
func NewGeoLocationPoint(lon, lat float64) GeoLocation {
	return GeoLocation{shape: GeoPoint, point: Coordinate{Longitude: lon, Latitude: lat}}
}

// NewGeoLocationBox builds a bounding-box location
func NewGeoLocationBox(west, east, south, north float64) GeoLocation {
	return GeoLocation{shape: GeoBox, west: west, east: east, south: south, north: north}
}

// NewGeoLocationPolygon builds a polygon location. A polygon needs at
// least three points; fewer is a defect in the input, not something to
// render partially.
func NewGeoLocationPolygon(points []Coordinate, inPoint *Coordinate) (GeoLocation, error) {
	if len(points) < 3 {
		return GeoLocation{}, fmt.Errorf("polygon needs at least 3 points, got %d", len(points))
	}
	return GeoLocation{shape: GeoPolygon, polygon: points, inPoint: inPoint}, nil
}

// Shape returns the tagged spatial form
func (g GeoLocation) Shape() GeoShape { return g.shape }

// Point returns the coordinate of a GeoPoint location
func (g GeoLocation) Point() Coordinate { return g.point }

// Box returns the four bounds of a GeoBox location
func (g GeoLocation) Box() (west, east, south, north float64) {
	return g.west, g.east, g.south, g.north
}

// Polygon returns the points of a GeoPolygon location and the optional
// in-polygon point (nil when absent)
func (g GeoLocation) Polygon() ([]Coordinate, *Coordinate) {
	return g.polygon, g.inPoint
}
