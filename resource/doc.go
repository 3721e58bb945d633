// Package resource defines the hydrated resource aggregate consumed by
// the export codec.
//
// The aggregate is owned and mutated elsewhere (storage layer, editing
// workflow); the codec only reads it. Every relation collection must be
// present when the codec is invoked, possibly empty but never unloaded.
//
// The three shape ambiguities of the raw storage model are collapsed
// into tagged forms here, once, at construction:
//
//   - a creator/contributor is backed by exactly one of Person or
//     Institution (NewPersonCreator, NewInstitutionCreator, ...)
//   - a date is Single, ClosedRange, or OpenEndedRange (NewResourceDate)
//   - a geolocation is Point, Box, Polygon, or shapeless
//     (GeoLocationFromRaw, NewGeoLocationPolygon, ...)
//
// Downstream code dispatches on these tags and never re-inspects the
// raw nullable source fields.
package resource
