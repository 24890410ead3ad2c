package ladybug

import (
	"fmt"
	"math"
)

/*
A Location describes where on earth the analysis takes place.

	Latitude: degrees, positive north, [-90, 90]
	Longitude: degrees, positive east, [-180, 180]
	TimeZone: offset from UTC, hours (e.g. -5 for EST, 9 for JST)
	NorthAngle: rotation of the model's Y axis off true north, degrees.
	    0 means the model +Y axis points at true north.

A Location is validated once and read-only afterwards.
*/
type Location struct {
	Latitude   float64
	Longitude  float64
	TimeZone   float64
	NorthAngle float64
}

// LatitudeRad returns the latitude in radians.
func (l Location) LatitudeRad() float64 {
	return l.Latitude * math.Pi / 180.0
}

// LongitudeRad returns the longitude in radians.
func (l Location) LongitudeRad() float64 {
	return l.Longitude * math.Pi / 180.0
}

/*
Validate checks the location against physical bounds.

	Returns:
	    nil when the location is usable, otherwise an error naming
	    every field that is out of range.
*/
func (l Location) Validate() []error {
	var errs []error
	if math.IsNaN(l.Latitude) || l.Latitude < -90.0 || l.Latitude > 90.0 {
		errs = append(errs, fmt.Errorf("%w: latitude %v must be within [-90, 90]", ErrInvalidInput, l.Latitude))
	}
	if math.IsNaN(l.Longitude) || l.Longitude < -180.0 || l.Longitude > 180.0 {
		errs = append(errs, fmt.Errorf("%w: longitude %v must be within [-180, 180]", ErrInvalidInput, l.Longitude))
	}
	if math.IsNaN(l.TimeZone) || l.TimeZone < -12.0 || l.TimeZone > 14.0 {
		errs = append(errs, fmt.Errorf("%w: time zone %v must be within [-12, 14]", ErrInvalidInput, l.TimeZone))
	}
	return errs
}
