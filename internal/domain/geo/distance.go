// Package geo holds the spherical-earth math shared by the monitors.
package geo

import (
	"math"
	"time"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// EarthRadiusMeters is the mean Earth radius used by every distance computation.
const EarthRadiusMeters = 6371000.0

// ErrInvalidCoordinate is returned for non-finite or out-of-range latitude/longitude.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Orb converts the point to orb's [lng, lat] representation.
func (p Point) Orb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// Validate rejects NaN, Inf and values outside [-90,90] x [-180,180].
// Out-of-range input is never clamped.
func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) {
		return errors.Wrapf(ErrInvalidCoordinate, "non-finite coordinate (%v, %v)", p.Lat, p.Lng)
	}
	if p.Lat < -90 || p.Lat > 90 {
		return errors.Wrapf(ErrInvalidCoordinate, "latitude %v out of range", p.Lat)
	}
	if p.Lng < -180 || p.Lng > 180 {
		return errors.Wrapf(ErrInvalidCoordinate, "longitude %v out of range", p.Lng)
	}

	return nil
}

// DistanceMeters returns the haversine great-circle distance between a and b.
func DistanceMeters(a, b Point) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	return haversine(a, b), nil
}

func haversine(a, b Point) float64 {
	lat1 := degreesToRadians(a.Lat)
	lat2 := degreesToRadians(b.Lat)
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// rounding can push h a hair outside [0,1] for antipodal points
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Destination returns the point reached by travelling distance meters from origin on the
// given bearing (degrees clockwise from north).
func Destination(origin Point, bearingDeg, distance float64) Point {
	lat1 := degreesToRadians(origin.Lat)
	lng1 := degreesToRadians(origin.Lng)
	brng := degreesToRadians(bearingDeg)
	angular := distance / EarthRadiusMeters

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(angular) +
		math.Cos(lat1)*math.Sin(angular)*math.Cos(brng))
	lng2 := lng1 + math.Atan2(
		math.Sin(brng)*math.Sin(angular)*math.Cos(lat1),
		math.Cos(angular)-math.Sin(lat1)*math.Sin(lat2),
	)

	lng := radiansToDegrees(lng2)
	// normalize to [-180, 180]
	lng = math.Mod(lng+540, 360) - 180

	return Point{Lat: radiansToDegrees(lat2), Lng: lng}
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}

func radiansToDegrees(r float64) float64 {
	return r * 180 / math.Pi
}

// Position is a point observed at a moment in time.
type Position struct {
	Point
	ObservedAt time.Time `json:"observedAt"`
}
