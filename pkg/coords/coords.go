// Package coords parses verbatim Darwin Core coordinate strings.
// Occurrence rows carry coordinates either as UTM ("9N 573674 6114170",
// zone letter optional) or as latitude/longitude ("49.123 -120.123").
// The stores convert parsed UTM values database-side; lat/long values
// become points directly.
package coords

import (
	"regexp"
	"strconv"

	"github.com/paulmach/orb"
)

// UTM is a parsed UTM coordinate triple.
type UTM struct {
	ZoneNumber int
	ZoneLetter string
	Easting    float64
	Northing   float64
}

// SRID returns the EPSG code of the UTM zone, assuming the northern
// hemisphere bands used by the source data (EPSG 32601-32660).
func (u UTM) SRID() int {
	return 32600 + u.ZoneNumber
}

// LatLong is a parsed latitude/longitude pair in EPSG 4326.
type LatLong struct {
	Latitude  float64
	Longitude float64
}

// Point returns the lon/lat orb point for the pair.
func (l LatLong) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

var (
	utmRe = regexp.MustCompile(
		`^(\d{1,2})([C-HJ-NP-X]?)\s+(\d+(?:\.\d+)?)\s+(\d+(?:\.\d+)?)$`)
	latLongRe = regexp.MustCompile(
		`^(-?\d+(?:\.\d+)?)\s+(-?\d+(?:\.\d+)?)$`)
)

// ParseUTM parses a verbatim UTM string. Returns nil when the string
// does not look like a UTM triple.
func ParseUTM(s string) *UTM {
	m := utmRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	zone, err := strconv.Atoi(m[1])
	if err != nil || zone < 1 || zone > 60 {
		return nil
	}
	easting, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return nil
	}
	northing, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return nil
	}
	return &UTM{
		ZoneNumber: zone,
		ZoneLetter: m[2],
		Easting:    easting,
		Northing:   northing,
	}
}

// ParseLatLong parses a verbatim "lat long" string. Returns nil when
// the string is not a valid pair or is out of range.
func ParseLatLong(s string) *LatLong {
	m := latLongRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil || lat < -90 || lat > 90 {
		return nil
	}
	long, err := strconv.ParseFloat(m[2], 64)
	if err != nil || long < -180 || long > 180 {
		return nil
	}
	return &LatLong{Latitude: lat, Longitude: long}
}
