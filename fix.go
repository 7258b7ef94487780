package xcscore

import(
	"fmt"
	"math"

	"github.com/skypies/geo"
)

// Fix is a single logger record: a position at a time of day. Fixes are immutable
// once they are part of a Flight; the setters exist for building them up.
type Fix struct {
	Time        int    // Seconds since midnight UTC of the flight date; past 86400 after midnight

	geo.Latlong        // Embedded, so the geo helpers work directly on fixes. Decimal degrees.

	PressureAlt int    // Meters, against the ISA sea level datum
	GNSSAlt     int    // Meters, above the WGS84 ellipsoid
	Validity    byte   // 'A' for a 3D fix, 'V' for 2D or no GPS data

	// Radian form of Latlong, and the Latlong it was computed from. A stale pair is
	// ignored (see Latrd), so writing Lat or Long directly never yields bad radians.
	latrd, lonrd float64
	radOf        geo.Latlong
}

func NewFix(time int, lat, long float64, pressureAlt, gnssAlt int, validity byte) Fix {
	f := Fix{
		Time: time,
		Latlong: geo.Latlong{Lat:lat, Long:long},
		PressureAlt: pressureAlt,
		GNSSAlt: gnssAlt,
		Validity: validity,
	}
	f.cacheRadians()
	return f
}

func (f *Fix)cacheRadians() {
	f.latrd = f.Lat * math.Pi / 180.0
	f.lonrd = f.Long * math.Pi / 180.0
	f.radOf = f.Latlong
}

func (f *Fix)SetLat(lat float64)   { f.Lat = lat;   f.cacheRadians() }
func (f *Fix)SetLong(long float64) { f.Long = long; f.cacheRadians() }

func (f Fix)Latrd() float64 {
	if f.radOf != f.Latlong { return f.Lat * math.Pi / 180.0 }
	return f.latrd
}
func (f Fix)Lonrd() float64 {
	if f.radOf != f.Latlong { return f.Long * math.Pi / 180.0 }
	return f.lonrd
}

// Equivalent compares positions by their radian form, and optionally the pressure altitude.
func (f Fix)Equivalent(other Fix, withAltitude bool) bool {
	if f.Latrd() != other.Latrd() || f.Lonrd() != other.Lonrd() {
		return false
	}
	return !withAltitude || f.PressureAlt == other.PressureAlt
}

// Equal compares every recorded field.
func (f Fix)Equal(other Fix) bool {
	return f.Time == other.Time && f.Latlong == other.Latlong &&
		f.PressureAlt == other.PressureAlt && f.GNSSAlt == other.GNSSAlt &&
		f.Validity == other.Validity
}

// TimeOfDay renders the fix time as HH:MM:SS.
func (f Fix)TimeOfDay() string {
	t := f.Time % 86400
	return fmt.Sprintf("%02d:%02d:%02d", t/3600, (t/60)%60, t%60)
}

func (f Fix)String() string {
	return fmt.Sprintf("[%s] (%.5f,%.5f) %dm/%dm %c", f.TimeOfDay(), f.Lat, f.Long,
		f.PressureAlt, f.GNSSAlt, f.validityOrDash())
}

func (f Fix)validityOrDash() byte {
	if f.Validity == 0 { return '-' }
	return f.Validity
}
