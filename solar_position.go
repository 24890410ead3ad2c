package ladybug

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// The analysis year is fixed: it only anchors the Julian day used by the
// solar geometry, and 1989 is a non-leap year.
const analysisYear = 1989

/*
SunPosition computes the position of the sun for one hour of the year.

	Args:
	    loc: the analysis location
	    hoy: hour of the year, 1..8760

	Returns:
	    (1) solar altitude, rad (negative when the sun is below the horizon)
	    (2) solar azimuth measured clockwise from north, rad, already
	        rotated by the location's north angle

The formulation is the NOAA low-accuracy solar geometry anchored on the
Julian day; errors stay below a tenth of a degree, which is well inside the
resolution of the hourly radiation data driving the engine.
*/
func SunPosition(loc Location, hoy int) (float64, float64) {
	d := DateFromHOY(hoy)

	// Local standard time at the middle of the hourly step.
	localHours := float64(d.Hour) - 0.5
	utcHours := localHours - loc.TimeZone

	t := time.Date(analysisYear, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(utcHours * float64(time.Hour)))
	jd := julian.TimeToJD(t)
	T := (jd - 2451545.0) / 36525.0

	// Geometric mean longitude and anomaly of the sun, degrees.
	L0 := fixAngle(280.46646 + T*(36000.76983+T*0.0003032))
	M := fixAngle(357.52911 + T*(35999.05029-T*0.0001537))
	e := 0.016708634 - T*(0.000042037+T*0.0000001267)

	// Equation of center and apparent longitude.
	C := math.Sin(degToRad(M))*(1.914602-T*(0.004817+T*0.000014)) +
		math.Sin(degToRad(2*M))*(0.019993-T*0.000101) +
		math.Sin(degToRad(3*M))*0.000289
	sunLong := L0 + C
	omega := 125.04 - 1934.136*T
	lambda := sunLong - 0.00569 - 0.00478*math.Sin(degToRad(omega))

	// Obliquity and declination.
	eps0 := 23.0 + (26.0+(21.448-T*(46.815+T*(0.00059-T*0.001813)))/60.0)/60.0
	decl := math.Asin(math.Sin(degToRad(eps0)) * math.Sin(degToRad(lambda)))

	// Equation of time, minutes.
	y := math.Tan(degToRad(eps0)/2.0) * math.Tan(degToRad(eps0)/2.0)
	eqTimeMin := radToDeg(y*math.Sin(degToRad(2*L0))-
		2.0*e*math.Sin(degToRad(M))+
		4.0*e*y*math.Sin(degToRad(M))*math.Cos(degToRad(2*L0))-
		0.5*y*y*math.Sin(degToRad(4*L0))-
		1.25*e*e*math.Sin(degToRad(2*M))) * 4.0

	// Hour angle, degrees. Zero at solar noon, positive in the afternoon.
	utcMin := utcHours * 60.0
	tst := utcMin + 4.0*loc.Longitude + eqTimeMin
	ha := tst/4.0 - 180.0
	for ha < -180.0 {
		ha += 360.0
	}
	for ha > 180.0 {
		ha -= 360.0
	}

	latRad := loc.LatitudeRad()
	cosZen := math.Sin(latRad)*math.Sin(decl) + math.Cos(latRad)*math.Cos(decl)*math.Cos(degToRad(ha))
	cosZen = clamp(cosZen, -1.0, 1.0)
	zen := math.Acos(cosZen)
	altitude := math.Pi/2.0 - zen

	// Azimuth from north, clockwise.
	var azimuth float64
	sinZen := math.Sin(zen)
	if sinZen > 1e-9 {
		cosAz := (math.Sin(decl) - math.Sin(latRad)*cosZen) / (math.Cos(latRad) * sinZen)
		azimuth = math.Acos(clamp(cosAz, -1.0, 1.0))
		if ha > 0 {
			azimuth = 2.0*math.Pi - azimuth
		}
	}

	// The model's north angle rotates the whole sky with it.
	azimuth += degToRad(loc.NorthAngle)
	if azimuth >= 2.0*math.Pi {
		azimuth -= 2.0 * math.Pi
	}

	return altitude, azimuth
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }
func fixAngle(a float64) float64   { return a - 360.0*math.Floor(a/360.0) }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
