package xcscore

import(
	"fmt"
	"math"
	"strconv"
)

// KEarthRadiusKM is the mean earth radius used for all task distances.
const KEarthRadiusKM = 6371.0

// DistKM is the great-circle (haversine) distance between two fixes, in kilometers.
func DistKM(a, b Fix) float64 {
	return haversine(a.Latrd(), a.Lonrd(), b.Latrd(), b.Lonrd())
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	sinDLat := math.Sin((lat1-lat2) / 2)
	sinDLon := math.Sin((lon1-lon2) / 2)
	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLon*sinDLon
	return 2 * KEarthRadiusKM * math.Asin(math.Sqrt(h))
}

// {{{ MinDec2Decimal

// MinDec2Decimal decodes the IGC minute-decimal form: "DDMMmmmN" (or S) for a
// latitude, "DDDMMmmmE" (or W) for a longitude. The value is DD + (MM + mmm/1000)/60,
// negated for S and W.
func MinDec2Decimal(minDec string) (float64, error) {
	degDigits := 0
	switch len(minDec) {
	case 8:
		degDigits = 2
		if c := minDec[7]; c != 'N' && c != 'S' {
			return 0, fmt.Errorf("%q: latitude must end in N or S: %w", minDec, ErrInvalidInput)
		}
	case 9:
		degDigits = 3
		if c := minDec[8]; c != 'E' && c != 'W' {
			return 0, fmt.Errorf("%q: longitude must end in E or W: %w", minDec, ErrInvalidInput)
		}
	default:
		return 0, fmt.Errorf("%q: expected 'DDMMmmmN' or 'DDDMMmmmE': %w", minDec, ErrInvalidInput)
	}

	deg, err1 := atoiDigits(minDec[0:degDigits])
	min, err2 := atoiDigits(minDec[degDigits:degDigits+2])
	frac, err3 := atoiDigits(minDec[degDigits+2:degDigits+5])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, fmt.Errorf("%q: non-numeric field: %w", minDec, ErrInvalidInput)
	}

	decimal := float64(deg) + (float64(min) + float64(frac)/1000.0) / 60.0
	if c := minDec[len(minDec)-1]; c == 'S' || c == 'W' {
		decimal = -decimal
	}
	return decimal, nil
}

// atoiDigits is strconv.Atoi restricted to plain digits (no sign).
func atoiDigits(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// }}}
// {{{ Decimal2MinDec

// Decimal2MinDec is the canonical formatter for MinDec2Decimal; the minutes are
// rounded to the nearest thousandth.
func Decimal2MinDec(v float64, isLat bool) string {
	cardinal := byte('N')
	if !isLat { cardinal = 'E' }
	if v < 0 {
		v = -v
		if isLat { cardinal = 'S' } else { cardinal = 'W' }
	}

	deg := int(math.Floor(v))
	thousandths := int(math.Round((v - float64(deg)) * 60.0 * 1000.0))
	if thousandths >= 60000 {
		deg++
		thousandths -= 60000
	}
	min, frac := thousandths/1000, thousandths%1000

	if isLat {
		return fmt.Sprintf("%02d%02d%03d%c", deg, min, frac, cardinal)
	}
	return fmt.Sprintf("%03d%02d%03d%c", deg, min, frac, cardinal)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
