package kinematics

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Placeholder is shown for absent or non-finite values.
const Placeholder = "—"

const (
	UnitPeriod          = "s"
	UnitFrequency       = "Hz"
	UnitAngularVelocity = "rad/s"
	UnitAcceleration    = "m/s²"
	UnitSpeed           = "m/s"
)

// Readout holds the display strings for a State.
type Readout struct {
	Period          string
	Frequency       string
	AngularVelocity string
	Acceleration    string
	Speed           string
}

func (s State) Readout() Readout {
	return Readout{
		Period:          Format(s.T, UnitPeriod),
		Frequency:       Format(s.F, UnitFrequency),
		AngularVelocity: Format(s.W, UnitAngularVelocity),
		Acceleration:    Format(s.Ac, UnitAcceleration),
		Speed:           Format(s.Speed(), UnitSpeed),
	}
}

// Format renders v with 3 significant digits when |v| >= 100, 4 when
// |v| >= 1 and 5 otherwise, followed by unit when it is not empty.
func Format(v float64, unit string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	abs := math.Abs(v)
	digits := 5
	switch {
	case abs >= 100:
		digits = 3
	case abs >= 1:
		digits = 4
	}
	str := toPrecision(v, digits)
	if unit == "" {
		return str
	}
	return str + " " + unit
}

// toPrecision follows the ECMAScript Number.prototype.toPrecision layout:
// exponent form when the decimal exponent is < -6 or >= digits. Ties round
// away from zero on the exact binary value, so 1.0625 gives 1.063.
func toPrecision(v float64, digits int) string {
	if v == 0 {
		return "0." + strings.Repeat("0", digits-1)
	}

	mant, exp := roundDigits(math.Abs(v), digits)

	var b strings.Builder
	if v < 0 {
		b.WriteByte('-')
	}
	switch {
	case exp < -6 || exp >= digits:
		b.WriteString(mant[:1])
		if digits > 1 {
			b.WriteByte('.')
			b.WriteString(mant[1:])
		}
		b.WriteByte('e')
		if exp >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(exp))
	case exp < 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -exp-1))
		b.WriteString(mant)
	default:
		b.WriteString(mant[:exp+1])
		if exp+1 < digits {
			b.WriteByte('.')
			b.WriteString(mant[exp+1:])
		}
	}
	return b.String()
}

// exactDigits is enough to print any finite float64 without rounding.
const exactDigits = 1100

// roundDigits returns the first n significant decimal digits of abs > 0,
// rounded half up, and the decimal exponent of the leading digit.
func roundDigits(abs float64, n int) (string, int) {
	sci := new(big.Float).SetFloat64(abs).Text('e', exactDigits)
	frac, expStr, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expStr)
	all := strings.Replace(frac, ".", "", 1)

	d := []byte(all[:n])
	if all[n] >= '5' {
		i := n - 1
		for ; i >= 0 && d[i] == '9'; i-- {
			d[i] = '0'
		}
		if i < 0 {
			// 9.99 -> 10.0: keep n digits and move the exponent.
			d = append([]byte{'1'}, d[:n-1]...)
			exp++
		} else {
			d[i]++
		}
	}
	return string(d), exp
}
