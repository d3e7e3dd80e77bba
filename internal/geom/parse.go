package geom

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformed is returned for answer text that is neither a decimal
// nor a "numerator/denominator" fraction.
var ErrMalformed = errors.New("geom: malformed number")

// ParseNumber reads a typed answer.
//
// Accepted forms are decimals ("-3", "0.5", "+2") and fractions ("2/4",
// "-3/6", "3/-6"). Blank input is not an answer: ok is false and err is nil.
// Anything else, including a zero denominator, returns ErrMalformed.
func ParseNumber(s string) (value float64, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}

	if num, den, found := strings.Cut(s, "/"); found {
		n, err := parseDecimal(num)
		if err != nil {
			return 0, false, err
		}
		d, err := parseDecimal(den)
		if err != nil {
			return 0, false, err
		}
		if d == 0 {
			return 0, false, fmt.Errorf("%w: zero denominator in %q", ErrMalformed, s)
		}
		return n / d, true, nil
	}

	v, err := parseDecimal(s)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

func parseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty part", ErrMalformed)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	return v, nil
}

// FormatNumber prints v with at most two decimals and no trailing zeros.
func FormatNumber(v float64) string {
	v = cleanZero(math.Round(v*100) / 100)
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Ratio formats rise/run as a reduced fraction, e.g. Ratio(4, -6) == "-2/3".
// Whole results print without a denominator. run must not be zero.
func Ratio(rise, run int) string {
	if run < 0 {
		rise, run = -rise, -run
	}
	g := gcd(abs(rise), run)
	if g > 1 {
		rise, run = rise/g, run/g
	}
	if run == 1 {
		return strconv.Itoa(rise)
	}
	return fmt.Sprintf("%d/%d", rise, run)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
