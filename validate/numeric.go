package validate

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"chartopts/internal/common"
)

type boundKind int

const (
	boundMin boundKind = iota + 1
	boundMax
)

// Bound is an inclusive limit applied by Numeric and Integer.
type Bound struct {
	kind  boundKind
	limit float64
}

// Min returns a lower inclusive bound.
func Min(x float64) Bound { return Bound{kind: boundMin, limit: x} }

// Max returns an upper inclusive bound.
func Max(x float64) Bound { return Bound{kind: boundMax, limit: x} }

// String describes the bound, e.g. "minimum 0".
func (b Bound) String() string {
	switch b.kind {
	case boundMin:
		return "minimum " + strconv.FormatFloat(b.limit, 'g', -1, 64)
	case boundMax:
		return "maximum " + strconv.FormatFloat(b.limit, 'g', -1, 64)
	default:
		return common.UnknownStr
	}
}

func (b Bound) holds(v float64) bool {
	switch b.kind {
	case boundMin:
		return common.InRange(b.limit, v, math.Inf(1))
	case boundMax:
		return common.InRange(math.Inf(-1), v, b.limit)
	default:
		return true
	}
}

func checkBounds(raw any, v float64, bounds []Bound) error {
	for _, b := range bounds {
		if !b.holds(v) {
			return invalid(raw, "violates %s", b)
		}
	}

	return nil
}

// Numeric validates a number, optionally bounded.
// Numeric strings are accepted and parsed; booleans are rejected.
func Numeric(value any, allowEmpty bool, bounds ...Bound) (*float64, error) {
	if isEmpty(value) {
		return emptyResult[float64](value, allowEmpty)
	}

	v, err := toFloat(value)
	if err != nil {
		return nil, err
	}

	if err := checkBounds(value, v, bounds); err != nil {
		return nil, err
	}

	return &v, nil
}

// Integer validates a whole number, optionally bounded. Integral floats and
// numeric strings are accepted; fractional values are rejected.
func Integer(value any, allowEmpty bool, bounds ...Bound) (*int, error) {
	if isEmpty(value) {
		return emptyResult[int](value, allowEmpty)
	}

	f, err := toFloat(value)
	if err != nil {
		return nil, err
	}

	// float64(math.MaxInt64) rounds up to 2^63, which int cannot hold.
	if math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return nil, invalid(value, "out of integer range")
	}

	if f != math.Trunc(f) {
		return nil, invalid(value, "not an integer")
	}

	if err := checkBounds(value, f, bounds); err != nil {
		return nil, err
	}

	v := int(f)

	return &v, nil
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return notNaN(value, v)
	case float32:
		return notNaN(value, float64(v))
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, invalid(value, "not a number")
		}

		return notNaN(value, f)
	case bool:
		return 0, invalid(value, "expected a number, got bool")
	}

	rv := reflect.ValueOf(value)
	switch {
	case rv.CanInt():
		return float64(rv.Int()), nil
	case rv.CanUint():
		return float64(rv.Uint()), nil
	case rv.CanFloat():
		return notNaN(value, rv.Float())
	}

	return 0, invalid(value, "expected a number, got %T", value)
}

func notNaN(raw any, f float64) (float64, error) {
	if math.IsNaN(f) {
		return 0, invalid(raw, "not a number")
	}

	return f, nil
}
