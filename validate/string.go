package validate

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"chartopts/internal/common"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// String validates a string. Numbers and booleans are formatted; anything
// else is rejected.
func String(value any, allowEmpty bool) (*string, error) {
	if isEmpty(value) {
		return emptyResult[string](value, allowEmpty)
	}

	var s string

	switch v := value.(type) {
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	case bool:
		s = strconv.FormatBool(v)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		s = strconv.Itoa(v)
	default:
		return nil, invalid(value, "expected a string, got %T", value)
	}

	if s == "" {
		return emptyResult[string](value, allowEmpty)
	}

	return &s, nil
}

// Enum validates a case-insensitive enumerated string. The value is
// lower-cased before matching and the normalized form is returned.
func Enum(value any, allowEmpty bool, allowed ...string) (*string, error) {
	s, err := String(value, allowEmpty)
	if err != nil || s == nil {
		return nil, err
	}

	lowered := strings.ToLower(*s)
	if !slices.Contains(allowed, lowered) {
		return nil, invalid(value, "expected one of %s", strings.Join(common.Quote(allowed), ", "))
	}

	return &lowered, nil
}

// EnumExact is Enum without case folding, for vocabularies like dash styles.
func EnumExact(value any, allowEmpty bool, allowed ...string) (*string, error) {
	s, err := String(value, allowEmpty)
	if err != nil || s == nil {
		return nil, err
	}

	if !slices.Contains(allowed, *s) {
		return nil, invalid(value, "expected one of %s", strings.Join(common.Quote(allowed), ", "))
	}

	return s, nil
}

// VariableName validates a JavaScript identifier.
func VariableName(value any, allowEmpty bool) (*string, error) {
	s, err := String(value, allowEmpty)
	if err != nil || s == nil {
		return nil, err
	}

	if !identifierRe.MatchString(*s) {
		return nil, invalid(value, "not a valid variable name")
	}

	return s, nil
}
