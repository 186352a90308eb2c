package jsliteral

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"chartopts/option"
)

const indentUnit = "  "

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Marshal renders v. Mappings are written one key per line in sorted key
// order; sequences of scalars stay on one line.
func Marshal(v any) string {
	var sb strings.Builder

	write(&sb, v, 0)

	return sb.String()
}

func write(sb *strings.Builder, v any, depth int) {
	switch x := v.(type) {
	case nil:
		sb.WriteString("null")
	case option.Literal:
		sb.WriteString(x.JSLiteral())
	case string:
		sb.WriteString(Quote(x))
	case bool:
		sb.WriteString(strconv.FormatBool(x))
	case int:
		sb.WriteString(strconv.Itoa(x))
	case int64:
		sb.WriteString(strconv.FormatInt(x, 10))
	case float64:
		sb.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
	case map[string]any:
		writeObject(sb, x, depth)
	case []any:
		writeArray(sb, x, depth)
	default:
		sb.WriteString(Quote(fmt.Sprint(x)))
	}
}

func writeObject(sb *strings.Builder, m map[string]any, depth int) {
	if len(m) == 0 {
		sb.WriteString("{}")
		return
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	inner := strings.Repeat(indentUnit, depth+1)

	sb.WriteString("{\n")

	for i, k := range keys {
		sb.WriteString(inner)
		sb.WriteString(Key(k))
		sb.WriteString(": ")
		write(sb, m[k], depth+1)

		if i < len(keys)-1 {
			sb.WriteString(",")
		}

		sb.WriteString("\n")
	}

	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteString("}")
}

func writeArray(sb *strings.Builder, items []any, depth int) {
	sb.WriteString("[")

	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}

		write(sb, item, depth)
	}

	sb.WriteString("]")
}

// Key returns k unquoted when it is a valid identifier.
func Key(k string) string {
	if identifier.MatchString(k) {
		return k
	}

	return Quote(k)
}

// Quote wraps s in single quotes, escaping backslashes, quotes and line
// breaks.
func Quote(s string) string {
	var sb strings.Builder

	sb.WriteByte('\'')

	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '\'':
			sb.WriteString(`\'`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}

	sb.WriteByte('\'')

	return sb.String()
}
