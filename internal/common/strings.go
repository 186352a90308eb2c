package common

const UnknownStr = "unknown"

// Quote wraps every string in double quotes, preserving order.
func Quote(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, `"`+v+`"`)
	}

	return out
}
