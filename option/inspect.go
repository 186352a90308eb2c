package option

import (
	"fmt"
	"sort"
	"strconv"

	"chartopts/internal/diagnostic"
	"chartopts/internal/match"
)

// maxSuggestions bounds the known keys offered for one unknown key.
const maxSuggestions = 3

// Inspect checks raw against the registry of e without modifying e. Every
// value that fails its field decoder is an error located at the innermost
// failing key; every unrecognized key is a warning carrying the closest
// known keys. Nested entities and lists of entities are walked.
func Inspect(e Entity, raw map[string]any) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	inspectMapping(e.Registry(), raw, "", true, &diags)

	return diags
}

// Decode errors are only collected at the top level: a nested failure
// surfaces there with its full path, so the walk below reports warnings only.
func inspectMapping(reg *Registry, raw map[string]any, path string, top bool, diags *diagnostic.Diagnostics) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, key := range keys {
		at := joinPath(path, key)

		f, ok := reg.FieldByKey(key)
		if !ok {
			diags.AddWarning(diagnostic.CodeUnknownKey,
				fmt.Sprintf("unrecognized key %q is ignored", key),
				reg.name, at, match.Suggest(key, reg.Keys(), maxSuggestions)...)

			continue
		}

		if top {
			if _, err := f.Type.Decode(raw[key]); err != nil {
				inner, leaf := Locate(err)
				diags.AddError(diagnostic.CodeInvalidValue, leaf.Error(), reg.name, joinPath(at, inner))
			}
		}

		inspectValue(f.Type, raw[key], at, diags)
	}
}

func inspectValue(t Type, v any, path string, diags *diagnostic.Diagnostics) {
	switch t.Kind {
	case KindEntity:
		if m, ok := v.(map[string]any); ok {
			inspectMapping(t.NewEntity().Registry(), m, path, false, diags)
		}
	case KindList:
		items, ok := v.([]any)
		if !ok {
			return
		}

		for i, item := range items {
			inspectValue(t.children[0], item, path+"["+strconv.Itoa(i)+"]", diags)
		}
	case KindUnion:
		for _, alt := range t.children {
			inspectValue(alt, v, path, diags)
		}
	}
}

func joinPath(base, key string) string {
	switch {
	case base == "":
		return key
	case key == "":
		return base
	case key[0] == '[':
		return base + key
	default:
		return base + "." + key
	}
}
