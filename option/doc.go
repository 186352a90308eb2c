// Package option implements the marshalling core shared by every chart
// configuration entity.
//
// An entity type declares its fields once, in a package-level *Registry that
// maps each external camelCase key to an internal snake_case name and a Type
// (the decoder every assignment goes through). Entities embed Object, which
// binds the registry and stores decoded values. Decode builds an entity from
// a raw mapping, ToMapping turns it back into a trimmed mapping, and Compose
// flattens several registries into one with most-specific-first precedence.
//
// Key functions:
//   - Decode, Build: construct from a raw mapping
//   - Trim: drop empty values recursively
//   - Compose: merge parent registries
//   - FromJSON, FromYAML, LoadFile, ReadMapping: configuration loading
//   - DecodeAll, BuildAll, EncodeAll: parallel batch conversion
//   - Inspect: coded diagnostics for a raw mapping
//   - Snap: typed debug view
package option
