// Package diagnostic collects coded errors and warnings found while checking
// a raw option mapping against an entity's field registry.
//
// Key capabilities:
//   - Invalid value errors located by key path
//   - Unknown key warnings with suggested known keys
//   - Strict mode promoting warnings to errors
package diagnostic
