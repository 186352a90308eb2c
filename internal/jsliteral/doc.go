// Package jsliteral writes option mappings as JavaScript object literals.
//
// Unlike JSON, identifier keys are unquoted, strings use single quotes and
// values implementing option.Literal (callback functions) are emitted
// verbatim, so the output can be pasted into a script.
package jsliteral
