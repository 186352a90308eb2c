// Package validate provides the primitive checks every option field is built on.
//
// Each validator normalizes a raw value decoded from JSON or YAML (or passed
// by a caller) into a typed pointer, or rejects it with a *ValidationError.
// A nil result with a nil error means the value was empty and emptiness was
// allowed. Validators have no side effects.
package validate
