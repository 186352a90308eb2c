// Package utility holds the small value objects shared across option groups:
// animation and shadow settings, interaction states and JavaScript callbacks.
package utility
