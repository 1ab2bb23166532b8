// Package types defines the domain entities, closed enums, configuration,
// and standard error values for the game rental store.
package types
