// Package registry maps canonical resource type names to the constructors
// that build plan nodes.
//
// The registry is populated once at startup by each resource module's
// Register method and is read-only afterwards. Registering the same type
// twice is a programming error and panics.
package registry
