// Package schema defines the declarative circuit document: the YAML/JSON form
// of a signalx circuit, its validation, and the conversion to and from live
// circuits.
//
// Document invariants:
//   - Node names are unique and non-empty
//   - Every name listed in inputs/outputs is declared
//   - Initial states are booleans; anything else is a type constraint violation
package schema
