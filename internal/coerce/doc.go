// Package coerce defines the conversion functions that turn a raw command-line
// string into a typed value.
//
// A Coercer doubles as a validator: returning an error rejects the input.
// Callers can wrap any function with New, so domain checks such as "an
// existing file" or "an integer between 1 and 4" are ordinary coercers and
// not a closed set of types.
package coerce
