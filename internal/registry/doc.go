// Package registry holds the ordered set of argument declarations.
//
// Each declaration gets a 1-based ordinal in the order it was added. The
// ordinal drives positional matching and the row order of the usage table;
// the name drives keyword matching. A Registry is built up front and is not
// modified while it is being resolved.
package registry
