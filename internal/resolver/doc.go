// Package resolver turns a Registry and a raw argument list into typed values.
//
// Arguments may be given positionally, as name=value keywords, or mixed.
// Positional values fill the lowest unfilled ordinal; keywords fill their
// named slot wherever it is. Everything after a "--" separator is ignored
// and handed back to the caller untouched. A help keyword anywhere before
// the separator wins over every other token.
//
// Resolution is all-or-nothing and has no side effects: printing the usage
// page and deciding the exit code belong to the caller.
package resolver
