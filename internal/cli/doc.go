// Package cli parses the kwargs tool's own command line and carries exit
// codes to main. The tool's options are declared and resolved with the same
// resolver it exposes, so `kwargs help` prints the familiar usage table.
package cli
