// Package hcl loads argument declarations from HCL files, so a program's
// command line can be described without writing Go:
//
//	program  = "resample"
//	appendix = "  Methods are: 1 -> fast, 2 -> exact\n"
//
//	argument "sourcefile" {
//	  type        = existing_path
//	  description = "input file path"
//	}
//
//	argument "nsamples" {
//	  type        = int
//	  description = "sampling count"
//	  default     = 10
//	  min         = 1
//	}
//
// Argument blocks keep their order across files, and their order defines the
// positional order. Defaults are converted to the Go type of the argument's
// kind with go-cty.
package hcl
