package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a declaration file.
type fileRoot struct {
	Program   *string          `hcl:"program,optional"`
	Appendix  *string          `hcl:"appendix,optional"`
	Arguments []*argumentBlock `hcl:"argument,block"`
}

// argumentBlock is one `argument "name" { ... }` block.
type argumentBlock struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type,optional"`
	Description string         `hcl:"description,optional"`
	Default     hcl.Expression `hcl:"default,optional"`
	Min         *int           `hcl:"min,optional"`
	Max         *int           `hcl:"max,optional"`
	OneOf       []string       `hcl:"one_of,optional"`
}
