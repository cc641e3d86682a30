package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/kwargs/internal/coerce"
	"github.com/vk/kwargs/internal/ctxlog"
	"github.com/vk/kwargs/internal/fsutil"
	"github.com/vk/kwargs/internal/registry"
)

// Argument is one declaration read from HCL.
type Argument struct {
	Name        string
	Description string
	Coercer     coerce.Coercer
	Default     any
	HasDefault  bool
}

// Declarations is everything read from one or more declaration files.
type Declarations struct {
	Program   string
	Appendix  string
	Arguments []Argument
}

// Declarer accepts argument declarations. Both registry.Registry and
// manager.Manager implement it.
type Declarer interface {
	Add(name, description string, c coerce.Coercer, opts ...registry.Option) error
}

// Declare adds every argument to target in file order.
func (d *Declarations) Declare(target Declarer) error {
	for _, arg := range d.Arguments {
		var opts []registry.Option
		if arg.HasDefault {
			opts = append(opts, registry.WithDefault(arg.Default))
		}
		if err := target.Add(arg.Name, arg.Description, arg.Coercer, opts...); err != nil {
			return fmt.Errorf("argument %q: %w", arg.Name, err)
		}
	}
	return nil
}

// Loader reads declaration files.
type Loader struct{}

// NewLoader creates a new HCL declaration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every path, which may be a file or a directory of .hcl files.
// Later files override program and appendix; arguments accumulate.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Declarations, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no declaration files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "files", files)

	parser := hclparse.NewParser()
	decls := &Declarations{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if err := l.decodeInto(ctx, decls, hclFile); err != nil {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, err)
		}
	}

	logger.Debug("HCL loading complete.", "arguments", len(decls.Arguments))
	return decls, nil
}

// Parse reads declarations from src. filename is only used in messages.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*Declarations, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	decls := &Declarations{}
	if err := l.decodeInto(ctx, decls, hclFile); err != nil {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, err)
	}
	return decls, nil
}

func (l *Loader) decodeInto(ctx context.Context, decls *Declarations, file *hcl.File) error {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return diags
	}

	if root.Program != nil {
		decls.Program = *root.Program
	}
	if root.Appendix != nil {
		decls.Appendix = *root.Appendix
	}

	for _, b := range root.Arguments {
		arg, err := translateArgument(b)
		if err != nil {
			return fmt.Errorf("argument %q: %w", b.Name, err)
		}
		logger.Debug("Loaded argument declaration.", "name", arg.Name, "type", arg.Coercer.TypeName(), "has_default", arg.HasDefault)
		decls.Arguments = append(decls.Arguments, arg)
	}
	return nil
}

// translateArgument converts an argument block into an Argument.
func translateArgument(b *argumentBlock) (Argument, error) {
	kindName, kind, err := kindOf(b)
	if err != nil {
		return Argument{}, err
	}
	c, err := coercerFor(b, kindName, kind)
	if err != nil {
		return Argument{}, err
	}
	def, hasDefault, err := defaultFor(b, kind)
	if err != nil {
		return Argument{}, err
	}
	return Argument{
		Name:        b.Name,
		Description: b.Description,
		Coercer:     c,
		Default:     def,
		HasDefault:  hasDefault,
	}, nil
}
