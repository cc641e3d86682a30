package manager

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vk/kwargs/internal/coerce"
	"github.com/vk/kwargs/internal/registry"
	"github.com/vk/kwargs/internal/resolver"
	"github.com/vk/kwargs/internal/usage"
)

// ErrHelp is returned by Parse and Bind after the usage page was shown on
// request.
var ErrHelp = errors.New("help has been shown")

// Options configures a Manager. The zero value is usable.
type Options struct {
	// Program is shown in the usage line. Defaults to the base name of os.Args[0].
	Program string
	// Appendix is printed verbatim after the argument table.
	Appendix string
	// DocHint replaces the documentation pointer of the usage page.
	DocHint string
	// Scope, if set, receives every resolved name and value on success.
	Scope map[string]any
	// Output receives the usage page. Defaults to os.Stderr.
	Output io.Writer
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Manager owns a Registry and resolves raw arguments against it.
type Manager struct {
	opts     Options
	registry *registry.Registry
	logger   *slog.Logger
}

// New creates a Manager with no declarations.
func New(opts Options) *Manager {
	if opts.Program == "" && len(os.Args) > 0 {
		opts.Program = filepath.Base(os.Args[0])
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		opts:     opts,
		registry: registry.New(),
		logger:   logger,
	}
}

// Add declares an argument. See registry.Registry.Add.
func (m *Manager) Add(name, description string, c coerce.Coercer, opts ...registry.Option) error {
	return m.registry.Add(name, description, c, opts...)
}

// Registry returns the underlying declarations.
func (m *Manager) Registry() *registry.Registry {
	return m.registry
}

// Usage returns the usage page.
func (m *Manager) Usage() string {
	return usage.Format(m.page(), m.registry.Specs())
}

// Resolve resolves args and prints the usage page when help was requested or
// resolution failed.
func (m *Manager) Resolve(args []string) resolver.Result {
	m.logger.Debug("Resolving arguments.", "program", m.opts.Program, "count", len(args), "declared", m.registry.Len())
	res := resolver.Resolve(m.registry, args)

	switch res.Outcome {
	case resolver.HelpRequested:
		m.logger.Debug("Help requested, printing usage.")
		m.write(m.Usage())
	case resolver.Failed:
		m.logger.Debug("Argument resolution failed.", "error", res.Err)
		m.write(usage.Failure(m.page(), m.registry.Specs(), res.Err))
	case resolver.Resolved:
		if m.opts.Scope != nil {
			for name, v := range res.Values {
				m.opts.Scope[name] = v
			}
		}
		m.logger.Debug("Arguments resolved.", "values", len(res.Values), "ignored", len(res.Ignored))
	}
	return res
}

// Parse is Resolve for callers that prefer an error. It returns ErrHelp after
// printing the usage page on request.
func (m *Manager) Parse(args []string) (resolver.Values, error) {
	res := m.Resolve(args)
	switch res.Outcome {
	case resolver.HelpRequested:
		return nil, ErrHelp
	case resolver.Failed:
		return nil, res.Err
	}
	return res.Values, nil
}

// Bind declares arguments with declare, resolves args and decodes the values
// into target, a pointer to a struct with `arg` tags. When opts.Scope is set
// it is filled as well. Help and failures are printed like Resolve does and
// reported as ErrHelp or the resolution error.
func Bind(opts Options, args []string, target any, declare func(m *Manager) error) (resolver.Result, error) {
	m := New(opts)
	if err := declare(m); err != nil {
		return resolver.Result{}, fmt.Errorf("failed to declare arguments: %w", err)
	}

	res := m.Resolve(args)
	switch res.Outcome {
	case resolver.HelpRequested:
		return res, ErrHelp
	case resolver.Failed:
		return res, res.Err
	}
	if target != nil {
		if err := res.Values.Decode(target); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (m *Manager) page() usage.Page {
	return usage.Page{
		Program:  m.opts.Program,
		Appendix: m.opts.Appendix,
		DocHint:  m.opts.DocHint,
	}
}

func (m *Manager) write(s string) {
	if _, err := io.WriteString(m.opts.Output, s); err != nil {
		m.logger.Warn("Failed to write usage page.", "error", err)
	}
}
