package cli

import (
	"errors"
	"io"
	"log/slog"

	"github.com/vk/kwargs/internal/coerce"
	"github.com/vk/kwargs/internal/logging"
	"github.com/vk/kwargs/internal/manager"
	"github.com/vk/kwargs/internal/registry"
)

// OutputFormats lists the accepted values of the output option.
var OutputFormats = []string{"json", "text"}

const appendix = `  Everything after '--' is resolved against the argument declarations in
  'decl' (an .hcl file or a directory of them), and the result is printed
  to stdout.
`

// ExitError carries an exit code for a failure that has already been
// reported to the user.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the tool's resolved configuration.
type Config struct {
	Decl      string `arg:"decl"`
	LogLevel  string `arg:"log-level"`
	LogFormat string `arg:"log-format"`
	Output    string `arg:"output"`

	// Args are the tokens after '--', to be resolved against Decl.
	Args []string `arg:"-"`
}

func declare(m *manager.Manager) error {
	return errors.Join(
		m.Add("decl", "argument declarations (.hcl file or directory)", coerce.ExistingPath()),
		m.Add("log-level", "debug, info, warn or error", coerce.OneOf(logging.Levels...), registry.WithDefault("info")),
		m.Add("log-format", "text or json", coerce.OneOf(logging.Formats...), registry.WithDefault("text")),
		m.Add("output", "json or text", coerce.OneOf(OutputFormats...), registry.WithDefault("json")),
	)
}

// Parse processes the tool's arguments. It returns a populated Config, a
// boolean indicating that the program should exit cleanly, or an ExitError.
// The usage page goes to output.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")

	var cfg Config
	res, err := manager.Bind(manager.Options{
		Program:  "kwargs",
		Appendix: appendix,
		DocHint:  "go doc github.com/vk/kwargs/internal/cli",
		Output:   output,
	}, args, &cfg, declare)
	if errors.Is(err, manager.ErrHelp) {
		slog.Debug("Help requested, exiting.")
		return nil, true, nil
	}
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg.Args = res.Ignored
	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &cfg, false, nil
}
