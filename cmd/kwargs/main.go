// kwargs resolves a command line against argument declarations kept in HCL
// files and prints the typed result. It is handy for shell scripts that want
// name=value arguments with validation and a generated usage page:
//
//	kwargs decl=resample.hcl -- infile sinkfile=outfile nsamples=20
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/vk/kwargs/internal/cli"
	"github.com/vk/kwargs/internal/ctxlog"
	"github.com/vk/kwargs/internal/hcl"
	"github.com/vk/kwargs/internal/logging"
	"github.com/vk/kwargs/internal/manager"
	"github.com/vk/kwargs/internal/registry"
	"github.com/vk/kwargs/internal/resolver"
)

// main is the entrypoint for the kwargs tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			// The usage page already explained what went wrong.
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, errW)
	if err != nil {
		return err
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)

	decls, err := hcl.NewLoader().Load(ctx, cfg.Decl)
	if err != nil {
		return fmt.Errorf("failed to load declarations: %w", err)
	}

	program := decls.Program
	if program == "" {
		program = "kwargs decl=" + cfg.Decl + " --"
	}
	m := manager.New(manager.Options{
		Program:  program,
		Appendix: decls.Appendix,
		Output:   errW,
		Logger:   logger,
	})
	if err := decls.Declare(m); err != nil {
		return fmt.Errorf("invalid declarations: %w", err)
	}

	res := m.Resolve(cfg.Args)
	switch res.Outcome {
	case resolver.HelpRequested:
		return nil
	case resolver.Failed:
		return &cli.ExitError{Code: 1, Message: res.Err.Error()}
	}

	if cfg.Output == "text" {
		return writeText(outW, m.Registry().Specs(), res)
	}
	return writeJSON(outW, res)
}

// writeJSON prints the values and ignored tokens as one JSON object.
func writeJSON(w io.Writer, res resolver.Result) error {
	out, err := json.MarshalIndent(struct {
		Values  resolver.Values `json:"values"`
		Ignored []string        `json:"ignored"`
	}{res.Values, res.Ignored}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode values: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// writeText prints one name=value line per argument in declaration order,
// followed by the ignored tokens, if any.
func writeText(w io.Writer, specs []registry.Spec, res resolver.Result) error {
	var b strings.Builder
	for _, spec := range specs {
		fmt.Fprintf(&b, "%s=%v\n", spec.Name, res.Values[spec.Name])
	}
	if len(res.Ignored) > 0 {
		fmt.Fprintf(&b, "-- %s\n", strings.Join(res.Ignored, " "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
