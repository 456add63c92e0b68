// Package logging configures the structured logger shared by cmapgen commands.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Options configures a logger.
type Options struct {
	// Name is the logger name prefixed to every line.
	Name string

	// Verbose enables debug output.
	Verbose bool

	// Quiet suppresses everything below error level. Verbose wins when both are set.
	Quiet bool

	// Output is where log lines are written. If nil, os.Stderr is used.
	Output io.Writer
}

// New creates an hclog logger writing to stderr at a level chosen by the flags.
func New(name string, verbose, quiet bool) hclog.Logger {
	return NewWithOptions(Options{Name: name, Verbose: verbose, Quiet: quiet})
}

// NewWithOptions creates an hclog logger from opts.
func NewWithOptions(opts Options) hclog.Logger {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   opts.Name,
		Output: output,
		Level:  Level(opts.Verbose, opts.Quiet),
	})
}

// Level maps the verbosity flags to an hclog level.
func Level(verbose, quiet bool) hclog.Level {
	switch {
	case verbose:
		return hclog.Debug
	case quiet:
		return hclog.Error
	default:
		return hclog.Info
	}
}

// OrNull returns logger, or a logger that discards everything when it is nil.
func OrNull(logger hclog.Logger) hclog.Logger {
	if logger == nil {
		return hclog.NewNullLogger()
	}
	return logger
}
