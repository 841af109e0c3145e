package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger returns the command logger. Warnings and errors are shown by
// default, --verbose adds debug output and --quiet keeps only errors.
func (g *globalOptions) newLogger(out io.Writer) hclog.Logger {
	level := hclog.Warn
	switch {
	case g.quiet:
		level = hclog.Error
	case g.verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:        "huewheel",
		Output:      out,
		Level:       level,
		DisableTime: true,
	})
}
