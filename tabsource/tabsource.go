// Package tabsource obtains raw tablature text from an external renderer.
//
// A Source returns its text as a value. Renderers that only print their
// tablature are wrapped with Command, which runs them as a subprocess and
// returns what they wrote to standard output.
package tabsource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/signadot/tabflow/debug"
)

var ErrSource = errors.New("tab source error")

// waitDelay bounds how long a cancelled command's output is drained.
const waitDelay = time.Second

type Source interface {
	Tab(ctx context.Context) (string, error)
}

type SourceFunc func(ctx context.Context) (string, error)

func (f SourceFunc) Tab(ctx context.Context) (string, error) { return f(ctx) }

// Text returns s.
func Text(s string) Source {
	return SourceFunc(func(context.Context) (string, error) { return s, nil })
}

// Reader reads r to the end.
func Reader(r io.Reader) Source {
	return SourceFunc(func(ctx context.Context) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		d, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("%w: error reading: %w", ErrSource, err)
		}
		return string(d), nil
	})
}

// File reads the file at path, or standard input if path is "-".
func File(path string) Source {
	if path == "-" {
		return Reader(os.Stdin)
	}
	return SourceFunc(func(ctx context.Context) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		d, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("%w: could not open %q: %w", ErrSource, path, err)
		}
		return string(d), nil
	})
}

// Command runs cmd with "sh -c" and returns its standard output. A non
// zero exit is an error carrying the command's standard error.
func Command(cmd string) Source {
	return SourceFunc(func(ctx context.Context) (string, error) {
		c := exec.CommandContext(ctx, "sh", "-c", cmd)
		var stdout, stderr bytes.Buffer
		c.Stdout = &stdout
		c.Stderr = &stderr
		c.WaitDelay = waitDelay
		if debug.Source() {
			debug.Logf("source: running %q\n", cmd)
		}
		if err := c.Run(); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", ctxErr
			}
			msg := strings.TrimSpace(stderr.String())
			if msg != "" {
				return "", fmt.Errorf("%w: command %q: %w: %s", ErrSource, cmd, err, msg)
			}
			return "", fmt.Errorf("%w: command %q: %w", ErrSource, cmd, err)
		}
		if debug.Source() {
			debug.Logf("source: %q wrote %d bytes\n", cmd, stdout.Len())
		}
		return stdout.String(), nil
	})
}
