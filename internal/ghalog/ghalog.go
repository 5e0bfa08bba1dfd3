// Package ghalog reports operation results to the GitHub Actions job log.
//
// Each gateway operation publishes its fully rendered result as a titled,
// collapsible log group (the ::group:: / ::endgroup:: workflow commands).
// Outside a GitHub Actions environment the logger is a no-op; nothing in the
// gateway depends on its output for correctness.
package ghalog

import (
	"fmt"
	"io"
	"os"
)

// EnvVar is the environment variable GitHub Actions sets for every running
// step. Its presence is what marks a GHA environment.
const EnvVar = "GITHUB_ACTION"

// OnGHA reports whether the process is running inside GitHub Actions.
func OnGHA() bool {
	_, ok := os.LookupEnv(EnvVar)
	return ok
}

// Logger writes titled, collapsible groups to a job log.
type Logger struct {
	out     io.Writer
	enabled bool
}

// New returns a Logger writing to stdout, enabled only inside GitHub
// Actions.
func New() *Logger {
	return &Logger{out: os.Stdout, enabled: OnGHA()}
}

// NewWithWriter returns a Logger with an explicit writer and enablement,
// for tests and alternate drivers.
func NewWithWriter(w io.Writer, enabled bool) *Logger {
	return &Logger{out: w, enabled: enabled}
}

// Group emits content wrapped in a collapsible group with the given title.
// No-op when the logger is disabled.
func (l *Logger) Group(title, content string) {
	if !l.enabled {
		return
	}
	fmt.Fprintf(l.out, "::group::%s\n", title)
	fmt.Fprintln(l.out, content)
	fmt.Fprintln(l.out, "::endgroup::")
}
