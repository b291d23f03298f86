// Package ioformat reads the specification and dataset files that drive a
// run: CSV parsing for both, with taxonomy-aware errors surfaced to the
// caller rather than treated as internal invariant breaches.
package ioformat

import "fmt"

// ConfigError reports a malformed specification file (wrong field count or
// an unparseable integer/float) or a malformed dataset line.
type ConfigError struct {
	Field   string
	Message string
}

func (e ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// IoError reports a missing or unreadable dataset/spec file.
type IoError struct {
	Path    string
	Message string
}

func (e IoError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}
