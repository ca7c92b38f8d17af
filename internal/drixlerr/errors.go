// Package drixlerr defines the error taxonomy shared by the codecs,
// the converter, and the context store. Every error carries the offending
// value and the expected shape so callers can act without re-parsing input.
package drixlerr

import (
	"fmt"
	"strings"
)

// ParseError reports structurally invalid message text: too few lines,
// unparseable markup, a wrong root element, or a missing required section.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "drixl: parse error: " + e.Reason
}

// InvalidVerbError reports an action token outside the verb vocabulary.
type InvalidVerbError struct {
	Verb string
}

func (e *InvalidVerbError) Error() string {
	return fmt.Sprintf("drixl: unknown verb %q (run verbs.All() for the vocabulary)", e.Verb)
}

// InvalidEnumError reports a value outside one of the protocol's closed sets.
type InvalidEnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("drixl: invalid %s %q, must be one of %s",
		e.Field, e.Value, strings.Join(e.Allowed, "|"))
}

// FormatError reports message text whose format cannot be detected.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "drixl: " + e.Reason
}

// StoreError reports a context store backend failure. Backend
// misconfiguration surfaces with Op "connect" at construction time.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("drixl: context store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
