// Package issue turns a failed inventory run into one message naming the
// step that failed and the mods folder or file it was working on.
package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ActionableError is what the CLI prints when a run stops: the step
// ("locate mod list"), the path involved and hints such as --file.
type ActionableError struct {
	Operation   string
	Resource    string
	Suggestions []string
	Cause       error
}

func (e *ActionableError) Error() string {
	var msg strings.Builder
	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)
	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}
	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}
	return msg.String()
}

func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format adds the hints as bullets. With --verbose it also lists every
// wrapped cause, down to the JSON decoder error for a broken mod list.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder
	msg.WriteString(e.Error())
	if len(e.Suggestions) > 0 {
		msg.WriteString("\n")
		for _, suggestion := range e.Suggestions {
			msg.WriteString("\n  • ")
			msg.WriteString(suggestion)
		}
	}
	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		depth := 1
		for err := e.Cause; err != nil; err = errors.Unwrap(err) {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
			depth++
		}
	}
	return msg.String()
}

// ErrorContext collects the parts of an ActionableError at the failure site.
type ErrorContext struct {
	operation   string
	resource    string
	suggestions []string
	cause       error
}

func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

func (c *ErrorContext) WithOperation(operation string) *ErrorContext {
	c.operation = operation
	return c
}

func (c *ErrorContext) WithResource(resource string) *ErrorContext {
	c.resource = resource
	return c
}

func (c *ErrorContext) WithSuggestion(suggestion string) *ErrorContext {
	c.suggestions = append(c.suggestions, suggestion)
	return c
}

func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

func (c *ErrorContext) Build() *ActionableError {
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: append([]string(nil), c.suggestions...),
		Cause:       c.cause,
	}
}

// FormatForDisplay is the single place the CLI renders a fatal error.
func FormatForDisplay(err error, verbose bool) string {
	var actionable *ActionableError
	if errors.As(err, &actionable) {
		return actionable.Format(verbose)
	}
	return err.Error()
}
