package fieldstyle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedVersion is returned for an apiVersion this package cannot read.
	ErrUnsupportedVersion = errors.New("fieldstyle: unsupported apiVersion")
	// ErrUnknownColor is returned for a color that is neither a known name nor hex.
	ErrUnknownColor = errors.New("fieldstyle: unknown color")
	// ErrUnknownCurve is returned for a transition curve name with no easing function.
	ErrUnknownCurve = errors.New("fieldstyle: unknown curve")
)

// FieldError describes one rejected style field.
type FieldError struct {
	// Field is the dotted struct path, e.g. "Metrics.Height".
	Field string
	// Rule is the violated validation rule, e.g. "gt".
	Rule string
	// Param is the rule parameter, e.g. "0".
	Param string
}

func (e FieldError) String() string {
	if e.Param != "" {
		return fmt.Sprintf("%s must satisfy %s=%s", e.Field, e.Rule, e.Param)
	}
	return fmt.Sprintf("%s must satisfy %s", e.Field, e.Rule)
}

// ValidationError reports every field of a style that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "fieldstyle: invalid style: " + strings.Join(parts, "; ")
}
