package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for generator failures.
var (
	// ErrInvalidConfig indicates a generator configuration error.
	ErrInvalidConfig = errors.New("solgen: invalid generator configuration")
	// ErrGenerationFailed indicates that a combination could not be built,
	// printed or written.
	ErrGenerationFailed = errors.New("solgen: generation failed")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("solgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("solgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// Generation phases.
const (
	PhaseBuild = "build"
	PhasePrint = "print"
	PhaseWrite = "write"
)

// GenerationError reports a combination that failed for any reason other
// than an unsupported option set. It carries the serialized options so the
// offending combination can be reproduced.
type GenerationError struct {
	Phase   string // build, print or write
	Kind    Kind
	ID      string
	Options string // options document, see MarshalOptions
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("solgen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.Kind != "" {
		b.WriteString(" for ")
		b.WriteString(string(e.Kind))
	}
	if e.ID != "" {
		b.WriteString(" (id: ")
		b.WriteString(e.ID)
		b.WriteString(")")
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	if e.Options != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(e.Options, "\n"))
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a GenerationError for o.
func NewGenerationError(phase string, o Options, id string, cause error) *GenerationError {
	e := &GenerationError{Phase: phase, ID: id, Cause: cause}
	if o != nil {
		e.Kind = o.Kind()
		if doc, err := MarshalOptions(o); err == nil {
			e.Options = string(doc)
		}
	}
	return e
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
