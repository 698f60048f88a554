package solgen

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Standard sentinel errors for the three failure classes of contract generation.
var (
	// ErrInvalidOptions is matched by OptionsError. It marks an option
	// combination the kind builders do not offer.
	ErrInvalidOptions = errors.New("solgen: invalid options")

	// ErrConfiguration is matched by ConfigurationError. It marks a defect in a
	// kind builder or a malformed contract model.
	ErrConfiguration = errors.New("solgen: configuration error")

	// ErrIntegrity is matched by IntegrityError. It marks a vendor catalog that
	// is out of sync with the modules the builders reference.
	ErrIntegrity = errors.New("solgen: integrity error")
)

// OptionsError reports that a named option combination is unsupported.
// Generators skip combinations failing with this error; every other error
// aborts the batch.
type OptionsError struct {
	Messages map[string]string // option name -> reason
}

// Error returns the error string. Options are listed in sorted order.
func (e *OptionsError) Error() string {
	if len(e.Messages) == 0 {
		return "solgen: invalid options"
	}
	keys := make([]string, 0, len(e.Messages))
	for k := range e.Messages {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var b strings.Builder
	b.WriteString("solgen: invalid options:")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(";")
		}
		fmt.Fprintf(&b, " %s: %s", k, e.Messages[k])
	}
	return b.String()
}

// Is reports whether the target error matches ErrInvalidOptions.
func (e *OptionsError) Is(target error) bool {
	return target == ErrInvalidOptions
}

// NewOptionsError returns an OptionsError for a single option.
func NewOptionsError(option, message string) *OptionsError {
	return &OptionsError{Messages: map[string]string{option: message}}
}

// IsOptionsError returns true if the error is an OptionsError.
func IsOptionsError(err error) bool {
	if err == nil {
		return false
	}
	var e *OptionsError
	return errors.As(err, &e)
}

// ConfigurationError represents a programmer defect: an override registered
// against a parent that was never attached, the removal of an override that
// was never registered, or a model the printer cannot render.
type ConfigurationError struct {
	Contract string // Contract being built
	Function string // Function signature involved, if any
	Message  string
}

// Error returns the error string.
func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString("solgen: configuration error")
	if e.Contract != "" {
		b.WriteString(" in contract ")
		b.WriteString(e.Contract)
	}
	if e.Function != "" {
		b.WriteString(" function ")
		b.WriteString(e.Function)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target error matches ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError returns a new ConfigurationError.
func NewConfigurationError(contract, function, message string) *ConfigurationError {
	return &ConfigurationError{Contract: contract, Function: function, Message: message}
}

// IsConfigurationError returns true if the error is a ConfigurationError.
func IsConfigurationError(err error) bool {
	if err == nil {
		return false
	}
	var e *ConfigurationError
	return errors.As(err, &e)
}

// IntegrityError reports a required import path with no source in the
// vendor catalog.
type IntegrityError struct {
	Path string // Import path that could not be resolved
	Root string // Contract file being bundled
}

// Error returns the error string.
func (e *IntegrityError) Error() string {
	if e.Root != "" {
		return fmt.Sprintf("solgen: source for %s not found (required by %s)", e.Path, e.Root)
	}
	return fmt.Sprintf("solgen: source for %s not found", e.Path)
}

// Is reports whether the target error matches ErrIntegrity.
func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}

// NewIntegrityError returns a new IntegrityError.
func NewIntegrityError(path, root string) *IntegrityError {
	return &IntegrityError{Path: path, Root: root}
}

// IsIntegrityError returns true if the error is an IntegrityError.
func IsIntegrityError(err error) bool {
	if err == nil {
		return false
	}
	var e *IntegrityError
	return errors.As(err, &e)
}
