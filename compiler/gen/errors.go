package gen

import (
	"errors"
	"fmt"
)

// Sentinels matched by errors.Is on the typed errors below.
var (
	ErrInvalidConfig = errors.New("scriptgen: invalid configuration")
	ErrNotGenerated  = errors.New("scriptgen: script not generated")
)

// Phase is the generation step a GenerationError occurred in.
type Phase string

const (
	PhaseResolve Phase = "resolve"
	PhaseClean   Phase = "clean"
	PhaseRender  Phase = "render"
	PhaseEncode  Phase = "encode"
	PhaseWrite   Phase = "write"
)

// ConfigError reports an option that could not be applied.
type ConfigError struct {
	Option string
	Err    error
}

func newConfigError(option string, err error) *ConfigError {
	return &ConfigError{Option: option, Err: err}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("scriptgen: option %s: %v", e.Option, e.Err)
}

// Unwrap exposes ErrInvalidConfig and the cause.
func (e *ConfigError) Unwrap() []error {
	return []error{ErrInvalidConfig, e.Err}
}

// GenerationError reports a script that was not written, or a directory
// whose scripts were all skipped.
type GenerationError struct {
	Phase Phase
	// Path is the script, or the directory for PhaseClean. It is empty when
	// the destination could not be resolved.
	Path string
	// Request is the failed script. Zero for PhaseClean.
	Request Request
	Err     error
}

func (e *GenerationError) Error() string {
	at := e.Path
	if at == "" {
		at = e.Request.String()
	}
	return fmt.Sprintf("scriptgen: %s %s: %v", e.Phase, at, e.Err)
}

// Unwrap exposes ErrNotGenerated and the cause.
func (e *GenerationError) Unwrap() []error {
	return []error{ErrNotGenerated, e.Err}
}
