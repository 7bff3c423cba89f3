package envmap

import (
	"fmt"
)

// LoadError reports a cube face that could not be turned into a texture.
type LoadError struct {
	Face CubeFace
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cube face %v: %v", e.Face, e.Err)
	}
	return fmt.Sprintf("cube face %v (%s): %v", e.Face, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ConfigError reports an unusable conversion parameter.
type ConfigError struct {
	Option string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Option, e.Value, e.Reason)
}

// contractViolation is used for panics on broken internal invariants.
func contractViolation(format string, args ...any) error {
	return fmt.Errorf("envmap: contract violation: "+format, args...)
}
