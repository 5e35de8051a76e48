package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingUsername = errors.New("missing username")
	ErrEmptyPool       = errors.New("draw pool is empty")
	ErrUnmappedRarity  = errors.New("rarity has no configured weight")
)

// ValidationError is returned when a request carries invalid input.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ConfigError reports an inconsistency between the catalog and the weight table.
// It is raised while wiring the application, never per request.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err == nil {
		return "configuration error: " + e.Reason
	}
	return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a failed store call.
type PersistenceError struct {
	Op       string
	Username string
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error during %s for %q: %v", e.Op, e.Username, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsConfig(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}

func IsPersistence(err error) bool {
	var target *PersistenceError
	return errors.As(err, &target)
}
