// Package options implements the generic functional option pattern used by
// every configurable type in this module.
//
// Components alias Option to their own target type and expose WithXxx()
// helpers built on New or NoError, keeping validation at construction time.
package options

// Option configures a target of type T and may reject invalid values.
type Option[T any] func(T) error

// New wraps a fallible configuration function as an Option.
func New[T any](fn func(T) error) Option[T] {
	return fn
}

// NoError wraps an infallible configuration function as an Option.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply runs the options against target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}
