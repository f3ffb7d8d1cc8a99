/*
Package hook defines the result type returned by query hooks to a host engine.
*/
package hook

/*
Result tells the host whether the returned value supersedes the host's own
value (Override) or whether the host should fall through to its native
behaviour (NoOverride).
*/
type Result[T any] struct {
	value    T
	override bool
}

// NoOverride returns a result that lets the host default proceed.
func NoOverride[T any]() Result[T] {
	return Result[T]{}
}

// Override returns a result carrying a value that replaces the host default.
func Override[T any](v T) Result[T] {
	return Result[T]{value: v, override: true}
}

// Overrides reports whether the host must use Value instead of its default.
func (r Result[T]) Overrides() bool {
	return r.override
}

// Value returns the carried value. It is the zero value for NoOverride.
func (r Result[T]) Value() T {
	return r.value
}

// Or returns the carried value when the result overrides, otherwise fallback.
func (r Result[T]) Or(fallback T) T {
	if r.override {
		return r.value
	}
	return fallback
}
