// Package hook composes middleware-style hooks of the form func(next T) T.
package hook

import "slices"

// Chain composes hooks so that the first hook is the outermost one.
func Chain[T any](hooks ...func(next T) T) func(next T) T {
	hooks = slices.Clone(hooks)
	return func(next T) T {
		for i := len(hooks) - 1; i >= 0; i-- {
			if hooks[i] == nil {
				continue
			}
			next = hooks[i](next)
		}
		return next
	}
}

// Prepend places hooks in front of an existing hook, which may be nil.
func Prepend[T any](existing func(next T) T, hooks ...func(next T) T) func(next T) T {
	if existing == nil {
		return Chain(hooks...)
	}
	return Chain(append(slices.Clone(hooks), existing)...)
}

// Append places hooks after an existing hook, which may be nil.
func Append[T any](existing func(next T) T, hooks ...func(next T) T) func(next T) T {
	if existing == nil {
		return Chain(hooks...)
	}
	return Chain(append([]func(next T) T{existing}, hooks...)...)
}
