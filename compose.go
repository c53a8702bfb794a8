package redux

// Compose combines single-argument functions from right to left:
// Compose(f, g, h) returns a function computing f(g(h(x))).
//
// With no arguments it returns the identity function, with one argument the
// function itself. It is the building block for dispatch pipelines and
// enhancer chains.
func Compose[T any](fns ...func(T) T) func(T) T {
	switch len(fns) {
	case 0:
		return func(v T) T { return v }
	case 1:
		return fns[0]
	}

	composed := fns[0]
	for _, fn := range fns[1:] {
		outer, inner := composed, fn
		composed = func(v T) T { return outer(inner(v)) }
	}
	return composed
}
