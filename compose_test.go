package redux_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tedyhy/redux"
)

func TestCompose(t *testing.T) {
	t.Parallel()

	double := func(x int) int { return x * 2 }
	inc := func(x int) int { return x + 1 }
	square := func(x int) int { return x * x }

	t.Run("zero functions is identity", func(t *testing.T) {
		t.Parallel()
		id := redux.Compose[int]()
		assert.Equal(t, 7, id(7))
	})

	t.Run("one function is returned unchanged", func(t *testing.T) {
		t.Parallel()
		composed := redux.Compose(double)
		assert.Equal(t, 10, composed(5))
	})

	t.Run("applies right to left", func(t *testing.T) {
		t.Parallel()
		composed := redux.Compose(double, inc, square)
		// double(inc(square(3))) = double(inc(9)) = double(10) = 20
		assert.Equal(t, 20, composed(3))
	})

	t.Run("composes string pipelines", func(t *testing.T) {
		t.Parallel()
		wrap := func(s string) string { return "(" + s + ")" }
		shout := func(s string) string { return s + "!" }
		composed := redux.Compose(wrap, shout)
		assert.Equal(t, "(hi!)", composed("hi"))
	})
}
