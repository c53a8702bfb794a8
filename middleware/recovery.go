package middleware

import (
	"fmt"

	"github.com/tedyhy/redux"
)

// Recovery returns a middleware that converts panics escaping the downstream
// dispatch, such as a panicking reducer or listener, into errors. The store's
// dispatch guard is released before the panic reaches this middleware, so the
// store remains usable afterwards.
func Recovery[S any]() redux.Middleware[S] {
	return func(api redux.MiddlewareAPI[S]) func(next redux.Dispatch) redux.Dispatch {
		return func(next redux.Dispatch) redux.Dispatch {
			return func(action redux.Action) (out redux.Action, err error) {
				defer func() {
					if r := recover(); r != nil {
						out = action
						err = fmt.Errorf("panic while dispatching action type %q: %v", action.Type, r)
					}
				}()
				return next(action)
			}
		}
	}
}
