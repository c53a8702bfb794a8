// Package middleware provides ready-made redux middlewares.
//
// Middlewares wrap a store's dispatch with cross-cutting behavior. They are
// installed through redux.ApplyMiddleware; the first middleware listed is the
// outermost wrapper:
//
//	store, err := redux.New(reducer,
//	    redux.WithEnhancer(redux.ApplyMiddleware(
//	        middleware.Recovery[State](),
//	        middleware.Logger[State](nil),
//	    )),
//	)
//
// Logger records every action's type, outcome and duration through log/slog.
// Recovery converts panics from reducers or listeners into plain errors so a
// misbehaving transition cannot take down the caller.
package middleware
