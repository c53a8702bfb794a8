package redux

import "errors"

var (
	// ErrInvalidReducer is returned when a nil reducer is passed to New or ReplaceReducer.
	ErrInvalidReducer = errors.New("reducer must not be nil")

	// ErrInvalidEnhancer is returned when a nil enhancer is passed to WithEnhancer.
	ErrInvalidEnhancer = errors.New("enhancer must not be nil")

	// ErrInvalidAction is returned when a dispatched action has an empty type.
	ErrInvalidAction = errors.New("action type must not be empty")

	// ErrReentrantDispatch is returned when Dispatch is called while a reducer is executing.
	ErrReentrantDispatch = errors.New("dispatch called while the reducer is executing")

	// ErrInvalidListener is returned when a nil listener is passed to Subscribe.
	ErrInvalidListener = errors.New("listener must not be nil")

	// ErrUndefinedReducerResult is returned when a combined reducer member returns nil state.
	ErrUndefinedReducerResult = errors.New("reducer returned nil state")

	// ErrReducerShapeViolation is returned on every call to a combined reducer
	// whose members failed shape validation at composition time.
	ErrReducerShapeViolation = errors.New("reducer shape validation failed")

	// ErrInvalidActionCreators is returned when BindActionCreators is given a nil
	// creator, a nil creator map, or a nil dispatch function.
	ErrInvalidActionCreators = errors.New("action creators and dispatch must not be nil")

	// ErrInvalidObserver is returned when an observer without a Next callback is
	// passed to Observable.Subscribe.
	ErrInvalidObserver = errors.New("observer must provide a Next callback")

	// ErrEarlyDispatch is returned when a middleware dispatches while the
	// middleware chain is still being constructed. Other middleware would not be
	// applied to such a dispatch, so it is rejected instead.
	ErrEarlyDispatch = errors.New("dispatching while constructing middleware is not allowed")
)
