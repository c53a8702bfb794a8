// Package redux is a predictable state container for Go applications.
//
// A Store holds a single state tree that can only change by dispatching
// actions: plain data records describing what happened. A pure Reducer
// computes the next state from the current state and an action, and
// registered listeners are notified synchronously after every completed
// dispatch. The result is one authoritative, inspectable source of truth
// instead of scattered mutable state.
//
// # Creating a store
//
//	counter := func(state int, action redux.Action) (int, error) {
//	    switch action.Type {
//	    case "INCREMENT":
//	        return state + 1, nil
//	    case "DECREMENT":
//	        return state - 1, nil
//	    default:
//	        return state, nil
//	    }
//	}
//
//	store, err := redux.New(counter)
//	if err != nil { /* ... */ }
//
//	_, _ = store.Dispatch(redux.Action{Type: "INCREMENT"})
//	current := store.GetState() // 1
//
// On creation the store dispatches a reserved INIT action so every reducer
// contributes its initial state before the first read. Reducers must treat
// reserved action types as unknown and fall through to their default case.
//
// # Combining reducers
//
// CombineReducers assembles a state tree from independent reducers, one per
// top-level key:
//
//	root := redux.CombineReducers(map[string]redux.Reducer[any]{
//	    "count": countReducer,
//	    "todos": todosReducer,
//	})
//	store, err := redux.New(root)
//
// The combined reducer returns the input map unchanged, by reference, when no
// key's sub-state changed, so downstream code can detect changes with a plain
// identity comparison.
//
// # Middleware
//
// ApplyMiddleware is a store enhancer that wraps dispatch with a chain of
// interceptors, for example the ready-made ones in the middleware
// subpackage:
//
//	store, err := redux.New(root,
//	    redux.WithEnhancer(redux.ApplyMiddleware(
//	        middleware.Recovery[map[string]any](),
//	        middleware.Logger[map[string]any](nil),
//	    )),
//	)
//
// # Listeners and subscriptions
//
// Subscribe registers a zero-argument listener invoked after each dispatch.
// Listener bookkeeping is copy-on-write: subscribing or unsubscribing from
// inside a listener never disturbs the in-flight notification pass and takes
// effect on the next dispatch. The returned Unsubscribe is idempotent.
//
// # Concurrency
//
// A store assumes a single logical thread of control, consistent with
// event-loop style callers. Dispatch is one synchronous call stack (reducer,
// then listeners) and dispatching from inside a reducer is rejected with
// ErrReentrantDispatch. Callers sharing a store across goroutines must
// synchronize externally.
//
// # Diagnostics
//
// Non-fatal developer diagnostics (dropped reducer keys, unexpected state
// keys, unbound action creators) are reported through a WarningSink when the
// application runs outside production (see pkg/environment). They never
// affect core behavior.
package redux
