package redux

// MiddlewareAPI is the narrow store surface handed to each middleware. Its
// Dispatch sends the action through the whole chain from the top, not just
// the remainder of it.
type MiddlewareAPI[S any] struct {
	GetState func() S
	Dispatch Dispatch
}

// Middleware wraps a store's dispatch with cross-cutting behavior. It is
// invoked once at store creation with the MiddlewareAPI and returns a
// function transforming the next dispatch in the chain into a new one.
type Middleware[S any] func(api MiddlewareAPI[S]) func(next Dispatch) Dispatch

// ApplyMiddleware returns a store enhancer that threads every dispatched
// action through the given middlewares, first middleware outermost, before it
// reaches the store's base dispatch.
//
// The MiddlewareAPI's Dispatch is bound in two phases: while the chain is
// being constructed it reports ErrEarlyDispatch, and once every middleware
// has been applied it is sealed to the final composed dispatch. A middleware
// must therefore not dispatch during its own construction.
//
//	store, err := redux.New(reducer,
//		redux.WithEnhancer(redux.ApplyMiddleware(middleware.Logger[State](nil))),
//	)
func ApplyMiddleware[S any](middlewares ...Middleware[S]) Enhancer[S] {
	return func(next StoreCreator[S]) StoreCreator[S] {
		return func(reducer Reducer[S], preloaded S) (Store[S], error) {
			base, err := next(reducer, preloaded)
			if err != nil {
				return nil, err
			}

			dispatch := Dispatch(func(action Action) (Action, error) {
				return action, ErrEarlyDispatch
			})
			api := MiddlewareAPI[S]{
				GetState: base.GetState,
				Dispatch: func(action Action) (Action, error) {
					return dispatch(action)
				},
			}

			chain := make([]func(Dispatch) Dispatch, 0, len(middlewares))
			for _, mw := range middlewares {
				if mw == nil {
					continue
				}
				chain = append(chain, mw(api))
			}

			// Seal the deferred binding: from here on api.Dispatch runs the
			// full chain.
			dispatch = Compose(chain...)(base.Dispatch)

			return &enhancedStore[S]{Store: base, dispatch: dispatch}, nil
		}
	}
}

// enhancedStore overrides Dispatch with the composed chain and passes every
// other operation through to the base store.
type enhancedStore[S any] struct {
	Store[S]
	dispatch Dispatch
}

func (s *enhancedStore[S]) Dispatch(action Action) (Action, error) {
	return s.dispatch(action)
}
