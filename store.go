package redux

import "fmt"

// Reducer computes the next state from the current state and an action. It
// must be pure: no side effects, no dispatching, and it must return a
// well-defined state for any action, including unknown ones.
type Reducer[S any] func(state S, action Action) (S, error)

// Listener is invoked after every completed dispatch. It receives no
// arguments; read the new state through the store's GetState.
type Listener func()

// Unsubscribe removes a previously registered listener. It is idempotent:
// calls after the first have no effect.
type Unsubscribe func()

// Dispatch applies an action to a store and returns the action that was
// dispatched, so middleware can inspect or forward it.
type Dispatch func(action Action) (Action, error)

// Store holds the single state tree of an application. The only way to change
// the state is to dispatch an action; the only way to observe changes is to
// subscribe a listener or use the Observable interop.
//
// A Store assumes one logical thread of control: dispatching, subscribing and
// reading are synchronous and must not be invoked concurrently from multiple
// goroutines without external synchronization.
type Store[S any] interface {
	// Dispatch applies an action through the current reducer, updates the
	// state and notifies listeners. It returns the dispatched action.
	Dispatch(action Action) (Action, error)

	// GetState returns the current state tree.
	GetState() S

	// Subscribe registers a listener called after every dispatch. The change
	// takes effect on the next dispatch; an in-flight notification pass is
	// never disturbed.
	Subscribe(listener Listener) (Unsubscribe, error)

	// ReplaceReducer swaps the reducer and re-initializes the state tree,
	// keeping all subscriptions.
	ReplaceReducer(next Reducer[S]) error

	// Observable exposes the store as a minimal push-stream of states.
	Observable() Observable[S]
}

// StoreCreator builds a store from a reducer and a preloaded state. Enhancers
// wrap creators to produce stores with extended capabilities.
type StoreCreator[S any] func(reducer Reducer[S], preloaded S) (Store[S], error)

// Enhancer wraps a store creator. Enhancers receive the unenhanced creator so
// several of them can be layered, each wrapping the previous result.
type Enhancer[S any] func(next StoreCreator[S]) StoreCreator[S]

// StoreOption configures store creation.
type StoreOption[S any] func(*storeConfig[S]) error

type storeConfig[S any] struct {
	preloaded S
	enhancers []Enhancer[S]
}

// WithPreloadedState sets the initial state tree. Without it, reducers build
// the initial state from their zero-value input during the INIT dispatch.
func WithPreloadedState[S any](state S) StoreOption[S] {
	return func(c *storeConfig[S]) error {
		c.preloaded = state
		return nil
	}
}

// WithEnhancer adds a store enhancer such as ApplyMiddleware. Repeatable; the
// first enhancer given becomes the outermost wrapper.
func WithEnhancer[S any](enhancer Enhancer[S]) StoreOption[S] {
	return func(c *storeConfig[S]) error {
		if enhancer == nil {
			return ErrInvalidEnhancer
		}
		c.enhancers = append(c.enhancers, enhancer)
		return nil
	}
}

// New creates a store managing a single state tree of type S.
//
// The reducer receives the current state and the dispatched action and
// returns the next state. Immediately after construction the store dispatches
// the reserved INIT action, so the state tree is populated before any read.
//
//	store, err := redux.New(counter, redux.WithPreloadedState(0))
func New[S any](reducer Reducer[S], opts ...StoreOption[S]) (Store[S], error) {
	if reducer == nil {
		return nil, ErrInvalidReducer
	}

	cfg := &storeConfig[S]{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Enhancers wrap the plain creator in reverse so the first listed is
	// outermost, same as decorator chains elsewhere in this module.
	creator := StoreCreator[S](newStore[S])
	for i := len(cfg.enhancers) - 1; i >= 0; i-- {
		creator = cfg.enhancers[i](creator)
	}

	return creator(reducer, cfg.preloaded)
}

// listenerEntry gives each registered listener a stable identity, since
// function values are not comparable in Go.
type listenerEntry struct {
	fn Listener
}

type store[S any] struct {
	state   S
	reducer Reducer[S]

	// current is the snapshot iterated by an in-flight dispatch; next is the
	// sequence mutated by Subscribe/Unsubscribe. When shared is true both
	// alias the same backing array and next must be cloned before mutation.
	current []*listenerEntry
	next    []*listenerEntry
	shared  bool

	dispatching bool
}

func newStore[S any](reducer Reducer[S], preloaded S) (Store[S], error) {
	if reducer == nil {
		return nil, ErrInvalidReducer
	}

	s := &store[S]{
		state:   preloaded,
		reducer: reducer,
		shared:  true,
	}

	// Populate the initial state tree before the store is handed out.
	if _, err := s.Dispatch(Action{Type: ActionTypeInit}); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *store[S]) GetState() S {
	return s.state
}

func (s *store[S]) Dispatch(action Action) (Action, error) {
	if action.Type == "" {
		return action, fmt.Errorf("%w: dispatched %#v", ErrInvalidAction, action)
	}
	if s.dispatching {
		return action, ErrReentrantDispatch
	}

	next, err := s.reduce(action)
	if err != nil {
		return action, err
	}
	s.state = next

	// Snapshot the listener sequence for this pass. Subscribe/Unsubscribe
	// calls made by listeners clone next first, so the snapshot is stable.
	s.current = s.next
	s.shared = true
	for _, entry := range s.current {
		entry.fn()
	}

	return action, nil
}

// reduce runs the reducer with the dispatch guard held. The guard is released
// on every exit path, including panics, so a failing reducer never wedges the
// store.
func (s *store[S]) reduce(action Action) (S, error) {
	s.dispatching = true
	defer func() { s.dispatching = false }()
	return s.reducer(s.state, action)
}

func (s *store[S]) Subscribe(listener Listener) (Unsubscribe, error) {
	if listener == nil {
		return nil, ErrInvalidListener
	}

	entry := &listenerEntry{fn: listener}
	s.ensureCanMutateNext()
	s.next = append(s.next, entry)

	subscribed := true
	return func() {
		if !subscribed {
			return
		}
		subscribed = false

		s.ensureCanMutateNext()
		for i, e := range s.next {
			if e == entry {
				s.next = append(s.next[:i], s.next[i+1:]...)
				break
			}
		}
	}, nil
}

// ensureCanMutateNext clones the pending listener sequence when it still
// aliases the snapshot of an in-flight (or the most recent) dispatch.
func (s *store[S]) ensureCanMutateNext() {
	if !s.shared {
		return
	}
	s.next = append([]*listenerEntry(nil), s.current...)
	s.shared = false
}

func (s *store[S]) ReplaceReducer(next Reducer[S]) error {
	if next == nil {
		return ErrInvalidReducer
	}
	s.reducer = next

	// Reshape the state tree to the new reducer's expectations.
	_, err := s.Dispatch(Action{Type: ActionTypeInit})
	return err
}

func (s *store[S]) Observable() Observable[S] {
	return stateObservable[S]{store: s}
}
