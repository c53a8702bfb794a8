package redux

// Observer receives state values from an Observable. Next must be set; it is
// called synchronously with the current state on subscription and again after
// every state change.
type Observer[S any] struct {
	Next func(state S)
}

// Observable is a minimal subscribe-only stream of states, intended as an
// interop point for reactive libraries.
type Observable[S any] interface {
	Subscribe(observer Observer[S]) (Unsubscribe, error)
}

type stateObservable[S any] struct {
	store Store[S]
}

func (o stateObservable[S]) Subscribe(observer Observer[S]) (Unsubscribe, error) {
	if observer.Next == nil {
		return nil, ErrInvalidObserver
	}

	observer.Next(o.store.GetState())
	return o.store.Subscribe(func() {
		observer.Next(o.store.GetState())
	})
}
