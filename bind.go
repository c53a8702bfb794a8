package redux

import (
	"fmt"
	"sort"
)

// BoundActionCreator builds an action and dispatches it in one call,
// returning whatever the dispatch returned.
type BoundActionCreator func(args ...any) (Action, error)

// BindActionCreator wraps a single action creator so its result is passed
// straight to dispatch.
func BindActionCreator(creator ActionCreator, dispatch Dispatch) (BoundActionCreator, error) {
	if creator == nil {
		return nil, fmt.Errorf("%w: creator is nil", ErrInvalidActionCreators)
	}
	if dispatch == nil {
		return nil, fmt.Errorf("%w: dispatch is nil", ErrInvalidActionCreators)
	}
	return func(args ...any) (Action, error) {
		return dispatch(creator(args...))
	}, nil
}

// BindActionCreators wraps every creator in the map with dispatch. Nil
// entries are reported through the warning sink and omitted from the result;
// a nil map or nil dispatch is an error.
func BindActionCreators(creators map[string]ActionCreator, dispatch Dispatch) (map[string]BoundActionCreator, error) {
	if creators == nil {
		return nil, fmt.Errorf("%w: creators map is nil", ErrInvalidActionCreators)
	}
	if dispatch == nil {
		return nil, fmt.Errorf("%w: dispatch is nil", ErrInvalidActionCreators)
	}

	keys := make([]string, 0, len(creators))
	for key := range creators {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	bound := make(map[string]BoundActionCreator, len(keys))
	for _, key := range keys {
		creator := creators[key]
		if creator == nil {
			warn(nil, fmt.Sprintf("action creator %q is nil and will not be bound", key))
			continue
		}
		b, err := BindActionCreator(creator, dispatch)
		if err != nil {
			return nil, err
		}
		bound[key] = b
	}
	return bound, nil
}
