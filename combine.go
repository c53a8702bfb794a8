package redux

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// CombineOption configures CombineReducers.
type CombineOption func(*combineConfig)

type combineConfig struct {
	sink WarningSink
}

// WithWarningSink routes this combination's diagnostics to the given sink
// instead of the package-level one.
func WithWarningSink(sink WarningSink) CombineOption {
	return func(c *combineConfig) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// CombineReducers turns a map of reducers, each managing one key of the state
// tree, into a single reducer over a map-shaped state.
//
// Keys are processed in sorted order so validation and error reporting are
// deterministic. Nil map entries are dropped and, outside production,
// reported through the warning sink.
//
// At composition time every retained reducer is probed with a nil state and
// the reserved INIT action, then with a nil state and a randomly generated
// action type. A reducer that returns nil (or fails) for either probe poisons
// the combination: the returned reducer reports ErrReducerShapeViolation on
// every invocation until it is rebuilt.
//
// The combined reducer preserves referential stability: when no key's
// sub-state changes identity, the input map is returned unchanged, enabling
// cheap downstream change detection.
func CombineReducers(reducers map[string]Reducer[any], opts ...CombineOption) Reducer[map[string]any] {
	cfg := &combineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	sink := cfg.sink

	keys := make([]string, 0, len(reducers))
	for key := range reducers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	finalKeys := make([]string, 0, len(keys))
	final := make(map[string]Reducer[any], len(keys))
	for _, key := range keys {
		if reducers[key] == nil {
			warn(sink, fmt.Sprintf("no reducer provided for key %q", key))
			continue
		}
		finalKeys = append(finalKeys, key)
		final[key] = reducers[key]
	}

	shapeErr := assertReducerShape(finalKeys, final)

	// One warning per unexpected state key for the lifetime of the
	// combination, matching the non-fatal diagnostic contract.
	warnedKeys := make(map[string]struct{})

	return func(state map[string]any, action Action) (map[string]any, error) {
		if shapeErr != nil {
			return state, shapeErr
		}
		if state == nil {
			state = map[string]any{}
		}

		for key := range state {
			if _, ok := final[key]; ok {
				continue
			}
			if _, seen := warnedKeys[key]; seen {
				continue
			}
			warnedKeys[key] = struct{}{}
			warn(sink, fmt.Sprintf("unexpected key %q found in state; it will be ignored because no reducer handles it", key))
		}

		hasChanged := false
		nextState := make(map[string]any, len(finalKeys))
		for _, key := range finalKeys {
			prev := state[key]
			next, err := final[key](prev, action)
			if err != nil {
				return state, fmt.Errorf("reducer %q failed handling %s: %w", key, describeActionType(action), err)
			}
			if next == nil {
				return state, fmt.Errorf("%w: reducer %q returned nil given %s; to ignore an action, return the previous state",
					ErrUndefinedReducerResult, key, describeActionType(action))
			}
			nextState[key] = next
			hasChanged = hasChanged || !identical(prev, next)
		}
		hasChanged = hasChanged || len(finalKeys) != len(state)

		if !hasChanged {
			return state, nil
		}
		return nextState, nil
	}
}

// assertReducerShape verifies each reducer produces a well-defined state when
// handed a nil state with the reserved INIT action and with a random probe
// type. All violations are collected so every offending key is named.
func assertReducerShape(keys []string, reducers map[string]Reducer[any]) error {
	var violations []error
	for _, key := range keys {
		r := reducers[key]

		initial, err := r(nil, Action{Type: ActionTypeInit})
		if err != nil || initial == nil {
			violations = append(violations, fmt.Errorf(
				"reducer %q returned nil during initialization; if the state passed to the reducer is nil, it must explicitly return the initial state", key))
		}

		probed, err := r(nil, probeUnknownAction())
		if err != nil || probed == nil {
			violations = append(violations, fmt.Errorf(
				"reducer %q returned nil when probed with a random action type; reserved action types must be treated as unknown and fall through to the current state", key))
		}
	}
	if len(violations) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrReducerShapeViolation, errors.Join(violations...))
}

// describeActionType renders an action's type for error messages, accounting
// for combinations invoked directly with an empty type.
func describeActionType(action Action) string {
	if action.Type == "" {
		return "an action"
	}
	return fmt.Sprintf("action type %q", action.Type)
}

// identical reports whether two sub-states are the same value by identity,
// mirroring pointer-equality change detection. Reference kinds compare their
// headers; comparable values compare by value; everything else is treated as
// changed.
func identical(prev, next any) bool {
	if prev == nil || next == nil {
		return prev == nil && next == nil
	}

	pv := reflect.ValueOf(prev)
	nv := reflect.ValueOf(next)
	if pv.Type() != nv.Type() {
		return false
	}

	switch pv.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return pv.Pointer() == nv.Pointer()
	case reflect.Slice:
		return pv.Pointer() == nv.Pointer() && pv.Len() == nv.Len()
	default:
		if !pv.Comparable() {
			return false
		}
		return pv.Equal(nv)
	}
}
