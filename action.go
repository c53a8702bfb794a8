package redux

import "github.com/google/uuid"

// Action describes an intended state change. Type identifies the change and
// must not be empty when dispatched; Payload carries any additional data.
// Actions are plain data and should be treated as immutable once dispatched.
type Action struct {
	Type    string
	Payload any
}

// ActionCreator builds an Action from arbitrary arguments. See
// BindActionCreators for wiring creators directly to a dispatch function.
type ActionCreator func(args ...any) Action

// ActionTypeInit is dispatched by the store on creation and after
// ReplaceReducer to populate the initial state tree. Reducers must treat it
// as an unknown action and return their current (or initial) state.
const ActionTypeInit = "@@redux/INIT"

// probeActionTypePrefix namespaces the randomized action types used to verify
// that reducers do not special-case reserved types.
const probeActionTypePrefix = "@@redux/PROBE_UNKNOWN_ACTION-"

// probeUnknownAction returns an action with a freshly generated, unpredictable
// type in the reserved namespace. Reducers must fall through to their default
// case for it.
func probeUnknownAction() Action {
	return Action{Type: probeActionTypePrefix + uuid.NewString()}
}
