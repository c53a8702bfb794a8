package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tedyhy/redux"
	"github.com/tedyhy/redux/middleware"
	"github.com/tedyhy/redux/pkg/logger"
)

func counter(state int, action redux.Action) (int, error) {
	switch action.Type {
	case "INC":
		return state + 1, nil
	case "FAIL":
		return state, errors.New("boom")
	default:
		return state, nil
	}
}

func TestLoggerRecordsDispatches(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithTextFormatter(),
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelDebug),
	)

	store, err := redux.New(counter,
		redux.WithEnhancer(redux.ApplyMiddleware(middleware.Logger[int](log))),
	)
	require.NoError(t, err)

	_, err = store.Dispatch(redux.Action{Type: "INC"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "action dispatched")
	assert.Contains(t, out, "type=INC")
	assert.Contains(t, out, "duration=")
}

func TestLoggerRecordsFailures(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithTextFormatter(),
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelDebug),
	)

	store, err := redux.New(counter,
		redux.WithEnhancer(redux.ApplyMiddleware(middleware.Logger[int](log))),
	)
	require.NoError(t, err)

	_, err = store.Dispatch(redux.Action{Type: "FAIL"})
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "action failed")
	assert.Contains(t, out, "type=FAIL")
	assert.Contains(t, out, "boom")
}

func TestLoggerPassesActionsThrough(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithTextFormatter(), logger.WithOutput(&buf))

	store, err := redux.New(counter,
		redux.WithEnhancer(redux.ApplyMiddleware(middleware.Logger[int](log))),
	)
	require.NoError(t, err)

	action, err := store.Dispatch(redux.Action{Type: "INC", Payload: 1})
	require.NoError(t, err)
	assert.Equal(t, redux.Action{Type: "INC", Payload: 1}, action)
	assert.Equal(t, 1, store.GetState())
}
