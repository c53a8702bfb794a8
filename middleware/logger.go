package middleware

import (
	"log/slog"
	"time"

	"github.com/tedyhy/redux"
	"github.com/tedyhy/redux/pkg/environment"
	"github.com/tedyhy/redux/pkg/logger"
)

// Logger returns a middleware that logs every dispatched action with its
// outcome and duration. A nil log falls back to a logger configured for the
// current environment.
func Logger[S any](log *slog.Logger) redux.Middleware[S] {
	if log == nil {
		log = logger.New(logger.WithEnvironment(environment.Current(), "redux"))
	}
	return func(api redux.MiddlewareAPI[S]) func(next redux.Dispatch) redux.Dispatch {
		return func(next redux.Dispatch) redux.Dispatch {
			return func(action redux.Action) (redux.Action, error) {
				start := time.Now()
				out, err := next(action)
				attrs := []any{
					slog.String("type", action.Type),
					slog.Duration("duration", time.Since(start)),
				}
				if err != nil {
					log.Error("action failed", append(attrs, logger.Error(err))...)
				} else {
					log.Debug("action dispatched", attrs...)
				}
				return out, err
			}
		}
	}
}
