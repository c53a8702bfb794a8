package redux

import (
	"log/slog"
	"os"
	"sync"

	"github.com/tedyhy/redux/pkg/environment"
	"github.com/tedyhy/redux/pkg/logger"
)

// WarningSink receives non-fatal developer diagnostics such as dropped
// reducer keys or unbound action creators. Core behavior never depends on a
// sink's side effects.
type WarningSink interface {
	Notify(message string)
}

// WarningSinkFunc adapts a plain function to the WarningSink interface.
type WarningSinkFunc func(message string)

func (f WarningSinkFunc) Notify(message string) { f(message) }

var (
	warningMu   sync.RWMutex
	warningSink WarningSink = defaultWarningSink{}
)

// SetWarningSink replaces the package-level warning sink. Passing nil
// restores the default sink, which logs warnings through log/slog.
func SetWarningSink(sink WarningSink) {
	warningMu.Lock()
	defer warningMu.Unlock()
	if sink == nil {
		sink = defaultWarningSink{}
	}
	warningSink = sink
}

func currentWarningSink() WarningSink {
	warningMu.RLock()
	defer warningMu.RUnlock()
	return warningSink
}

// warn emits a diagnostic when the application runs outside production.
// A nil sink falls back to the package-level one.
func warn(sink WarningSink, message string) {
	if environment.IsProduction() {
		return
	}
	if sink == nil {
		sink = currentWarningSink()
	}
	sink.Notify(message)
}

// defaultWarningSink logs through a text-format slog logger on stderr, where
// development diagnostics belong.
type defaultWarningSink struct{}

var (
	diagOnce sync.Once
	diagLog  *slog.Logger
)

func (defaultWarningSink) Notify(message string) {
	diagOnce.Do(func() {
		diagLog = logger.New(
			logger.WithTextFormatter(),
			logger.WithOutput(os.Stderr),
			logger.WithLevel(slog.LevelWarn),
		)
	})
	diagLog.Warn(message)
}
