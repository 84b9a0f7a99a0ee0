package cli

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"schedule/internal/api"
	"schedule/internal/config"
	"schedule/internal/repository/files"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// APIFactory builds the API once configuration and flags are final.
type APIFactory func(cfg *config.Config, logger zerolog.Logger) api.API

// DefaultAPIFactory reads the weeks and plan files named by the configuration.
func DefaultAPIFactory(cfg *config.Config, logger zerolog.Logger) api.API {
	return api.New(files.NewWithConfig(cfg), logger)
}

// App represents the main CLI application
type App struct {
	api      api.API
	printer  *Printer
	errors   *ErrorHandler
	now      func() time.Time
	registry *CommandRegistry
}

// NewAppWithConfig creates a new CLI application instance with dependency injection
func NewAppWithConfig(apiInstance api.API, cfg *config.Config, out io.Writer) *App {
	app := &App{
		api:     apiInstance,
		printer: NewPrinter(out, cfg.Display.Color),
		errors:  NewErrorHandler(),
		now:     func() time.Time { return timeNow() },
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// WithClock evaluates every window against the instant returned by now.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}
