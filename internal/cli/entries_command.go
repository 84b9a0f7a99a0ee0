package cli

import (
	"context"
	"time"

	"schedule/internal/api"
	"schedule/internal/domain"
)

// EntriesCommand prints the entries of the weeks file selected by a mode
type EntriesCommand struct {
	api     api.API
	mode    domain.Mode
	printer *Printer
	errors  *ErrorHandler
	now     func() time.Time
}

// NewEntriesCommand creates a new entries command handler for mode
func NewEntriesCommand(app *App, mode domain.Mode) *EntriesCommand {
	return &EntriesCommand{
		api:     app.api,
		mode:    mode,
		printer: app.printer,
		errors:  app.errors,
		now:     func() time.Time { return app.now() },
	}
}

// Execute runs the entries command
func (c *EntriesCommand) Execute(ctx context.Context, args []string) error {
	views, err := c.api.Entries(ctx, c.mode, c.now())
	if err != nil {
		return c.errors.Handle("read weeks file", err)
	}
	return c.printer.PrintEntries(views)
}
