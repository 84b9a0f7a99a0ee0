package cli

import (
	"context"

	"schedule/internal/api"
)

// QuarterCommand prints the current quarter's plan
type QuarterCommand struct {
	api     api.API
	printer *Printer
	errors  *ErrorHandler
}

// NewQuarterCommand creates a new quarter command handler
func NewQuarterCommand(app *App) *QuarterCommand {
	return &QuarterCommand{
		api:     app.api,
		printer: app.printer,
		errors:  app.errors,
	}
}

// Execute runs the quarter command
func (c *QuarterCommand) Execute(ctx context.Context, args []string) error {
	plan, err := c.api.QuarterPlan(ctx)
	if err != nil {
		return c.errors.Handle("read plan file", err)
	}
	return c.printer.PrintPlan(plan)
}
