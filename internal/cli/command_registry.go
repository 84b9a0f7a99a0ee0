package cli

import (
	"context"

	"schedule/internal/domain"
	"schedule/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[domain.Mode]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[domain.Mode]Command),
	}

	registry.Register(domain.ModeAll, NewEntriesCommand(app, domain.ModeAll))
	registry.Register(domain.ModeThisWeek, NewEntriesCommand(app, domain.ModeThisWeek))
	registry.Register(domain.ModeThisMonth, NewEntriesCommand(app, domain.ModeThisMonth))
	registry.Register(domain.ModeThisQuarter, NewQuarterCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(mode domain.Mode, command Command) {
	r.commands[mode] = command
}

// Execute runs the command for mode with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, mode domain.Mode, args []string) error {
	command, exists := r.commands[mode]
	if !exists {
		return errors.NewInvalidInputError("command", mode.String(), "unknown command")
	}
	return command.Execute(ctx, args)
}

// Run parses the mode name (empty for the default mode) and executes it
func (r *CommandRegistry) Run(ctx context.Context, name string, args []string) error {
	mode, err := domain.ParseMode(name)
	if err != nil {
		return err
	}
	return r.Execute(ctx, mode, args)
}

