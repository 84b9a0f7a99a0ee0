package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"schedule/internal/config"
	"schedule/internal/domain"
	"schedule/internal/errors"
	"schedule/internal/logging"
)

// TodayLayout is the layout accepted by --today
const TodayLayout = "2006-01-02"

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	loader  *config.Loader
	config  *config.Config
	factory APIFactory
	logger  zerolog.Logger
	app     *App
}

// NewRootCommand creates the root cobra command with global flags.
// The configuration is loaded by loader once the flags are parsed.
func NewRootCommand(loader *config.Loader, factory APIFactory) *RootCommand {
	root := &RootCommand{
		loader:  loader,
		factory: factory,
		logger:  logging.Nop(),
	}

	root.cmd = &cobra.Command{
		Use:   "schedule [thisWeek|thisMonth|thisQuarter]",
		Short: "Weekly schedule tracker",
		Long: `schedule prints the dated entries of ~/.files/weeks, highlighting the current week.

Each line of the weeks file has the form:
  MM/DD/YY - description

Lines that do not match are ignored.

MODES:
  schedule                 # All entries; this week in green, the weeks around it in white
  schedule thisWeek        # Entries from last week, this week and next week
  schedule thisMonth       # Entries in the current month of any year
  schedule thisQuarter     # First paragraph of ~/.files/plan

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

  Config file:             ~/.config/schedule/config.yaml (or SCHEDULE_CONFIG)
    SCHEDULE_DIR           Directory holding the files (default: ~/.files)
    SCHEDULE_WEEKS_FILE    Weeks file name or path (default: weeks)
    SCHEDULE_PLAN_FILE     Plan file name or path (default: plan)
    SCHEDULE_COLOR         auto, always or never (default: auto; NO_COLOR disables auto)
    SCHEDULE_TIMEOUT       Timeout for reading the files (default: 10s)
    SCHEDULE_LOG_LEVEL     Diagnostic log level on stderr (default: warn)
    SCHEDULE_DEBUG         Any value enables debug logging`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(cmd, args)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("weeks-file", "", "Weeks file (overrides SCHEDULE_WEEKS_FILE)")
	flags.String("plan-file", "", "Plan file (overrides SCHEDULE_PLAN_FILE)")
	flags.String("color", "", "Color output: auto, always or never (overrides SCHEDULE_COLOR)")
	flags.String("today", "", "Evaluate week and month against this day (YYYY-MM-DD)")
	flags.String("log-level", "", "Diagnostic log level (overrides SCHEDULE_LOG_LEVEL)")
	flags.Duration("app-timeout", 0, "Timeout for reading the files (overrides SCHEDULE_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable debug logging on stderr")
}

// addSubcommands adds one subcommand per mode
func (r *RootCommand) addSubcommands() {
	thisWeekCmd := &cobra.Command{
		Use:   domain.ThisWeekCommand,
		Short: "Show entries from last week, this week and next week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args)
		},
	}

	thisMonthCmd := &cobra.Command{
		Use:   domain.ThisMonthCommand,
		Short: "Show entries in the current month",
		Long:  "Show entries whose month is the current month. The year is not compared.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args)
		},
	}

	thisQuarterCmd := &cobra.Command{
		Use:   domain.ThisQuarterCommand,
		Short: "Show the current quarter's plan",
		Long:  "Print the first blank-line separated paragraph of the plan file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args)
		},
	}

	r.cmd.AddCommand(
		thisWeekCmd,
		thisMonthCmd,
		thisQuarterCmd,
	)
}

// setup loads the configuration with flag overrides, builds the logger and the application
func (r *RootCommand) setup(cmd *cobra.Command) error {
	if r.loader == nil {
		return fmt.Errorf("configuration loader not initialized")
	}

	cfg, err := r.loader.LoadWithOverrides(r.getConfigFromFlags())
	if err != nil {
		if _, ok := errors.AsAppError(err); ok {
			return err
		}
		return errors.NewConfigError(err.Error(), err)
	}
	r.config = cfg

	r.logger = logging.New(cmd.ErrOrStderr(), r.config.Application.LogLevel)
	r.app = NewAppWithConfig(r.factory(r.config, r.logger), r.config, cmd.OutOrStdout())

	today, err := r.getToday()
	if err != nil {
		return err
	}
	if !today.IsZero() {
		r.app.WithClock(func() time.Time { return today })
	}

	r.logger.Debug().
		Str("weeks", r.config.GetWeeksPath()).
		Str("plan", r.config.GetPlanPath()).
		Str("color", r.config.Display.Color).
		Msg("configuration loaded")
	return nil
}

// run dispatches to the command registered for the mode cmd names
func (r *RootCommand) run(cmd *cobra.Command, args []string) error {
	if r.app == nil {
		return fmt.Errorf("application not initialized")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, r.getAppTimeout())
	defer cancel()

	err := r.app.registry.Run(ctx, r.modeName(cmd), args)
	if err != nil {
		event := r.logger.Debug().Str("code", errors.GetErrorCode(err))
		if appErr, ok := errors.AsAppError(err); ok {
			event = event.Fields(appErr.Context)
		}
		event.Err(err).Msg("command failed")

		if errors.IsErrorType(err, errors.ErrorTypeTimeout) {
			r.logger.Warn().
				Dur("timeout", r.getAppTimeout()).
				Msg("reading the files took too long; raise --app-timeout or SCHEDULE_TIMEOUT")
		}
	}
	return err
}

// modeName is the mode typed on the command line; the root command has none
func (r *RootCommand) modeName(cmd *cobra.Command) string {
	if cmd == r.cmd {
		return ""
	}
	return cmd.Name()
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 10 * time.Second
}

// getToday parses --today; the zero time means the real clock is used
func (r *RootCommand) getToday() (time.Time, error) {
	value, _ := r.cmd.PersistentFlags().GetString("today")
	if value == "" {
		return time.Time{}, nil
	}
	today, err := time.ParseInLocation(TodayLayout, value, time.Local)
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError("today", value, "expected YYYY-MM-DD")
	}
	return today, nil
}

// getConfigFromFlags collects the overrides given on the command line
func (r *RootCommand) getConfigFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if weeks, _ := flags.GetString("weeks-file"); weeks != "" {
		overrides.WeeksFile = &weeks
	}
	if plan, _ := flags.GetString("plan-file"); plan != "" {
		overrides.PlanFile = &plan
	}
	if color, _ := flags.GetString("color"); color != "" {
		overrides.Color = &color
	}
	if level, _ := flags.GetString("log-level"); level != "" {
		overrides.LogLevel = &level
	}
	if timeout, _ := flags.GetDuration("app-timeout"); timeout > 0 {
		overrides.Timeout = &timeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		debug := zerolog.DebugLevel.String()
		overrides.LogLevel = &debug
	}

	return overrides
}
