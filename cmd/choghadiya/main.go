package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexflint/go-arg"

	"github.com/belphemur/choghadiya/internal/choghadiya"
	"github.com/belphemur/choghadiya/internal/config"
	"github.com/belphemur/choghadiya/internal/constants"
	"github.com/belphemur/choghadiya/internal/handlers"
	"github.com/belphemur/choghadiya/internal/logging"
	appSignals "github.com/belphemur/choghadiya/internal/signals"
	"github.com/belphemur/choghadiya/internal/timeutil"
	"github.com/belphemur/choghadiya/internal/tithi"
	"github.com/belphemur/choghadiya/internal/watcher"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Args holds the command line arguments
type Args struct {
	Config   string `arg:"-c,--config,env:CONFIG_FILE" help:"path to the TOML configuration file"`
	Port     int    `arg:"-p,--port" help:"override the HTTP port from the configuration"`
	LogLevel string `arg:"--log-level" help:"override the log level (trace, debug, info, warn, error, fatal, panic)"`
	Print    bool   `arg:"--print" help:"print today's Choghadiya schedule and exit"`
}

// Description is shown at the top of --help
func (Args) Description() string {
	return "Choghadiya calculator and 2026 Jain Tithi calendar web server"
}

// Version is shown by --version
func (Args) Version() string {
	return fmt.Sprintf("choghadiya %s (%s, built %s)", version, commit, date)
}

func main() {
	args := Args{Config: config.DefaultConfigPath}
	arg.MustParse(&args)

	isDev := os.Getenv("ENV") != "production"
	logging.Initialize(isDev)
	logger := logging.GetLogger("main")

	// Create context that's canceled on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info().Str("signal", sig.String()).Msg("Received signal, initiating shutdown")
		cancel()
	}()

	if err := run(ctx, args); err != nil {
		logger.Fatal().Err(err).Msg("Application run failed")
	}
}

func run(ctx context.Context, args Args) error {
	logger := logging.GetLogger("main")

	cfg, err := config.Load(args.Config)
	if err != nil {
		logger.Error().Err(err).Str("config_path", args.Config).Msg("Failed to load configuration")
		return err
	}
	if err := config.ApplyOverrides(cfg, config.Overrides{Port: args.Port, LogLevel: args.LogLevel}); err != nil {
		logger.Error().Err(err).Msg("Failed to apply command line overrides")
		return err
	}

	if cfg.IsDevelopment() != (os.Getenv("ENV") != "production") {
		logging.Initialize(cfg.IsDevelopment())
		logger = logging.GetLogger("main")
	}
	logging.SetLogLevel(cfg.Service.LogLevel)

	window := cfg.Window()
	if args.Print {
		return printSchedule(os.Stdout, window, time.Now())
	}
	logger.Info().Str("log_level", cfg.Service.LogLevel).Msg("Log level set")

	logger.Info().
		Str("version", version).
		Str("commit", commit).
		Str("build_date", date).
		Msg("Starting Choghadiya")

	periodWatcher, err := watcher.New(watcher.SystemClock{}, cfg.Choghadiya.RefreshInterval, window)
	if err != nil {
		wrappedErr := fmt.Errorf("failed to initialize period watcher: %w", err)
		logger.Error().Err(wrappedErr).Msg("Period watcher initialization failed")
		return wrappedErr
	}

	appSignals.OnPeriodChanged(func(ctx context.Context, data appSignals.PeriodChangedData) {
		signalLogger := logging.GetLogger("signal-period-changed")
		event := signalLogger.Info().
			Str("period", data.Period.String()).
			Str("weekday", data.Weekday.String()).
			Time("at", data.At)
		if data.Slot != nil {
			meta := data.Slot.Meta()
			event = event.
				Str("choghadiya", meta.English).
				Str("favorability", meta.Favorability.String()).
				Str("range", timeutil.FormatRange(data.Slot.Start, data.Slot.End))
		}
		event.Msg("Choghadiya period started")
	}, "main-period-changed-handler")

	appSignals.OnDayChanged(func(ctx context.Context, data appSignals.DayChangedData) {
		signalLogger := logging.GetLogger("signal-day-changed")
		observances := tithi.ObservancesForDate(data.Date)
		names := make([]string, 0, len(observances))
		for _, o := range observances {
			names = append(names, o.String())
		}
		signalLogger.Info().
			Str("date", data.Date.Format("2006-01-02")).
			Str("weekday", data.Weekday.String()).
			Strs("tithi", names).
			Msg("New day")
	}, "main-day-changed-handler")

	watcherDone := make(chan error, 1)
	go func() {
		watcherDone <- periodWatcher.Run(ctx)
	}()

	staticHandler, err := handlers.NewStaticHandler()
	if err != nil {
		wrappedErr := fmt.Errorf("failed to initialize static handler: %w", err)
		logger.Error().Err(wrappedErr).Msg("Static handler initialization failed")
		return wrappedErr
	}

	baseHandler, err := handlers.NewBaseHandler(cfg, periodWatcher, watcher.SystemClock{})
	if err != nil {
		wrappedErr := fmt.Errorf("failed to initialize base handler: %w", err)
		logger.Error().Err(wrappedErr).Msg("Base handler initialization failed")
		return wrappedErr
	}
	baseHandler.CSSVersion = staticHandler.CSSVersion()

	router := handlers.NewRouter(cfg,
		staticHandler,
		handlers.NewChoghadiyaHandler(baseHandler),
		handlers.NewTithiHandler(baseHandler),
		handlers.NewAPIHandler(baseHandler),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Int("port", cfg.App.Port).Msg("Starting web server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("Context cancelled, initiating shutdown sequence")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("HTTP server error")
		return err
	}

	logger.Info().Msg("Shutting down HTTP server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown error")
	} else {
		logger.Info().Msg("HTTP server shut down gracefully")
	}

	if err := <-watcherDone; err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn().Err(err).Msg("Period watcher stopped with error")
	}

	appSignals.RemovePeriodChanged("main-period-changed-handler")
	appSignals.RemoveDayChanged("main-day-changed-handler")

	logger.Info().Msg("Shutdown complete")
	return nil
}

// printSchedule writes the day and night slots for now's weekday, marking the
// slot that contains now.
func printSchedule(w io.Writer, window choghadiya.Window, now time.Time) error {
	schedule := window.ScheduleOn(now)
	current := window.CurrentAt(schedule, now)

	if _, err := fmt.Fprintf(w, "%s (%s)\n", now.Format("Monday, 2 January 2006"), schedule.Labels.Devanagari); err != nil {
		return err
	}
	if observances := tithi.ObservancesForDate(now); len(observances) > 0 {
		if _, err := fmt.Fprintf(w, "Tithi: %v\n", observances); err != nil {
			return err
		}
	}

	for _, period := range constants.GetAllPeriods() {
		if _, err := fmt.Fprintf(w, "\n%s\n", period.Label()); err != nil {
			return err
		}
		for _, slot := range schedule.Slots(period == constants.PeriodNight) {
			marker := " "
			if current.Matches(period, slot) {
				marker = "*"
			}
			meta := slot.Meta()
			if _, err := fmt.Fprintf(w, "%s %-19s %-8s %-7s %s\n",
				marker,
				timeutil.FormatRange(slot.Start, slot.End),
				meta.English,
				meta.Favorability.String(),
				meta.Description,
			); err != nil {
				return err
			}
		}
	}
	return nil
}
