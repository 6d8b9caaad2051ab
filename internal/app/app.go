// Package app implements the application layer for hotloop.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/hotloop/internal/adapters/detector"
	"go.trai.ch/hotloop/internal/adapters/sentinel"
	"go.trai.ch/hotloop/internal/adapters/watcher"
	"go.trai.ch/hotloop/internal/core/domain"
	"go.trai.ch/hotloop/internal/core/ports"
	"go.trai.ch/hotloop/internal/engine/builder"
	"go.trai.ch/hotloop/internal/engine/loop"
	"go.trai.ch/hotloop/internal/engine/supervisor"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	resolver     ports.EnvironmentResolver
	table        ports.ProcessTable
	launcher     ports.ProcessLauncher
	hasher       ports.Hasher
	tracer       ports.Tracer
	logger       ports.Logger
	output       io.Writer
	newNotifier  func(extension string) ports.Notifier
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	resolver ports.EnvironmentResolver,
	table ports.ProcessTable,
	launcher ports.ProcessLauncher,
	hasher ports.Hasher,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		resolver:     resolver,
		table:        table,
		launcher:     launcher,
		hasher:       hasher,
		tracer:       tracer,
		logger:       log,
		output:       os.Stdout,
		newNotifier: func(extension string) ports.Notifier {
			return watcher.NewNotifier(extension, log)
		},
	}
}

// WithOutput redirects compiler output. Primarily used in tests.
func (a *App) WithOutput(w io.Writer) *App {
	a.output = w
	return a
}

// WithNotifier replaces the file system wake source used with notifications enabled.
func (a *App) WithNotifier(fn func(extension string) ports.Notifier) *App {
	a.newNotifier = fn
	return a
}

// Options configures a single command invocation.
type Options struct {
	ConfigPath string
	LogFormat  string
	// Notify enables the file system wake source in addition to polling.
	Notify bool
}

// Watch builds, launches the host and rebuilds on every source change until a stop
// is requested or ctx is done. Only setup failures are returned.
func (a *App) Watch(ctx context.Context, opts Options) error {
	settings, driver, err := a.prepare(ctx, opts)
	if err != nil {
		return err
	}
	defer a.shutdownTracer(ctx)

	detect := watcher.NewDetector(settings.Extension)
	stop := sentinel.NewFile(settings.StopFile)

	if !opts.Notify && !settings.Notify {
		return loop.New(settings.SourceDir, settings.PollInterval, detect, driver, stop, a.logger).Run(ctx)
	}

	wake := make(chan struct{}, 1)
	lp := loop.New(settings.SourceDir, settings.PollInterval, detect, driver, stop, a.logger, loop.WithWake(wake))
	notifier := a.newNotifier(settings.Extension)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		if err := notifier.Run(gctx, settings.SourceDir, wake); err != nil {
			a.logger.Warn("File notifications unavailable, polling only: " + err.Error())
		}
		return nil
	})
	g.Go(func() error {
		defer cancel()
		return lp.Run(gctx)
	})

	return g.Wait()
}

// Build performs a single build and hands off to the process manager without watching.
func (a *App) Build(ctx context.Context, opts Options) error {
	_, driver, err := a.prepare(ctx, opts)
	if err != nil {
		return err
	}
	defer a.shutdownTracer(ctx)

	if outcome := driver.BuildAndRun(ctx); !outcome.OK() {
		return domain.ErrBuildFailed
	}
	return nil
}

// Stop asks a running watch loop to exit by creating the stop sentinel.
func (a *App) Stop(_ context.Context, opts Options) error {
	a.configureLogger(opts.LogFormat)

	settings, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	stop := sentinel.NewFile(settings.StopFile)
	if err := stop.Request(); err != nil {
		return err
	}
	a.logger.Info("Stop requested via " + stop.Path() + ".")
	return nil
}

func (a *App) prepare(ctx context.Context, opts Options) (domain.Settings, *builder.Driver, error) {
	jsonLogs := a.configureLogger(opts.LogFormat)

	settings, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return domain.Settings{}, nil, zerr.Wrap(err, "failed to load configuration")
	}

	cfg, err := a.resolver.Resolve(ctx, settings)
	if err != nil {
		return domain.Settings{}, nil, zerr.Wrap(err, "failed to prepare build environment")
	}

	output := a.output
	if jsonLogs {
		// Compiler lines go through the logger so every line stays valid JSON.
		output = nil
	}

	manager := supervisor.NewManager(settings, cfg, a.table, a.launcher, a.logger)
	driver := builder.NewDriver(settings, cfg, a.executor, a.hasher, manager, a.tracer, a.logger, output)
	return settings, driver, nil
}

// configureLogger applies the requested log format and reports whether JSON was selected.
func (a *App) configureLogger(flag string) bool {
	format := detector.ResolveFormat(detector.DetectEnvironment(), flag)

	configurable, ok := a.logger.(interface {
		SetJSON(enable bool)
		SetColor(enable bool)
	})
	if ok {
		configurable.SetJSON(format == detector.FormatJSON)
		configurable.SetColor(format == detector.FormatPretty)
	}
	return format == detector.FormatJSON
}

func (a *App) shutdownTracer(ctx context.Context) {
	if err := a.tracer.Shutdown(context.WithoutCancel(ctx)); err != nil {
		a.logger.Warn("Failed to flush telemetry: " + err.Error())
	}
}
