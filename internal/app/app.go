package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"

	"modscan/internal/config"
	"modscan/internal/issue"
	"modscan/internal/services"
)

var (
	// Version is set via -ldflags.
	Version = "dev"
	// Commit is set via -ldflags.
	Commit = "unknown"
)

// SourceFactory builds the folder source for one run.
type SourceFactory func(cfg config.Config, logger *log.Logger) services.Source

// App holds what the commands share once flags and config are resolved.
type App struct {
	newSource  SourceFactory
	configFile string
	raw        bool

	config     config.Config
	configPath string
	logger     *log.Logger
}

func New() *App {
	return &App{newSource: fsSource}
}

// WithSource replaces the folder source, for runs that should not touch disk.
func (app *App) WithSource(factory SourceFactory) *App {
	if factory != nil {
		app.newSource = factory
	}
	return app
}

func Run() {
	root := NewRootCommand(New())
	if err := fang.Execute(context.Background(), root, fangOptions()...); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(exitFailure)
	}
}

func fangOptions() []fang.Option {
	return []fang.Option{
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(reportError),
	}
}

// reportError prints errors cobra or fang raised. An ExitError was already
// printed by fail.
func reportError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

func fsSource(cfg config.Config, logger *log.Logger) services.Source {
	classifier := services.NewClassifier(cfg.ClassifierNames())
	return services.NewFSScanner(classifier, logger).WithWorkers(cfg.Workers)
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "modscan"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// modsFolder resolves --file, falling back to the platform default.
func (app *App) modsFolder() (string, error) {
	if app.config.Path != "" {
		return app.config.Path, nil
	}
	folder, err := config.DefaultModsFolder()
	if err != nil {
		return "", issue.NewErrorContext().
			WithOperation("locate mods folder").
			WithSuggestion("Pass the folder explicitly with --file").
			WithSuggestion("Or set path in the config file or MODSCAN_PATH").
			Wrap(err).
			Build()
	}
	return folder, nil
}

func (app *App) collect(ctx context.Context) (services.Collection, services.CollectRequest, error) {
	folder, err := app.modsFolder()
	if err != nil {
		return services.Collection{}, services.CollectRequest{}, err
	}
	request := services.CollectRequest{RootPath: folder, Build: app.config.BuildOptions()}
	collection, err := app.collector().Collect(ctx, request)
	return collection, request, err
}

func (app *App) collector() *services.Collector {
	return services.NewCollector(app.newSource(app.config, app.logger), app.logger)
}
