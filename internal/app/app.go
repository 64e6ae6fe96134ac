package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/vk/hypergraph/internal/blobstore"
	"github.com/vk/hypergraph/internal/config"
	"github.com/vk/hypergraph/internal/ctxlog"
	"github.com/vk/hypergraph/internal/viewer"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	model  config.Model
	dryRun bool

	opener    viewer.Opener
	openStore func(blobstore.Location, blobstore.S3Config) (blobstore.Store, error)
}

// Option customises an App at construction time.
type Option func(*options)

type options struct {
	lookupEnv func(string) (string, bool)
	dotenv    []string
	opener    viewer.Opener
	openStore func(blobstore.Location, blobstore.S3Config) (blobstore.Store, error)
}

// WithEnv replaces os.LookupEnv as the source of HYPERGRAPH_* settings and
// disables .env loading.
func WithEnv(lookup func(string) (string, bool)) Option {
	return func(o *options) {
		o.lookupEnv = lookup
		o.dotenv = nil
	}
}

// WithOpener replaces the desktop launcher used for -open.
func WithOpener(op viewer.Opener) Option {
	return func(o *options) { o.opener = op }
}

// WithStoreOpener replaces the function that selects a blobstore for an
// output location.
func WithStoreOpener(fn func(blobstore.Location, blobstore.S3Config) (blobstore.Store, error)) Option {
	return func(o *options) { o.openStore = fn }
}

// NewApp is the constructor for the main application. It resolves the run
// configuration from defaults, the environment, the project file and the
// command-line flags, in that order. Configuration problems are fatal
// startup errors and panic; the entrypoint recovers them.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, opts ...Option) *App {
	o := options{
		lookupEnv: os.LookupEnv,
		dotenv:    []string{".env"},
		opener:    viewer.System{},
		openStore: blobstore.Open,
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	for _, f := range o.dotenv {
		// godotenv never overrides variables already set in the process.
		if err := godotenv.Load(f); err == nil {
			logger.Debug("Environment file loaded.", "path", f)
		}
	}

	model := config.Default()
	envOverrides, err := config.FromEnv(o.lookupEnv)
	if err != nil {
		panic(fmt.Errorf("failed to read environment: %w", err))
	}
	envOverrides.Apply(&model)

	if path, ok := projectFile(appConfig.ConfigPath); ok {
		model, err = loader.Load(ctx, model, path)
		if err != nil {
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		logger.Debug("Project file loaded.", "path", path)
	}

	appConfig.Flags.Apply(&model)
	if err := model.Validate(); err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}
	logger.Debug("Configuration resolved.", "root_debate", model.RootDebate, "sources", model.Sources.Paths, "json", model.Output.JSON, "html", model.Output.HTML)

	return &App{
		outW:      outW,
		logger:    logger,
		model:     model,
		dryRun:    appConfig.DryRun,
		opener:    o.opener,
		openStore: o.openStore,
	}
}

// Model returns the resolved run configuration. This is primarily for testing.
func (a *App) Model() config.Model {
	return a.model
}

// projectFile picks the project file to load, if any. An explicitly named
// file is always used so a typo surfaces as a load error.
func projectFile(explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	if _, err := os.Stat(DefaultProjectFile); err == nil {
		return DefaultProjectFile, true
	} else if !errors.Is(err, fs.ErrNotExist) {
		return DefaultProjectFile, true
	}
	return "", false
}
