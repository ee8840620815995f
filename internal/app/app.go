// Package app implements the application layer for jsxload.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"go.trai.ch/jsxload/internal/adapters/watcher" //nolint:depguard // Debouncer is shared with the watcher adapter
	"go.trai.ch/jsxload/internal/core/domain"
	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/jsxload/internal/engine/dispatcher"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const outputDirPerm = 0o750

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	engine       *dispatcher.Engine
	resolvers    ports.ResolverFactory
	discoverer   ports.ModuleDiscoverer
	writers      ports.ModuleWriterFactory
	bundler      ports.Bundler
	telemetry    ports.Telemetry
	watchers     ports.WatcherFactory
	logger       ports.Logger
	stdout       io.Writer
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	engine *dispatcher.Engine,
	resolvers ports.ResolverFactory,
	discoverer ports.ModuleDiscoverer,
	writers ports.ModuleWriterFactory,
	bundler ports.Bundler,
	telemetry ports.Telemetry,
	watchers ports.WatcherFactory,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		engine:       engine,
		resolvers:    resolvers,
		discoverer:   discoverer,
		writers:      writers,
		bundler:      bundler,
		telemetry:    telemetry,
		watchers:     watchers,
		logger:       log,
		stdout:       os.Stdout,
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithOutput redirects output that has no destination file to w.
// This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithDebounce sets the quiet window the watch loop waits for before rebuilding.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// Options are shared by every command.
type Options struct {
	// ConfigPath is the configuration file to load.
	ConfigPath string
	// Runtime overrides the configured runtime when set.
	Runtime string
}

// BuildOptions configuration for the Build and Watch methods.
type BuildOptions struct {
	Options
	// Modules overrides the configured module list.
	Modules []string
	// Output overrides the configured bundle destination. "-" writes to stdout.
	Output string
	// Jobs bounds the number of concurrent loads. Zero means one per CPU.
	Jobs int
}

// BundleOptions configuration for the Bundle method.
type BundleOptions struct {
	Options
	// Entry is the module the bundle starts from.
	Entry string
	// Output is the bundle destination. Empty or "-" writes to stdout.
	Output string
}

func (a *App) loadConfig(opts Options) (domain.Config, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Runtime != "" {
		rt, err := domain.ParseRuntime(opts.Runtime)
		if err != nil {
			return domain.Config{}, err
		}
		cfg.Runtime = rt
	}
	return cfg, nil
}

// Load compiles a single module and returns its text.
func (a *App) Load(ctx context.Context, opts Options, name string) (string, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return "", err
	}

	d, err := a.engine.Dispatcher(cfg)
	if err != nil {
		return "", err
	}

	cb := &textCallback{}
	d.Load(ctx, dispatcher.Request{
		Name:     name,
		Resolver: a.resolvers(cfg.Root),
		Config:   cfg,
	}, cb)
	return cb.text, cb.err
}

// Build compiles every module of a build pass and writes them as one bundle.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	cfg, err := a.loadConfig(opts.Options)
	if err != nil {
		return err
	}
	return a.build(ctx, cfg, opts)
}

func (a *App) build(ctx context.Context, cfg domain.Config, opts BuildOptions) error {
	modules, err := a.modules(cfg, opts.Modules)
	if err != nil {
		return err
	}

	cfg.IsBuild = true
	d, err := a.engine.Dispatcher(cfg)
	if err != nil {
		return err
	}

	session := domain.NewBuildSession()
	resolver := a.resolvers(cfg.Root)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	var (
		mu   sync.Mutex
		errs error
		g    errgroup.Group
	)
	g.SetLimit(jobs)

	for _, name := range modules {
		g.Go(func() error {
			vctx, vertex := a.telemetry.Record(ctx, name)
			cb := &textCallback{}
			d.Load(vctx, dispatcher.Request{
				Name:     name,
				Resolver: resolver,
				Config:   cfg,
				Session:  session,
			}, cb)
			vertex.Complete(cb.err)

			if cb.err != nil {
				mu.Lock()
				errs = errors.Join(errs, cb.err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if errs != nil {
		return errors.Join(domain.ErrBuildFailed, errs)
	}

	output := opts.Output
	if output == "" {
		output = cfg.Output
	}

	err = a.withOutput(output, func(w io.Writer) error {
		mw := a.writers(w)
		for _, name := range modules {
			if err := d.Write(session, cfg.Plugin(), name, mw); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("built %d module(s)", session.Len()))
	return nil
}

// modules picks the module list of a build pass: explicit names first, then
// the configured list, then every module found below the root.
func (a *App) modules(cfg domain.Config, explicit []string) ([]string, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}
	if len(cfg.Modules) > 0 {
		return cfg.Modules, nil
	}

	found, err := a.discoverer.Discover(cfg.Root, cfg.Extension())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to discover modules"), "root", cfg.Root)
	}
	if len(found) == 0 {
		return nil, domain.ErrNoModulesSpecified
	}
	return found, nil
}

// Bundle links opts.Entry and its imports into one script.
func (a *App) Bundle(ctx context.Context, opts BundleOptions) error {
	cfg, err := a.loadConfig(opts.Options)
	if err != nil {
		return err
	}

	d, err := a.engine.Dispatcher(cfg)
	if err != nil {
		return err
	}

	resolver := a.resolvers(cfg.Root)
	compile := func(ctx context.Context, name string) (string, error) {
		vctx, vertex := a.telemetry.Record(ctx, name)
		text, err := d.Compile(vctx, dispatcher.Request{
			Name:     name,
			Resolver: resolver,
			Config:   cfg,
		})
		vertex.Complete(err)
		return text, err
	}

	out, err := a.bundler.Bundle(ctx, cfg.Root, opts.Entry, cfg.Extension(), compile)
	if err != nil {
		return err
	}

	return a.withOutput(opts.Output, func(w io.Writer) error {
		if _, err := w.Write(out); err != nil {
			return zerr.Wrap(err, "failed to write bundle")
		}
		return nil
	})
}

// Watch runs a build pass, then rebuilds whenever a module below the root
// changes. It returns when ctx is done.
func (a *App) Watch(ctx context.Context, opts BuildOptions) error {
	cfg, err := a.loadConfig(opts.Options)
	if err != nil {
		return err
	}

	if err := a.build(ctx, cfg, opts); err != nil {
		if !errors.Is(err, domain.ErrBuildFailed) {
			return err
		}
		a.logger.Error(err)
	}

	w, err := a.watchers()
	if err != nil {
		return err
	}

	root := cfg.Root
	if root == "" {
		root = "."
	}
	if err := w.Start(ctx, root); err != nil {
		_ = w.Stop()
		return err
	}

	rebuild := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		select {
		case rebuild <- paths:
		default:
		}
	})

	var wg sync.WaitGroup
	defer wg.Wait()
	defer func() {
		_ = w.Stop()
	}()

	ext := cfg.Extension()
	wg.Go(func() {
		for event := range w.Events() {
			if strings.HasSuffix(event.Path, ext) {
				debouncer.Add(event.Path)
			}
		}
	})

	a.logger.Info("watching " + root)
	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-rebuild:
			a.logger.Info(fmt.Sprintf("%d file(s) changed, rebuilding", len(paths)))
			if err := a.build(ctx, cfg, opts); err != nil {
				a.logger.Error(err)
			}
		}
	}
}

// withOutput runs fn against the file at path, or against the app output
// when path is empty or "-".
func (a *App) withOutput(path string, fn func(w io.Writer) error) (err error) {
	if path == "" || path == "-" {
		return fn(a.stdout)
	}

	if err := os.MkdirAll(filepath.Dir(path), outputDirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output file"), "path", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = zerr.With(zerr.Wrap(cerr, "failed to close output file"), "path", path)
		}
	}()

	return fn(f)
}

// textCallback captures the outcome of a single load.
type textCallback struct {
	text string
	err  error
}

func (c *textCallback) FromText(text string) { c.text = text }

func (c *textCallback) Error(err error) { c.err = err }
