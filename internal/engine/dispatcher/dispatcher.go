// Package dispatcher implements the JSX module loader plugin.
package dispatcher

import (
	"context"
	"fmt"

	"go.trai.ch/jsxload/internal/core/domain"
	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request is a single module load.
type Request struct {
	// Name is the module name as requested by the host. It may lack the JSX suffix.
	Name string
	// Resolver maps the normalized module name to a loadable location.
	Resolver ports.Resolver
	// Config is the configuration bag of the request.
	Config domain.Config
	// Session receives the compiled text when Config.IsBuild is set.
	Session *domain.BuildSession
}

// Strategy compiles a normalized module name into executable text.
type Strategy interface {
	Compile(ctx context.Context, name string, req Request) (string, error)
}

// Dispatcher selects a transform strategy per request and delivers the
// result to the host loader.
type Dispatcher struct {
	strategies map[domain.Transformer]Strategy
	logger     ports.Logger
}

// New creates a Dispatcher over the given strategies.
func New(logger ports.Logger, strategies map[domain.Transformer]Strategy) *Dispatcher {
	return &Dispatcher{
		strategies: strategies,
		logger:     logger,
	}
}

// Compile loads and transforms a module, returning its final text.
//
// In build mode the text is recorded in the request's session under the
// name the host asked for, before Compile returns.
func (d *Dispatcher) Compile(ctx context.Context, req Request) (string, error) {
	kind := domain.SelectTransformer(req.Config)
	strategy, ok := d.strategies[kind]
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownTransformer, "no strategy registered"), "transformer", string(kind))
	}

	name := domain.EnsureExtension(req.Name, req.Config.Extension())
	d.logger.Info(fmt.Sprintf("loading %s with %s", name, kind))
	text, err := strategy.Compile(ctx, name, req)
	if err != nil {
		return "", zerr.With(err, "module", req.Name)
	}

	if req.Config.IsBuild {
		req.Session.Record(req.Name, text)
	}
	return text, nil
}

// Load runs Compile and reports the outcome to cb.
// Exactly one of cb.FromText and cb.Error is called.
func (d *Dispatcher) Load(ctx context.Context, req Request, cb ports.LoadCallback) {
	text, err := d.Compile(ctx, req)
	if err != nil {
		d.logger.Error(err)
		cb.Error(err)
		return
	}
	cb.FromText(text)
}

// Write emits a module recorded in session as a named block prefixed with
// pluginName. Modules that were never recorded are skipped.
func (d *Dispatcher) Write(session *domain.BuildSession, pluginName, name string, w ports.ModuleWriter) error {
	text, ok := session.Lookup(name)
	if !ok {
		return nil
	}
	if err := w.AsModule(pluginName+"!"+name, text); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write module"), "module", name)
	}
	return nil
}
