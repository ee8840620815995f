package script

import (
	"context"
	"slices"
	"strings"

	"github.com/dop251/goja"
	"go.trai.ch/jsxload/internal/core/domain"
	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// CoverageGlobalPrefix marks globals created by coverage-instrumented code.
	CoverageGlobalPrefix = "$$cov_"
	// DefaultCoverageVariable is used when no coverage global is found.
	DefaultCoverageVariable = "__coverage__"
)

var _ ports.Instrumenter = (*Instrumenter)(nil)

// Instrumenter runs an istanbul-style instrumenter script:
// new Instrumenter({coverageVariable}).instrumentSync(code, path).
type Instrumenter struct {
	host *Host
}

// NewInstrumenter creates an Instrumenter loading its script through host.
func NewInstrumenter(host *Host) *Instrumenter {
	return &Instrumenter{host: host}
}

// Instrument implements ports.Instrumenter. Without a configured variable the
// first global starting with CoverageGlobalPrefix is used.
func (i *Instrumenter) Instrument(ctx context.Context, code, path string, opts domain.CoverageOptions) (string, error) {
	v, err := i.host.load(ctx, opts.Script)
	if err != nil {
		return "", zerr.Wrap(err, "failed to load coverage instrumenter")
	}

	var out string
	err = v.run(ctx, func(rt *goja.Runtime) error {
		variable := opts.Variable
		if variable == "" {
			variable = coverageVariable(rt)
		}

		ctor, err := global(rt, "Instrumenter")
		if err != nil {
			return err
		}
		cfg := rt.NewObject()
		if err := cfg.Set("coverageVariable", variable); err != nil {
			return err
		}
		inst, err := rt.New(ctor, cfg)
		if err != nil {
			return err
		}

		instrument, err := method(inst, "instrumentSync")
		if err != nil {
			return err
		}
		res, err := instrument(inst, rt.ToValue(code), rt.ToValue(path))
		if err != nil {
			return err
		}
		out = res.String()
		return nil
	})
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "instrumentation failed"), "path", path)
	}
	return out, nil
}

func coverageVariable(rt *goja.Runtime) string {
	keys := rt.GlobalObject().Keys()
	slices.Sort(keys)
	for _, key := range keys {
		if strings.HasPrefix(key, CoverageGlobalPrefix) {
			return key
		}
	}
	return DefaultCoverageVariable
}
