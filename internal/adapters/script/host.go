package script

import (
	"context"
	"sync"

	"github.com/dop251/goja"
	"go.trai.ch/jsxload/internal/core/domain"
	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var (
	_ ports.TranspilerProvider = (*Host)(nil)
	_ ports.Versioned          = (*transpiler)(nil)
)

// Globals names the object each transformer script defines.
var Globals = map[domain.Transformer]string{
	domain.TransformerJSX:   "JSXTransformer",
	domain.TransformerBabel: "Babel",
}

// Host loads transformer scripts into goja runtimes. Each script is
// evaluated at most once per Host.
type Host struct {
	text   ports.TextLoader
	logger ports.Logger

	group singleflight.Group
	mu    sync.Mutex
	vms   map[string]*vm
}

// NewHost creates a Host reading scripts through text.
func NewHost(text ports.TextLoader, logger ports.Logger) *Host {
	return &Host{
		text:   text,
		logger: logger,
		vms:    make(map[string]*vm),
	}
}

// Acquire implements ports.TranspilerProvider.
func (h *Host) Acquire(ctx context.Context, kind domain.Transformer, script string) (ports.Transpiler, error) {
	name, ok := Globals[kind]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownTransformer, "transformer is not script hosted"), "transformer", string(kind))
	}

	v, err := h.load(ctx, script)
	if err != nil {
		return nil, zerr.With(err, "transformer", string(kind))
	}

	var obj *goja.Object
	err = v.run(ctx, func(rt *goja.Runtime) error {
		var err error
		obj, err = global(rt, name)
		return err
	})
	if err != nil {
		return nil, zerr.With(err, "script", script)
	}
	return &transpiler{vm: v, global: obj, kind: kind}, nil
}

// load returns the runtime that evaluated script, evaluating it on first use.
func (h *Host) load(ctx context.Context, script string) (*vm, error) {
	if script == "" {
		return nil, zerr.New("no script configured")
	}

	h.mu.Lock()
	v, ok := h.vms[script]
	h.mu.Unlock()
	if ok {
		return v, nil
	}

	res, err, _ := h.group.Do(script, func() (any, error) {
		src, err := h.text.Load(ctx, script)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to load script"), "script", script)
		}
		v, err := newVM(h.logger, script, src)
		if err != nil {
			return nil, err
		}

		h.mu.Lock()
		h.vms[script] = v
		h.mu.Unlock()
		h.logger.Info("loaded script " + script)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*vm), nil //nolint:forcetypeassert // Do only returns *vm values
}

// transpiler calls <global>.transform(code, options) inside a hosted runtime.
type transpiler struct {
	vm     *vm
	global *goja.Object
	kind   domain.Transformer
}

// Version is a digest of the script source the transformer was defined by.
func (t *transpiler) Version() string {
	return t.vm.version
}

func (t *transpiler) Transform(ctx context.Context, in domain.TransformInput) (domain.TransformResult, error) {
	var out domain.TransformResult
	err := t.vm.run(ctx, func(rt *goja.Runtime) error {
		transform, err := method(t.global, "transform")
		if err != nil {
			return err
		}
		options := in.Options
		if options == nil {
			options = map[string]any{}
		}
		opts, err := toJS(rt, options)
		if err != nil {
			return err
		}

		res, err := transform(t.global, rt.ToValue(in.Source), opts)
		if err != nil {
			return err
		}
		if res == nil || goja.IsUndefined(res) || goja.IsNull(res) {
			return zerr.New("transform returned no result")
		}
		obj := res.ToObject(rt)

		code := obj.Get("code")
		if code == nil || goja.IsUndefined(code) {
			return zerr.New("transform result has no code")
		}
		out.Code = code.String()

		if in.SourceMap {
			out.SourceMap, err = stringify(rt, sourceMap(obj))
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		err = zerr.With(err, "transformer", string(t.kind))
		return domain.TransformResult{}, zerr.With(err, "script", t.vm.script)
	}
	return out, nil
}

// sourceMap returns the map of a transform result. JSXTransformer reports it
// as sourceMap, Babel as map.
func sourceMap(res *goja.Object) goja.Value {
	for _, key := range []string{"sourceMap", "map"} {
		if v := res.Get(key); v != nil && !goja.IsUndefined(v) && !goja.IsNull(v) {
			return v
		}
	}
	return nil
}
