// Package script hosts browser transformer scripts in a goja runtime.
package script

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dop251/goja"
	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/zerr"
)

// vm is a goja runtime that evaluated one script.
// goja runtimes are not goroutine safe, every use goes through run.
type vm struct {
	mu      sync.Mutex
	rt      *goja.Runtime
	script  string
	version string
}

func newVM(logger ports.Logger, name, src string) (*vm, error) {
	rt := goja.New()
	global := rt.GlobalObject()
	for _, alias := range []string{"window", "self", "global"} {
		if err := rt.Set(alias, global); err != nil {
			return nil, zerr.Wrap(err, "failed to set up script globals")
		}
	}
	if err := rt.Set("console", console(rt, logger)); err != nil {
		return nil, zerr.Wrap(err, "failed to set up script console")
	}

	if _, err := rt.RunScript(name, src); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to evaluate script"), "script", name)
	}
	return &vm{rt: rt, script: name, version: fmt.Sprintf("%016x", xxhash.Sum64String(src))}, nil
}

// run calls fn with exclusive access to the runtime. A canceled ctx
// interrupts running script code.
func (v *vm) run(ctx context.Context, fn func(rt *goja.Runtime) error) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	interrupted := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		v.rt.Interrupt(ctx.Err())
		close(interrupted)
	})

	err := fn(v.rt)
	if !stop() {
		<-interrupted
		v.rt.ClearInterrupt()
	}

	var ierr *goja.InterruptedError
	if errors.As(err, &ierr) {
		if cause, ok := ierr.Value().(error); ok {
			return cause
		}
	}
	return err
}

// global returns the object bound to name.
func global(rt *goja.Runtime, name string) (*goja.Object, error) {
	v := rt.Get(name)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, zerr.With(zerr.New("script does not define global"), "global", name)
	}
	return v.ToObject(rt), nil
}

// method returns the function property name of obj.
func method(obj *goja.Object, name string) (goja.Callable, error) {
	fn, ok := goja.AssertFunction(obj.Get(name))
	if !ok {
		return nil, zerr.With(zerr.New("missing script method"), "method", name)
	}
	return fn, nil
}

// toJS converts a Go value into a plain script object through JSON.
func toJS(rt *goja.Runtime, v any) (goja.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode script options")
	}
	parse, err := jsonMethod(rt, "parse")
	if err != nil {
		return nil, err
	}
	return parse(goja.Undefined(), rt.ToValue(string(data)))
}

// stringify serializes v, calling its toJSON hook when it has one.
// Undefined and null yield nil.
func stringify(rt *goja.Runtime, v goja.Value) ([]byte, error) {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, nil
	}
	if s, ok := v.Export().(string); ok {
		return []byte(s), nil
	}
	fn, err := jsonMethod(rt, "stringify")
	if err != nil {
		return nil, err
	}
	out, err := fn(goja.Undefined(), v)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to serialize script value")
	}
	return []byte(out.String()), nil
}

func jsonMethod(rt *goja.Runtime, name string) (goja.Callable, error) {
	obj, err := global(rt, "JSON")
	if err != nil {
		return nil, err
	}
	return method(obj, name)
}

func console(rt *goja.Runtime, logger ports.Logger) *goja.Object {
	obj := rt.NewObject()
	logf := func(emit func(string)) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			args := make([]string, len(call.Arguments))
			for i, arg := range call.Arguments {
				args[i] = arg.String()
			}
			emit(strings.Join(args, " "))
			return goja.Undefined()
		}
	}
	_ = obj.Set("log", logf(logger.Info))
	_ = obj.Set("info", logf(logger.Info))
	_ = obj.Set("warn", logf(logger.Warn))
	_ = obj.Set("error", logf(logger.Warn))
	return obj
}
