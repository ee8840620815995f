package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsxload/cmd/jsxload/commands"
	"go.trai.ch/jsxload/internal/app"
	"go.trai.ch/jsxload/internal/build"
)

type mockApp struct {
	loadFunc   func(ctx context.Context, opts app.Options, name string) (string, error)
	buildFunc  func(ctx context.Context, opts app.BuildOptions) error
	bundleFunc func(ctx context.Context, opts app.BundleOptions) error
	watchFunc  func(ctx context.Context, opts app.BuildOptions) error
}

func (m *mockApp) Load(ctx context.Context, opts app.Options, name string) (string, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, opts, name)
	}
	return "", nil
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Bundle(ctx context.Context, opts app.BundleOptions) error {
	if m.bundleFunc != nil {
		return m.bundleFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.BuildOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Load(t *testing.T) {
	t.Run("prints compiled text", func(t *testing.T) {
		var captured app.Options
		mock := &mockApp{
			loadFunc: func(_ context.Context, opts app.Options, name string) (string, error) {
				captured = opts
				return "compiled " + name, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"load", "Widget", "--runtime", "browser", "-c", "site.yaml"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "compiled Widget\n", buf.String())
		assert.Equal(t, app.Options{ConfigPath: "site.yaml", Runtime: "browser"}, captured)
	})

	t.Run("defaults the config path", func(t *testing.T) {
		var captured app.Options
		mock := &mockApp{
			loadFunc: func(_ context.Context, opts app.Options, _ string) (string, error) {
				captured = opts
				return "", nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"load", "Widget"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "jsxload.yaml", captured.ConfigPath)
		assert.Empty(t, captured.Runtime)
	})

	t.Run("returns error on load failure", func(t *testing.T) {
		mock := &mockApp{
			loadFunc: func(_ context.Context, _ app.Options, _ string) (string, error) {
				return "", errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"load", "Widget"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("requires a module name", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"load"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Build(t *testing.T) {
	var captured app.BuildOptions
	called := false
	mock := &mockApp{
		buildFunc: func(_ context.Context, opts app.BuildOptions) error {
			captured = opts
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"build", "a", "b", "-o", "dist/app.js", "--jobs", "3"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
	assert.Equal(t, []string{"a", "b"}, captured.Modules)
	assert.Equal(t, "dist/app.js", captured.Output)
	assert.Equal(t, 3, captured.Jobs)
	assert.Equal(t, "jsxload.yaml", captured.ConfigPath)
}

func TestCommands_Watch(t *testing.T) {
	var captured app.BuildOptions
	mock := &mockApp{
		watchFunc: func(_ context.Context, opts app.BuildOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "-o", "-"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Empty(t, captured.Modules)
	assert.Equal(t, "-", captured.Output)
}

func TestCommands_Bundle(t *testing.T) {
	var captured app.BundleOptions
	mock := &mockApp{
		bundleFunc: func(_ context.Context, opts app.BundleOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"bundle", "main.jsx", "--output", "out.js"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "main.jsx", captured.Entry)
	assert.Equal(t, "out.js", captured.Output)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
