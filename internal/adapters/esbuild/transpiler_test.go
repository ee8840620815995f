package esbuild_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsxload/internal/adapters/esbuild"
	"go.trai.ch/jsxload/internal/core/domain"
)

func TestTranspiler_Transform(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		options map[string]any
		want    string
	}{
		{
			name:    "classic runtime",
			source:  "var w = <Widget title=\"x\" />;",
			options: map[string]any{"harmony": true},
			want:    `React.createElement(Widget, { title: "x" })`,
		},
		{
			name:    "custom factory",
			source:  "var w = <div />;",
			options: map[string]any{"jsxFactory": "h"},
			want:    `h("div", null)`,
		},
		{
			name:   "legacy pragma",
			source: domain.EnsurePragma("var w = <div />;", true),
			want:   `React.DOM("div", null)`,
		},
		{
			name:    "automatic runtime",
			source:  "export const w = <div />;",
			options: map[string]any{"jsx": "automatic"},
			want:    `react/jsx-runtime`,
		},
	}

	tr := esbuild.NewTranspiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.Transform(context.Background(), domain.TransformInput{
				Source:   tt.source,
				Filename: "Widget.jsx",
				Options:  tt.options,
			})
			require.NoError(t, err)
			assert.Contains(t, got.Code, tt.want)
			assert.Empty(t, got.SourceMap)
		})
	}
}

func TestTranspiler_Transform_SourceMap(t *testing.T) {
	got, err := esbuild.NewTranspiler().Transform(context.Background(), domain.TransformInput{
		Source:    "var w = <Widget />;",
		Filename:  "Widget.jsx",
		SourceMap: true,
	})
	require.NoError(t, err)

	var m struct {
		Version  int      `json:"version"`
		Sources  []string `json:"sources"`
		Mappings string   `json:"mappings"`
	}
	require.NoError(t, json.Unmarshal(got.SourceMap, &m))
	assert.Equal(t, 3, m.Version)
	assert.Equal(t, []string{"Widget.jsx"}, m.Sources)
	assert.NotEmpty(t, m.Mappings)
}

func TestTranspiler_Transform_SyntaxError(t *testing.T) {
	_, err := esbuild.NewTranspiler().Transform(context.Background(), domain.TransformInput{
		Source:   "var w = <div>;",
		Filename: "Broken.jsx",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken.jsx:1:")
}

func TestTranspiler_Transform_InvalidOptions(t *testing.T) {
	tr := esbuild.NewTranspiler()

	_, err := tr.Transform(context.Background(), domain.TransformInput{
		Source:  "<div />",
		Options: map[string]any{"target": "es1999"},
	})
	require.Error(t, err)

	_, err = tr.Transform(context.Background(), domain.TransformInput{
		Source:  "<div />",
		Options: map[string]any{"jsx": "magic"},
	})
	require.Error(t, err)
}

func TestTranspiler_Transform_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := esbuild.NewTranspiler().Transform(ctx, domain.TransformInput{Source: "<div />"})
	require.ErrorIs(t, err, context.Canceled)
}
