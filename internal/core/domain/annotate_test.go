package domain_test

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.trai.ch/jsxload/internal/core/domain"
)

const rawMap = `{"version":3,"sources":["<stdin>"],"names":[],"mappings":"AAAA;AACA"}`

type decodedMap struct {
	Version  int      `json:"version"`
	File     string   `json:"file"`
	Sources  []string `json:"sources"`
	Mappings string   `json:"mappings"`
}

func TestAnnotate_SourceURL(t *testing.T) {
	tests := []struct {
		descr  string
		result domain.TransformResult
		inline bool
	}{{
		descr:  "inline not requested",
		result: domain.TransformResult{Code: "a();", SourceMap: []byte(rawMap)},
		inline: false,
	}, {
		descr:  "inline requested but no map returned",
		result: domain.TransformResult{Code: "a();"},
		inline: true,
	}}

	for _, test := range tests {
		t.Run(test.descr, func(t *testing.T) {
			got, err := domain.Annotate(test.result, "Widget.jsx", "/static/Widget.jsx", test.inline)
			if err != nil {
				t.Fatalf("Annotate() returned error: %v", err)
			}
			want := "a();\n//# sourceURL=/static/Widget.jsx"
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Annotate() returned diff (-want,+got):\n%s", diff)
			}
			if strings.Contains(got, "sourceMappingURL") {
				t.Errorf("Annotate() appended both annotations: %q", got)
			}
		})
	}
}

func TestAnnotate_InlineSourceMap(t *testing.T) {
	result := domain.TransformResult{Code: "a();\nb();", SourceMap: []byte(rawMap)}

	got, err := domain.Annotate(result, "Widget.jsx", "http://cdn.test/js/Widget.jsx", true)
	if err != nil {
		t.Fatalf("Annotate() returned error: %v", err)
	}

	const prefix = "a();\nb();\n//# sourceMappingURL=data:application/json;base64,"
	if !strings.HasPrefix(got, prefix) {
		t.Fatalf("Annotate() = %q, want prefix %q", got, prefix)
	}
	if strings.Contains(got, "sourceURL=") {
		t.Errorf("Annotate() appended both annotations: %q", got)
	}

	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, prefix))
	if err != nil {
		t.Fatalf("failed to decode data URL: %v", err)
	}
	var m decodedMap
	if err := json.Unmarshal(payload, &m); err != nil {
		t.Fatalf("failed to unmarshal source map: %v", err)
	}

	want := decodedMap{
		Version:  3,
		File:     "Widget.jsx",
		Sources:  []string{"http://cdn.test/js/Widget.jsx"},
		Mappings: "AAAA;AACA",
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Stamped source map differs (-want,+got):\n%s", diff)
	}
}

func TestStampSourceMap_NoSources(t *testing.T) {
	encoded, err := domain.StampSourceMap([]byte(`{"version":3,"mappings":""}`), "A.jsx", "/A.jsx")
	if err != nil {
		t.Fatalf("StampSourceMap() returned error: %v", err)
	}
	payload, _ := base64.StdEncoding.DecodeString(encoded)
	var m decodedMap
	if err := json.Unmarshal(payload, &m); err != nil {
		t.Fatalf("failed to unmarshal source map: %v", err)
	}
	if diff := cmp.Diff([]string{"/A.jsx"}, m.Sources); diff != "" {
		t.Errorf("Sources differ (-want,+got):\n%s", diff)
	}
}

func TestStampSourceMap_KeepsOtherKeys(t *testing.T) {
	raw := `{"version":3,"file":"out.js","sources":["W.jsx","react.js"],` +
		`"sourcesContent":["var w = <W/>;",null],"names":["w"],"mappings":"AAAA",` +
		`"x_google_ignoreList":[1]}`

	encoded, err := domain.StampSourceMap([]byte(raw), "W.jsx", "/s/W.jsx")
	if err != nil {
		t.Fatalf("StampSourceMap() returned error: %v", err)
	}
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("failed to unmarshal source map: %v", err)
	}
	want := map[string]any{
		"version":             float64(3),
		"file":                "W.jsx",
		"sources":             []any{"/s/W.jsx", "react.js"},
		"sourcesContent":      []any{"var w = <W/>;", nil},
		"names":               []any{"w"},
		"mappings":            "AAAA",
		"x_google_ignoreList": []any{float64(1)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Stamped source map differs (-want,+got):\n%s", diff)
	}
	if !strings.Contains(string(payload), `"var w = <W/>;"`) {
		t.Errorf("source content was escaped: %s", payload)
	}
}

func TestStampSourceMap_Invalid(t *testing.T) {
	_, err := domain.StampSourceMap([]byte(`not json`), "A.jsx", "/A.jsx")
	if !errors.Is(err, domain.ErrInvalidSourceMap) {
		t.Errorf("Got error %v, want ErrInvalidSourceMap", err)
	}
}
