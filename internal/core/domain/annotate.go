package domain

import (
	"bytes"
	"encoding/base64"
	"encoding/json"

	"github.com/neelance/sourcemap"
	"go.trai.ch/zerr"
)

const (
	sourceURLComment        = "\n//# sourceURL="
	sourceMappingURLComment = "\n//# sourceMappingURL=data:application/json;base64,"
)

// Annotate appends exactly one location comment to the transformed code.
//
// When inline is set and the transpiler returned a source map, the map is
// stamped with name and url and appended as a base64 data URL. Otherwise a
// plain sourceURL comment pointing at url is appended.
func Annotate(result TransformResult, name, url string, inline bool) (string, error) {
	if !inline || len(result.SourceMap) == 0 {
		return result.Code + sourceURLComment + url, nil
	}

	encoded, err := StampSourceMap(result.SourceMap, name, url)
	if err != nil {
		return "", err
	}
	return result.Code + sourceMappingURLComment + encoded, nil
}

// StampSourceMap rewrites the file and first source entries of a serialized
// source map and returns it base64 encoded. Every other key, sourcesContent
// included, is kept as is.
func StampSourceMap(raw []byte, name, url string) (string, error) {
	m, err := sourcemap.ReadFrom(bytes.NewReader(raw))
	if err != nil {
		return "", zerr.With(zerr.Wrap(ErrInvalidSourceMap, err.Error()), "file", name)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return "", zerr.With(zerr.Wrap(ErrInvalidSourceMap, "source map is not an object"), "file", name)
	}

	sources := m.Sources
	if len(sources) == 0 {
		sources = []string{url}
	} else {
		sources[0] = url
	}

	if fields["file"], err = marshalJSON(name); err != nil {
		return "", err
	}
	if fields["sources"], err = marshalJSON(sources); err != nil {
		return "", err
	}

	out, err := marshalJSON(fields)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(out), nil
}

// marshalJSON encodes v without HTML escaping.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, zerr.Wrap(err, "failed to encode source map")
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}
