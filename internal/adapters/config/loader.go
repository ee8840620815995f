// Package config provides the configuration loader for jsxload.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/jsxload/internal/core/domain"
	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the configuration file looked up in the working directory.
	DefaultFilename = "jsxload.yaml"
	// CoverageEnv enables coverage instrumentation when set to a true value.
	CoverageEnv = "JSXLOAD_COVERAGE"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	logger ports.Logger
}

// NewLoader creates a FileConfigLoader.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{logger: logger}
}

// Load reads the configuration at path. A missing file yields the defaults.
func (l *FileConfigLoader) Load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.logger.Info("no configuration at " + path + ", using defaults")
		data = nil
	case err != nil:
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	cfg, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// Parse decodes YAML configuration. Relative paths are resolved against dir.
func Parse(data []byte, dir string) (domain.Config, error) {
	var file Configfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to parse config file")
	}

	runtime, err := domain.ParseRuntime(file.Runtime)
	if err != nil {
		return domain.Config{}, err
	}
	transformer, err := domain.ParseTransformer(file.Transformer)
	if err != nil {
		return domain.Config{}, err
	}

	if file.FileExtension != "" && !strings.HasPrefix(file.FileExtension, ".") {
		return domain.Config{}, zerr.With(zerr.New("file extension must start with a dot"), "fileExtension", file.FileExtension)
	}

	cfg := domain.Config{
		Root:             resolvePath(dir, file.Root),
		FileExtension:    file.FileExtension,
		TransformOptions: file.TransformOptions,
		BabelOptions:     file.BabelOptions,
		UsePragma:        file.UsePragma,
		InlineSourceMap:  file.InlineSourceMap,
		Transformer:      transformer,
		Runtime:          runtime,
		IsBuild:          file.IsBuild,
		BaseURL:          file.BaseURL,
		Scripts:          make(map[domain.Transformer]string),
		Coverage:         file.Coverage || coverageFromEnv(),
		CoverageScript:   resolveLocation(dir, file.Scripts.Coverage),
		CoverageVariable: file.CoverageVariable,
		Modules:          file.Modules,
		PluginName:       file.PluginName,
	}
	if file.CacheFile != "" {
		cfg.CacheFile = resolvePath(dir, file.CacheFile)
	}
	if file.Output != "" {
		cfg.Output = resolvePath(dir, file.Output)
	}
	if s := file.Scripts.JSXTransformer; s != "" {
		cfg.Scripts[domain.TransformerJSX] = resolveLocation(dir, s)
	}
	if s := file.Scripts.Babel; s != "" {
		cfg.Scripts[domain.TransformerBabel] = resolveLocation(dir, s)
	}

	return cfg.WithDefaults(), nil
}

func coverageFromEnv() bool {
	v, ok := os.LookupEnv(CoverageEnv)
	if !ok {
		return false
	}
	enabled, err := strconv.ParseBool(v)
	return err == nil && enabled
}

func resolvePath(dir, p string) string {
	if p == "" {
		p = "."
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(dir, p)
}

// resolveLocation resolves script locations, leaving URLs untouched.
func resolveLocation(dir, loc string) string {
	if loc == "" || strings.Contains(loc, "://") {
		return loc
	}
	return resolvePath(dir, loc)
}
