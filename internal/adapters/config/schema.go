package config

// Configfile represents the structure of the jsxload.yaml configuration file.
type Configfile struct {
	Root             string         `yaml:"root"`
	FileExtension    string         `yaml:"fileExtension"`
	TransformOptions map[string]any `yaml:"transformOptions"`
	BabelOptions     map[string]any `yaml:"babelOptions"`
	UsePragma        bool           `yaml:"usePragma"`
	InlineSourceMap  bool           `yaml:"inlineSourceMap"`
	Transformer      string         `yaml:"transformer"`
	Runtime          string         `yaml:"runtime"`
	IsBuild          bool           `yaml:"isBuild"`
	BaseURL          string         `yaml:"baseUrl"`
	Scripts          ScriptsDTO     `yaml:"scripts"`
	Coverage         bool           `yaml:"coverage"`
	CoverageVariable string         `yaml:"coverageVariable"`
	CacheFile        string         `yaml:"cacheFile"`
	Modules          []string       `yaml:"modules"`
	Output           string         `yaml:"output"`
	PluginName       string         `yaml:"pluginName"`
}

// ScriptsDTO locates the scripts defining the hosted transformers.
type ScriptsDTO struct {
	JSXTransformer string `yaml:"JSXTransformer"`
	Babel          string `yaml:"babel"`
	Coverage       string `yaml:"coverage"`
}
