package script_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsxload/internal/adapters/script"
	"go.trai.ch/jsxload/internal/core/domain"
)

const istanbulScript = `
function Instrumenter(opts) {
  this.variable = opts.coverageVariable;
}
Instrumenter.prototype.instrumentSync = function (code, path) {
  return this.variable + "[" + JSON.stringify(path) + "] = {};\n" + code;
};
`

func TestInstrumenter_ConfiguredVariable(t *testing.T) {
	host, _ := newHost(t, map[string]string{"istanbul.js": istanbulScript})
	inst := script.NewInstrumenter(host)

	got, err := inst.Instrument(context.Background(), "var a = 1;", "/src/A.jsx", domain.CoverageOptions{
		Script:   "istanbul.js",
		Variable: "__cov__",
	})
	require.NoError(t, err)
	assert.Equal(t, "__cov__[\"/src/A.jsx\"] = {};\nvar a = 1;", got)
}

func TestInstrumenter_DiscoversVariable(t *testing.T) {
	host, _ := newHost(t, map[string]string{"istanbul.js": istanbulScript + "\nvar $$cov_1712 = {};\n"})
	inst := script.NewInstrumenter(host)

	got, err := inst.Instrument(context.Background(), "a();", "A.jsx", domain.CoverageOptions{Script: "istanbul.js"})
	require.NoError(t, err)
	assert.Equal(t, "$$cov_1712[\"A.jsx\"] = {};\na();", got)
}

func TestInstrumenter_DefaultVariable(t *testing.T) {
	host, _ := newHost(t, map[string]string{"istanbul.js": istanbulScript})
	inst := script.NewInstrumenter(host)

	got, err := inst.Instrument(context.Background(), "a();", "A.jsx", domain.CoverageOptions{Script: "istanbul.js"})
	require.NoError(t, err)
	assert.Equal(t, "__coverage__[\"A.jsx\"] = {};\na();", got)
}

func TestInstrumenter_MissingConstructor(t *testing.T) {
	host, _ := newHost(t, map[string]string{"empty.js": "var x;"})
	inst := script.NewInstrumenter(host)

	_, err := inst.Instrument(context.Background(), "a();", "A.jsx", domain.CoverageOptions{Script: "empty.js"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instrumentation failed")
}
