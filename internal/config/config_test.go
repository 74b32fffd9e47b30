package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig_YAMLRoundTrip(t *testing.T) {
	disabled := false
	original := &Config{
		DebugReport:      "out/debug.html",
		Title:            "Compiler report",
		RunID:            &disabled,
		MaxParallelReads: 4,
	}

	data, err := yaml.Marshal(original)
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, *original, decoded)
}

func TestConfig_ZeroValueMarshalsEmpty(t *testing.T) {
	data, err := yaml.Marshal(&Config{})
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestConfig_ReportPath(t *testing.T) {
	var nilCfg *Config
	assert.Equal(t, "", nilCfg.ReportPath())
	assert.Equal(t, "r.html", (&Config{DebugReport: "r.html"}).ReportPath())
}

func TestConfig_RunIDEnabled(t *testing.T) {
	on, off := true, false
	var nilCfg *Config
	assert.True(t, nilCfg.RunIDEnabled())
	assert.True(t, (&Config{}).RunIDEnabled())
	assert.True(t, (&Config{RunID: &on}).RunIDEnabled())
	assert.False(t, (&Config{RunID: &off}).RunIDEnabled())
}
