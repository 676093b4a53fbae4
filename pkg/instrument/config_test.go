package instrument

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Finalize())
	assert.Contains(t, cfg.FilterNames(), "F115W")
}

func TestFinalizeFillsDefaults(t *testing.T) {
	cfg := Config{
		Name:       "X",
		ApertureM:  2.4,
		PixelScale: 0.05,
		Filters:    map[string]FilterDef{"V": {CenterUm: 0.55, WidthUm: 0.09, Peak: 0.8}},
	}
	require.NoError(t, cfg.Finalize())
	assert.Equal(t, 4, cfg.Oversample)
	assert.Equal(t, 5.0, cfg.FOVArcsec)
	assert.Equal(t, 5, cfg.NLambda)
}

func TestFinalizeRejectsBadConfigs(t *testing.T) {
	bad := []Config{
		{Name: "noap", PixelScale: 0.1, Filters: map[string]FilterDef{"V": {0.55, 0.09, 0.8}}},
		{Name: "noscl", ApertureM: 1, Filters: map[string]FilterDef{"V": {0.55, 0.09, 0.8}}},
		{Name: "nofilt", ApertureM: 1, PixelScale: 0.1},
		{Name: "badpass", ApertureM: 1, PixelScale: 0.1, Filters: map[string]FilterDef{"V": {0, 0.09, 0.8}}},
		{Name: "badpeak", ApertureM: 1, PixelScale: 0.1, Filters: map[string]FilterDef{"V": {0.55, 0.09, 1.7}}},
	}
	for _, cfg := range bad {
		assert.Error(t, cfg.Finalize(), cfg.Name)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	yml := `
name: BigCam
aperture_m: 8.1
pixelscale: 0.02
filters:
  K: {center_um: 2.2, width_um: 0.4, peak: 0.9}
`
	path := filepath.Join(t.TempDir(), "cam.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "BigCam", cfg.Name)
	assert.Equal(t, 8.1, cfg.ApertureM)
	assert.Equal(t, []string{"K"}, cfg.FilterNames())
	// defaults still filled in
	assert.Equal(t, 4, cfg.Oversample)
}

func TestLoadConfigReplacesFilterSet(t *testing.T) {
	// a file defining its own filters must not inherit the defaults
	yml := `
name: OneFilterCam
aperture_m: 1.0
pixelscale: 0.1
filters:
  K: {center_um: 2.2, width_um: 0.4, peak: 0.9}
`
	path := filepath.Join(t.TempDir(), "one.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"K"}, cfg.FilterNames())
}

func TestLoadConfigNoFiltersKeepsDefaults(t *testing.T) {
	yml := `
name: PlainCam
aperture_m: 1.0
pixelscale: 0.1
`
	path := filepath.Join(t.TempDir(), "plain.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().FilterNames(), cfg.FilterNames())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
