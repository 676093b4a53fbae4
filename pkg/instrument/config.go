package instrument

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v2"
)

/* Example config file ...

name: SimCam
aperture_m: 6.5
pixelscale: 0.031
oversample: 4
fov_arcsec: 5
nlambda: 5
filters:
  F115W: {center_um: 1.154, width_um: 0.268, peak: 0.45}
  F210M: {center_um: 2.096, width_um: 0.205, peak: 0.50}

*/

// A FilterDef describes one filter as an idealized top-hat bandpass.
type FilterDef struct {
	CenterUm float64 `yaml:"center_um"`
	WidthUm  float64 `yaml:"width_um"`
	Peak     float64 `yaml:"peak"`
}

// Config describes a camera: the telescope aperture it sits behind,
// its detector pixel scale, and its filter set.
type Config struct {
	Name       string               `yaml:"name"`
	ApertureM  float64              `yaml:"aperture_m"`
	PixelScale float64              `yaml:"pixelscale"` // arcsec per detector pixel
	Oversample int                  `yaml:"oversample"`
	FOVArcsec  float64              `yaml:"fov_arcsec"`
	NLambda    int                  `yaml:"nlambda"`
	Filters    map[string]FilterDef `yaml:"filters"`
}

// DefaultConfig is a 6.5m telescope with a near-IR camera and a small
// filter set, in the spirit of a JWST NIRCam short-wave channel.
func DefaultConfig() Config {
	return Config{
		Name:       "SimCam",
		ApertureM:  6.5,
		PixelScale: 0.031,
		Oversample: 4,
		FOVArcsec:  5,
		NLambda:    5,
		Filters: map[string]FilterDef{
			"F115W": {CenterUm: 1.154, WidthUm: 0.268, Peak: 0.45},
			"F200W": {CenterUm: 1.990, WidthUm: 0.461, Peak: 0.50},
			"F210M": {CenterUm: 2.096, WidthUm: 0.205, Peak: 0.50},
			"F360M": {CenterUm: 3.621, WidthUm: 0.372, Peak: 0.55},
		},
	}
}

func LoadConfig(filename string) (Config, error) {
	// Start from the defaults, but with no filter set: yaml merges
	// maps on unmarshal, and a file defining its own filters must
	// replace the default set, not extend it.
	c := DefaultConfig()
	c.Filters = nil

	contents, err := os.ReadFile(filename)
	if err != nil {
		return c, fmt.Errorf("config read '%s': %v", filename, err)
	}
	if err := yaml.Unmarshal(contents, &c); err != nil {
		return c, fmt.Errorf("config parse '%s': %v", filename, err)
	}

	if len(c.Filters) == 0 {
		c.Filters = DefaultConfig().Filters
	}

	return c, c.Finalize()
}

// Finalize does sanity checks and fills in defaults.
func (c *Config) Finalize() error {
	if c.ApertureM <= 0 {
		return fmt.Errorf("config '%s': aperture_m %g must be > 0", c.Name, c.ApertureM)
	}
	if c.PixelScale <= 0 {
		return fmt.Errorf("config '%s': pixelscale %g must be > 0", c.Name, c.PixelScale)
	}
	if c.Oversample < 1 {
		c.Oversample = 4
	}
	if c.FOVArcsec <= 0 {
		c.FOVArcsec = 5
	}
	if c.NLambda < 1 {
		c.NLambda = 5
	}
	if len(c.Filters) == 0 {
		return fmt.Errorf("config '%s': no filters defined", c.Name)
	}
	for name, f := range c.Filters {
		if f.CenterUm <= 0 || f.WidthUm <= 0 {
			return fmt.Errorf("config '%s': filter %s has non-physical passband", c.Name, name)
		}
		if f.Peak <= 0 || f.Peak > 1 {
			return fmt.Errorf("config '%s': filter %s peak throughput %g outside (0,1]", c.Name, name, f.Peak)
		}
	}
	return nil
}

// FilterNames returns the configured filter names, sorted.
func (c Config) FilterNames() []string {
	out := make([]string, 0, len(c.Filters))
	for name := range c.Filters {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
