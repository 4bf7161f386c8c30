// Package config holds the explorer's render settings and preset
// viewpoints, loaded from and saved to yaml.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mandelscope/internal/viewport"
)

const (
	DefaultWidth         = 800
	DefaultHeight        = 600
	DefaultMaxIterations = 150
	DefaultZoom          = 1.0
	DefaultScheme        = "green"
	DefaultSupersample   = 1
)

type Config struct {
	Width         int          `yaml:"width"`
	Height        int          `yaml:"height"`
	MaxIterations uint32       `yaml:"max_iterations"`
	Center        CenterConfig `yaml:"center"`
	Zoom          float64      `yaml:"zoom"`
	Scheme        string       `yaml:"scheme"`
	Equalize      bool         `yaml:"equalize"`
	Supersample   int          `yaml:"supersample"`
	Workers       int          `yaml:"workers"`
}

type CenterConfig struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		MaxIterations: DefaultMaxIterations,
		Center: CenterConfig{
			Re: viewport.DefaultCenterRe,
			Im: viewport.DefaultCenterIm,
		},
		Zoom:        DefaultZoom,
		Scheme:      DefaultScheme,
		Supersample: DefaultSupersample,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Viewport converts the config into a view snapshot for its image width.
func (c *Config) Viewport() viewport.Viewport {
	maxIter := c.MaxIterations
	if maxIter < 1 {
		maxIter = 1
	}
	return viewport.Viewport{
		Center:        complex(c.Center.Re, c.Center.Im),
		Scale:         viewport.ScaleForZoom(c.Zoom, c.Width),
		MaxIterations: maxIter,
	}
}
