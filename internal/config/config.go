// Package config handles tool configuration loading.
package config

// Config holds all stlander settings.
type Config struct {
	Align   AlignConfig   `yaml:"align"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// AlignConfig holds alignment defaults surfaced to the core.
type AlignConfig struct {
	// PA2Target is where the 2nd principal axis lands: "Y" or "Z".
	PA2Target string `yaml:"pa2_target"`
	// Epsilon overrides the degenerate-area tolerance; 0 means auto.
	Epsilon float64 `yaml:"epsilon"`
}

// RenderConfig holds comparison render settings.
type RenderConfig struct {
	Size     int       `yaml:"size"`
	Scale    int       `yaml:"scale"`
	Style    string    `yaml:"style"` // solid, toon, wireframe
	Eye      []float64 `yaml:"eye"`
	Up       []float64 `yaml:"up"`
	Ambient  string    `yaml:"ambient"`
	Diffuse  string    `yaml:"diffuse"`
	Simplify float64   `yaml:"simplify"` // preview decimation factor, 0 disables
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Align: AlignConfig{
			PA2Target: "Y",
		},
		Render: RenderConfig{
			Size:    800,
			Scale:   2,
			Style:   "solid",
			Eye:     []float64{3, 2, 3},
			Up:      []float64{0, 0, 1},
			Ambient: "444444",
			Diffuse: "bbbbbb",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
