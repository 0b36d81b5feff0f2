package config

// Config is the top-level derelict configuration, corresponding to .derelict.yml.
type Config struct {
	Title     string       `yaml:"title" koanf:"title"`
	Tagline   string       `yaml:"tagline" koanf:"tagline"`
	OutputDir string       `yaml:"output_dir" koanf:"output_dir"`
	Server    ServerConfig `yaml:"server" koanf:"server"`
	Charts    ChartsConfig `yaml:"charts" koanf:"charts"`
}

// ServerConfig holds settings for `derelict serve`.
type ServerConfig struct {
	Host            string `yaml:"host" koanf:"host"`
	Port            int    `yaml:"port" koanf:"port"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	RequestTimeout  int    `yaml:"request_timeout_seconds" koanf:"request_timeout_seconds"`
}

// ChartsConfig controls how the survey charts are drawn.
type ChartsConfig struct {
	Scheme       string `yaml:"scheme" koanf:"scheme"`
	BarSize      int    `yaml:"bar_size" koanf:"bar_size"`
	Step         int    `yaml:"step" koanf:"step"`
	CornerRadius int    `yaml:"corner_radius" koanf:"corner_radius"`
	Width        int    `yaml:"width" koanf:"width"`
	ShowTools    bool   `yaml:"show_tools" koanf:"show_tools"`
}
