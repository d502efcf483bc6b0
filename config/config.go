package config

import (
	_ "embed"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/reusedev/pattern-hub/tools"
	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultConfig []byte

var GConfig *Config

// Default returns the embedded default.yml.
func Default() []byte {
	return defaultConfig
}

// Init loads the YAML file at filePath, or the embedded default when filePath
// is empty, applies PATTERNS_* environment overrides and verifies the result.
func Init(filePath string) {
	data := defaultConfig
	if filePath != "" {
		data = tools.PanicOnError(tools.ReadFile(filePath))
	}
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	GConfig = c
}

// Parse builds a verified Config from YAML bytes and the environment.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}

type Config struct {
	Log             `yaml:"log"`
	DefaultPattern  string   `yaml:"default_pattern" env:"PATTERNS_DEFAULT_PATTERN"`
	Order           []string `yaml:"order"`
	Observer        `yaml:"observer"`
	State           `yaml:"state"`
	Strategy        `yaml:"strategy"`
	AbstractFactory `yaml:"abstract_factory"`
	FactoryMethod   `yaml:"factory_method"`
}

func (c *Config) Verify() error {
	if len(c.Order) == 0 {
		return fmt.Errorf("order must list at least one pattern")
	}
	if c.DefaultPattern == "" {
		return fmt.Errorf("default_pattern must be set")
	}
	if c.Strategy.Amount < 0 {
		return fmt.Errorf("strategy.amount must not be negative")
	}
	if c.State.Song == "" {
		return fmt.Errorf("state.song must be set")
	}
	return nil
}

type Log struct {
	LogLevel      string `yaml:"level" env:"PATTERNS_LOG_LEVEL"`
	LogFile       string `yaml:"file" env:"PATTERNS_LOG_FILE"`
	LogMaxSize    int    `yaml:"max_size" env:"PATTERNS_LOG_MAX_SIZE"`
	LogMaxBackups int    `yaml:"max_backups" env:"PATTERNS_LOG_MAX_BACKUPS"`
	LogMaxAge     int    `yaml:"max_age" env:"PATTERNS_LOG_MAX_AGE"`
}

type Observer struct {
	News     []string `yaml:"news"`
	Detach   string   `yaml:"detach"`
	Breaking string   `yaml:"breaking"`
}

type State struct {
	Song string `yaml:"song"`
}

type Strategy struct {
	Amount     float64 `yaml:"amount"`
	CreditCard `yaml:"credit_card"`
	PayPal     `yaml:"paypal"`
}

type CreditCard struct {
	Number string `yaml:"number"`
	Holder string `yaml:"holder"`
	CVV    string `yaml:"cvv"`
}

type PayPal struct {
	Email string `yaml:"email"`
}

type AbstractFactory struct {
	Orders []FurnitureOrder `yaml:"orders"`
}

type FurnitureOrder struct {
	Style    string `yaml:"style"`
	Material string `yaml:"material"`
	Color    string `yaml:"color"`
}

type FactoryMethod struct {
	Orders []VehicleOrder `yaml:"orders"`
}

type VehicleOrder struct {
	Kind  string `yaml:"kind"`
	Brand string `yaml:"brand"`
	Model string `yaml:"model"`
	Year  uint32 `yaml:"year"`
}
