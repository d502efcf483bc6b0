package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefault(t *testing.T) {
	c, err := Parse(defaultConfig)
	require.NoError(t, err)

	assert.Equal(t, "all", c.DefaultPattern)
	assert.Len(t, c.Order, 9)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Empty(t, c.LogFile, "a default run writes no files")
	assert.Equal(t, 120.50, c.Strategy.Amount)
	assert.Equal(t, "1234567890123456", c.CreditCard.Number)
	assert.Equal(t, "bbc", c.Observer.Detach)
	assert.Len(t, c.AbstractFactory.Orders, 2)
	assert.Equal(t, VehicleOrder{Kind: "truck", Brand: "Volvo", Model: "FH16", Year: 2024}, c.FactoryMethod.Orders[2])
}

func TestParseEnvOverride(t *testing.T) {
	t.Setenv("PATTERNS_LOG_LEVEL", "debug")
	t.Setenv("PATTERNS_DEFAULT_PATTERN", "state")

	c, err := Parse(defaultConfig)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "state", c.DefaultPattern)
	// untouched by the environment
	assert.Equal(t, 10, c.LogMaxSize)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("PATTERNS_LOG_MAX_SIZE", "ten")

	_, err := Parse(defaultConfig)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name string
		yml  string
		want string
	}{
		{
			name: "missing order",
			yml:  "default_pattern: all\nstate:\n  song: x\n",
			want: "order must list at least one pattern",
		},
		{
			name: "missing default pattern",
			yml:  "order: [command]\nstate:\n  song: x\n",
			want: "default_pattern must be set",
		},
		{
			name: "negative amount",
			yml:  "order: [command]\ndefault_pattern: all\nstate:\n  song: x\nstrategy:\n  amount: -1\n",
			want: "strategy.amount must not be negative",
		},
		{
			name: "missing song",
			yml:  "order: [command]\ndefault_pattern: all\n",
			want: "state.song must be set",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yml))
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestParseBadYaml(t *testing.T) {
	_, err := Parse([]byte("order: [command"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml:")
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { GConfig = nil })

	Init("")
	require.NotNil(t, GConfig)
	assert.Equal(t, "Jay Chou - Blue and White Porcelain", GConfig.Song)

	path := filepath.Join(t.TempDir(), "config.yml")
	yml := "order: [state]\ndefault_pattern: state\nstate:\n  song: Hey Jude\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))
	Init(path)
	assert.Equal(t, "Hey Jude", GConfig.Song)
	assert.Equal(t, []string{"state"}, GConfig.Order)

	assert.Panics(t, func() { Init(filepath.Join(t.TempDir(), "missing.yml")) })
}
