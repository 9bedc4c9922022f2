package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type StateConfig struct {
	Dir string `mapstructure:"dir"`
}

type UIConfig struct {
	PageSize int  `mapstructure:"page_size"`
	Color    bool `mapstructure:"color"`
}

type Config struct {
	API   APIConfig   `mapstructure:"api"`
	State StateConfig `mapstructure:"state"`
	UI    UIConfig    `mapstructure:"ui"`
}

// LoadConfig reads files/config.yaml when present and falls back to
// defaults otherwise. The API base URL can also come from the
// PARTITURA_API_URL environment variable.
func LoadConfig() (*Config, error) {
	viper.SetDefault("api.base_url", "http://localhost:8000/api/v1")
	viper.SetDefault("api.timeout", 30*time.Second)
	viper.SetDefault("state.dir", defaultStateDir())
	viper.SetDefault("ui.page_size", 10)
	viper.SetDefault("ui.color", true)

	if err := viper.BindEnv("api.base_url", "PARTITURA_API_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	viper.SetConfigFile("files/config.yaml")
	if err := viper.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".partitura"
	}
	return filepath.Join(home, ".partitura")
}
