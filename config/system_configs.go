package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"finboard/model"

	"github.com/joho/godotenv"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

// LoadConfigs layers the optional "config" environment variable, a JSON
// blob, over the built-in defaults. With no environment set at all the
// server still starts on port 8080 with the rate limiter on.
func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	envCfg := model.EnvConfig{
		Port:              "8080",
		Environment:       "development",
		FrontendUrl:       "http://localhost:3000",
		YahooBaseUrl:      "https://query1.finance.yahoo.com",
		RequestTimeoutSec: 10,
		RateLimiter:       true,
	}

	if rawJson := os.Getenv("config"); rawJson != "" {
		if err := json.Unmarshal([]byte(rawJson), &envCfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &SystemConfigs{
		Config: &envCfg,
	}, nil
}

// ConfigManager hands out the active config to middleware without locking.
type ConfigManager struct {
	value atomic.Value
}

func NewConfigManager(initial *model.EnvConfig) *ConfigManager {
	cm := &ConfigManager{}
	cm.value.Store(initial)
	return cm
}

func (cm *ConfigManager) GetConfig() *model.EnvConfig {
	return cm.value.Load().(*model.EnvConfig)
}

func (cm *ConfigManager) UpdateConfig(newCfg *model.EnvConfig) {
	cm.value.Store(newCfg)
}
