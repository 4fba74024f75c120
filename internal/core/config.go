package core

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/stewardhq/steward/pkg/models"
)

// ConfigurationManager loads the assistant configuration from the base
// path.
type ConfigurationManager interface {
	Load() (*models.Config, error)
}

// viperConfigManager implements ConfigurationManager by reading an
// optional .stewardconfig YAML file.
type viperConfigManager struct {
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// .stewardconfig relative to basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *models.Config {
	return &models.Config{
		LLM: models.LLMConfig{
			Model:     "gpt-4o-mini",
			BaseURL:   "https://api.openai.com/v1",
			APIKeyEnv: "OPENAI_API_KEY",
		},
		OfflineMode:         false,
		DataDir:             "data",
		FollowUpHorizonDays: DefaultFollowUpHorizonDays,
	}
}

// Load reads .stewardconfig. A missing file yields the defaults.
func (cm *viperConfigManager) Load() (*models.Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName(".stewardconfig")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	v.SetDefault("llm.model", cfg.LLM.Model)
	v.SetDefault("llm.base_url", cfg.LLM.BaseURL)
	v.SetDefault("llm.api_key_env", cfg.LLM.APIKeyEnv)
	v.SetDefault("offline_mode", cfg.OfflineMode)
	v.SetDefault("data.dir", cfg.DataDir)
	v.SetDefault("follow_up.horizon_days", cfg.FollowUpHorizonDays)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .stewardconfig: %w", err)
	}

	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.BaseURL = v.GetString("llm.base_url")
	cfg.LLM.APIKeyEnv = v.GetString("llm.api_key_env")
	cfg.OfflineMode = v.GetBool("offline_mode")
	cfg.DataDir = v.GetString("data.dir")
	cfg.FollowUpHorizonDays = v.GetInt("follow_up.horizon_days")

	return cfg, nil
}
