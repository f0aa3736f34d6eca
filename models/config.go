package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LLMConfig configures the optional OpenAI adjudication stages.
type LLMConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Enabled bool   `yaml:"enabled"`
}

// BatchConfig holds runtime configuration for batch classification runs.
type BatchConfig struct {
	URLs        []string  `yaml:"urls"`
	WorkerCount int       `yaml:"worker_count"`
	CacheDir    string    `yaml:"cache_dir"`
	CacheMaxAge string    `yaml:"cache_max_age"` // time.ParseDuration format
	Registry    string    `yaml:"registry"`      // optional category registry override file
	LLM         LLMConfig `yaml:"llm"`
}

// LoadBatchConfig reads a YAML batch configuration file.
func LoadBatchConfig(path string) (*BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := &BatchConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.WorkerCount <= 0 {
		config.WorkerCount = 4
	}
	if config.LLM.APIKey == "" {
		config.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	return config, nil
}
