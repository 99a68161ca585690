package configuration

import (
	"os"

	"github.com/caarlos0/env"
	"gopkg.in/yaml.v2"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendFile   = "file"
	SessionBackendRedis  = "redis"
)

type Configuration struct {
	TelegramTokenBot string `yaml:"telegram-token-bot" env:"TELEGRAM_TOKEN_BOT"`

	StorageSettings struct {
		Directory string `yaml:"directory" env:"STORAGE_DIRECTORY"`
	} `yaml:"storage-settings"`

	SessionSettings struct {
		Backend      string `yaml:"backend" env:"SESSION_BACKEND"` // memory | file | redis
		RedisAddress string `yaml:"redis-address" env:"SESSION_REDIS_ADDRESS"`
	} `yaml:"session-settings"`
}

// Load reads the yaml config if present and applies environment overrides.
// A missing config file is fine, the environment alone can carry everything.
func Load(path string) (Configuration, error) {
	var config Configuration

	yamlFile, err := os.ReadFile(path)

	if err == nil {
		if err = yaml.Unmarshal(yamlFile, &config); err != nil {
			return config, err
		}
	} else if !os.IsNotExist(err) {
		return config, err
	}

	if err = env.Parse(&config); err != nil {
		return config, err
	}

	if config.StorageSettings.Directory == "" {
		config.StorageSettings.Directory = "./storage"
	}

	if config.SessionSettings.Backend == "" {
		config.SessionSettings.Backend = SessionBackendFile
	}

	return config, nil
}
