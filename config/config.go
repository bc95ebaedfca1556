package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Cognito struct {
		AppClientId     string `yaml:"appClientId"`
		AppClientSecret string `yaml:"appClientSecret"`
		UserPoolId      string `yaml:"userPoolId"`
		Region          string `yaml:"region"`
	} `yaml:"cognito"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`

	YouTube struct {
		ApiKey string `yaml:"apiKey"`
	} `yaml:"youtube"`

	RapidApi struct {
		Key  string `yaml:"key"`
		Host string `yaml:"host"`
	} `yaml:"rapidApi"`

	Adzuna struct {
		AppId   string `yaml:"appId"`
		AppKey  string `yaml:"appKey"`
		Country string `yaml:"country"`
	} `yaml:"adzuna"`

	Database struct {
		URI string `yaml:"uri"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`
}

// LoadConfig reads the configuration file and applies environment overrides
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	cfg.applyEnvOverrides()
	return &cfg, nil
}

// applyEnvOverrides lets secrets come from the environment (.env in dev)
// instead of being committed in the YAML file.
func (c *Config) applyEnvOverrides() {
	overrideString(&c.Gemini.ApiKey, "GEMINI_API_KEY")
	overrideString(&c.YouTube.ApiKey, "YOUTUBE_API_KEY")
	overrideString(&c.RapidApi.Key, "RAPIDAPI_KEY")
	overrideString(&c.RapidApi.Host, "RAPIDAPI_HOST")
	overrideString(&c.Adzuna.AppId, "ADZUNA_APP_ID")
	overrideString(&c.Adzuna.AppKey, "ADZUNA_APP_KEY")
	overrideString(&c.Database.URI, "MONGODB_URI")
	overrideString(&c.Redis.Addr, "REDIS_ADDR")
	overrideString(&c.JWT.Secret, "JWT_SECRET")

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Adzuna.Country == "" {
		c.Adzuna.Country = "in"
	}
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
