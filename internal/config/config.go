package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port           int               `yaml:"port"`
		AllowedOrigins []string          `yaml:"allowedOrigins"`
		RateLimit      int               `yaml:"rateLimit"` // requests per second per client IP, 0 = off
		APIKeys        map[string]string `yaml:"apiKeys"`   // client name -> key, protects /v1
	} `yaml:"server"`

	Database struct {
		Driver   string `yaml:"driver"` // mysql | postgres | "" (history off)
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslMode"`
	} `yaml:"database"`

	Classifier struct {
		Backend   string `yaml:"backend"` // stub | openai
		OpenAIKey string `yaml:"openaiKey"`
		Model     string `yaml:"model"`
		BaseURL   string `yaml:"baseURL"`
		DelayMS   int    `yaml:"delayMs"`
	} `yaml:"classifier"`

	Client struct {
		Endpoint        string   `yaml:"endpoint"`
		ConfidenceBoost *float64 `yaml:"confidenceBoost"`
	} `yaml:"client"`
}

// Default config, dipakai kalau file tidak ada
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load baca file config.yaml. File yang tidak ada bukan error: default dipakai.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && cfg.Classifier.OpenAIKey == "" {
		cfg.Classifier.OpenAIKey = key
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"https://phishproof.netlify.app", "http://localhost:5173"}
	}
	if c.Classifier.Backend == "" {
		c.Classifier.Backend = "stub"
	}
	if c.Client.Endpoint == "" {
		c.Client.Endpoint = "http://localhost:8000/analyze"
	}
	if c.Client.ConfidenceBoost == nil {
		boost := 30.0
		c.Client.ConfidenceBoost = &boost
	}
	if c.Database.Driver == "postgres" && c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
}

// Validate cek kombinasi setting yang tidak masuk akal
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "", "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	switch c.Classifier.Backend {
	case "stub":
	case "openai":
		if c.Classifier.OpenAIKey == "" {
			return fmt.Errorf("classifier backend openai requires openaiKey or OPENAI_API_KEY")
		}
	default:
		return fmt.Errorf("unsupported classifier backend: %q", c.Classifier.Backend)
	}
	return nil
}

// Helper untuk build DSN MySQL
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

// Helper untuk build DSN Postgres
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
