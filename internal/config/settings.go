package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultModel = "gemini-1.5-flash"

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable is required")

// Generation holds the sampling parameters sent with every Gemini call.
type Generation struct {
	Temperature     float64 `yaml:"temperature"`
	TopP            float64 `yaml:"top_p"`
	TopK            int     `yaml:"top_k"`
	MaxOutputTokens int     `yaml:"max_output_tokens"`
}

// Settings is built once at startup and only read afterwards.
type Settings struct {
	APIKey             string        `yaml:"-"`
	Model              string        `yaml:"model"`
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	Debug              bool          `yaml:"debug"`
	Generation         Generation    `yaml:"generation"`
	RequestTimeout     time.Duration `yaml:"request_timeout"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
}

func Default() *Settings {
	return &Settings{
		Model: DefaultModel,
		Host:  "0.0.0.0",
		Port:  5000,
		Generation: Generation{
			Temperature:     0.7,
			TopP:            0.9,
			TopK:            40,
			MaxOutputTokens: 1000,
		},
		RequestTimeout:  60 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Load reads .env (if present), then the optional YAML file at path, then the
// environment. Later sources win. The API key is only ever read from the
// environment and is not checked here; see Validate.
func Load(path string) (*Settings, error) {
	godotenv.Load()

	settings := Default()
	if path != "" {
		if err := settings.loadFile(path); err != nil {
			return nil, err
		}
	}
	settings.loadEnv()
	return settings, nil
}

func (s *Settings) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse settings file %s: %w", path, err)
	}
	return nil
}

func (s *Settings) loadEnv() {
	s.APIKey = os.Getenv("GEMINI_API_KEY")
	s.Model = getEnv("GEMINI_MODEL", s.Model)
	s.Host = getEnv("HOST", s.Host)
	s.Port = getEnvAsInt("PORT", s.Port)
	if value := os.Getenv("DEBUG"); value != "" {
		s.Debug = strings.ToLower(value) == "true"
	}

	s.Generation.Temperature = getEnvAsFloat("GEMINI_TEMPERATURE", s.Generation.Temperature)
	s.Generation.TopP = getEnvAsFloat("GEMINI_TOP_P", s.Generation.TopP)
	s.Generation.TopK = getEnvAsInt("GEMINI_TOP_K", s.Generation.TopK)
	s.Generation.MaxOutputTokens = getEnvAsInt("GEMINI_MAX_TOKENS", s.Generation.MaxOutputTokens)

	s.RequestTimeout = getEnvAsDuration("REQUEST_TIMEOUT", s.RequestTimeout)
	if value := os.Getenv("CORS_ALLOWED_ORIGINS"); value != "" {
		s.CORSAllowedOrigins = splitList(value)
	}
}

// Validate reports whether the AI client can be configured from s.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.APIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func (s *Settings) APIKeySet() bool {
	return s.APIKey != ""
}

func (s *Settings) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
