package config

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"os"
	"regexp"
	"strings"
	"time"
)

const DefaultPath = "config.yml"

var templatePattern = regexp.MustCompile(`\{\{([^}]*)}}`)

type Config struct {
	Web       *WebConfig       `yaml:"web" validate:"required"`
	Upstream  *UpstreamConfig  `yaml:"upstream" validate:"required"`
	Analysis  *AnalysisConfig  `yaml:"analysis" validate:"required"`
	Telemetry *TelemetryConfig `yaml:"telemetry" validate:"required"`
}

type WebConfig struct {
	Listen      string `yaml:"listen" validate:"required"`
	Prefix      string `yaml:"prefix" validate:"omitempty,startswith=/"`
	CorsOrigins string `yaml:"cors_origins" validate:"required"`
}

type UpstreamConfig struct {
	BaseUrl   string        `yaml:"base_url" validate:"required,url"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout" validate:"gte=0"` // 0 keeps the http client default of no timeout
}

type AnalysisConfig struct {
	LookbackMonths int    `yaml:"lookback_months" validate:"gte=1"`
	ContentSource  string `yaml:"content_source" validate:"oneof=structure full json"`
}

type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint"` // OTLP/HTTP host:port, tracing is off when empty
	ServiceName string `yaml:"service_name" validate:"required"`
	Insecure    bool   `yaml:"insecure"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Web: &WebConfig{
			Listen:      ":8080",
			Prefix:      "/api",
			CorsOrigins: "*",
		},
		Upstream: &UpstreamConfig{
			BaseUrl: "https://www.ecfr.gov/api",
		},
		Analysis: &AnalysisConfig{
			LookbackMonths: 60,
			ContentSource:  "structure",
		},
		Telemetry: &TelemetryConfig{
			ServiceName: "ecfr-analyzer",
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	bytes, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("unable to read configuration file: %w", err)
	}

	if err == nil {
		if err := yaml.Unmarshal(Template(bytes), config); err != nil {
			return nil, fmt.Errorf("unable to parse configuration file: %w", err)
		}
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Template replaces {{ env.NAME || fallback }} expressions. Alternatives are
// tried left to right: env.NAME yields the variable when it is set and
// non-empty, anything else is a literal. No match yields an empty string.
func Template(content []byte) []byte {
	return templatePattern.ReplaceAllFunc(content, func(match []byte) []byte {
		expression := templatePattern.FindSubmatch(match)[1]

		for _, alternative := range strings.Split(string(expression), "||") {
			alternative = strings.TrimSpace(alternative)
			if name, ok := strings.CutPrefix(alternative, "env."); ok {
				if value := os.Getenv(name); value != "" {
					return []byte(value)
				}
				continue
			}
			if alternative != "" {
				return []byte(alternative)
			}
		}
		return nil
	})
}
