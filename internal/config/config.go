package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"apichat/internal/util"
)

// Config holds all application configuration.
// The LLM host, model and system prompt are fixed and not part of it.
type Config struct {
	// Server
	Port int    `mapstructure:"port"`
	Env  string `mapstructure:"environment"` // development, production

	// LLM transport
	LLMBackend string        `mapstructure:"llm_backend"` // ollama, openai
	LLMTimeout time.Duration `mapstructure:"llm_timeout"` // 0 means no timeout

	// Tracing
	OTLPEndpoint    string  `mapstructure:"otlp_endpoint"` // empty disables tracing
	TraceSampleRate float64 `mapstructure:"trace_sample_rate"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // console, json
}

// EnvPrefix is prepended to every environment variable, e.g. APICHAT_PORT.
const EnvPrefix = "APICHAT"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8000)
	v.SetDefault("environment", "development")
	v.SetDefault("llm_backend", util.BackendOllama)
	v.SetDefault("llm_timeout", time.Duration(0))
	v.SetDefault("otlp_endpoint", "")
	v.SetDefault("trace_sample_rate", 1.0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
}

// Load loads configuration from defaults, an optional file and the environment.
// An empty path skips the file; yaml, toml and json files are accepted.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks configuration values that would prevent startup.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	switch c.LLMBackend {
	case util.BackendOllama, util.BackendOpenAI:
	default:
		return fmt.Errorf("unknown llm_backend %q (want %q or %q)", c.LLMBackend, util.BackendOllama, util.BackendOpenAI)
	}

	if c.LLMTimeout < 0 {
		return fmt.Errorf("llm_timeout must not be negative")
	}

	if c.TraceSampleRate < 0 || c.TraceSampleRate > 1 {
		return fmt.Errorf("trace_sample_rate %.2f outside [0, 1]", c.TraceSampleRate)
	}

	return nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
