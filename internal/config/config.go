package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/belphemur/choghadiya/internal/choghadiya"
	"github.com/belphemur/choghadiya/internal/constants"
	"github.com/belphemur/choghadiya/internal/logging"
	"github.com/belphemur/choghadiya/internal/timeutil"
)

// DefaultConfigPath is used when no --config flag or CONFIG_FILE is given
const DefaultConfigPath = "configs/choghadiya.toml"

// EnvPrefix marks environment overrides, e.g. CHOGHADIYA_APP__PORT=9090
const EnvPrefix = "CHOGHADIYA_"

// Config holds the application configuration
type Config struct {
	App        AppConfig        `koanf:"app"`
	Service    ServiceConfig    `koanf:"service"`
	Choghadiya ChoghadiyaConfig `koanf:"choghadiya"`
	Calendar   CalendarConfig   `koanf:"calendar"`
}

// AppConfig holds the HTTP server settings
type AppConfig struct {
	Port                 int      `koanf:"port" validate:"min=1,max=65535"`
	MaxRequestsPerSecond int      `koanf:"max_requests_per_second" validate:"min=1"`
	AllowedOrigins       []string `koanf:"allowed_origins" validate:"min=1,dive,required"`
}

// ServiceConfig holds the service configuration
type ServiceConfig struct {
	LogLevel    string `koanf:"log_level" validate:"log_level"`
	Environment string `koanf:"environment" validate:"oneof=development production"`
}

// ChoghadiyaConfig holds the day window and the watcher refresh rate
type ChoghadiyaConfig struct {
	Sunrise         timeutil.ClockMinute `koanf:"sunrise"`
	Sunset          timeutil.ClockMinute `koanf:"sunset"`
	RefreshInterval time.Duration        `koanf:"refresh_interval"`
}

// CalendarConfig holds presentation defaults
type CalendarConfig struct {
	DefaultLanguage constants.Language `koanf:"default_language" validate:"oneof=en hi"`
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Service.Environment == "development"
}

// Window returns the configured day window
func (c *Config) Window() choghadiya.Window {
	return choghadiya.Window{
		Sunrise: c.Choghadiya.Sunrise.Minutes(),
		Sunset:  c.Choghadiya.Sunset.Minutes(),
	}
}

// Defaults returns the built-in configuration values
func Defaults() map[string]any {
	return map[string]any{
		"app.port":                    8080,
		"app.max_requests_per_second": 20,
		"app.allowed_origins":         []string{"*"},
		"service.log_level":           "info",
		"service.environment":         "production",
		"choghadiya.sunrise":          "06:00",
		"choghadiya.sunset":           "18:00",
		"choghadiya.refresh_interval": "1m",
		"calendar.default_language":   "en",
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
		return logging.IsValidLevel(fl.Field().String())
	})
	return v
}

// Load reads defaults, the TOML file at path (when present) and CHOGHADIYA_
// environment variables, in that order of precedence.
func Load(path string) (*Config, error) {
	return load(path, os.Environ)
}

func load(path string, environ func() []string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnv,
		EnvironFunc:   environ,
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// transformEnv maps CHOGHADIYA_APP__MAX_REQUESTS_PER_SECOND to app.max_requests_per_second
func transformEnv(k, v string) (string, any) {
	key := strings.ToLower(strings.TrimPrefix(k, EnvPrefix))
	if key == "" {
		return "", nil
	}
	return strings.ReplaceAll(key, "__", "."), v
}

// Validate checks struct constraints and the semantic rules between fields.
// All problems are reported together.
func (c *Config) Validate() error {
	var result *multierror.Error

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				result = multierror.Append(result, fmt.Errorf("invalid %s: %v fails %q", fe.Namespace(), fe.Value(), fe.Tag()))
			}
		} else {
			result = multierror.Append(result, err)
		}
	}

	if err := c.Window().Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	if c.Choghadiya.RefreshInterval < time.Second {
		result = multierror.Append(result, fmt.Errorf("refresh interval must be at least 1s, got %s", c.Choghadiya.RefreshInterval))
	}

	return result.ErrorOrNil()
}
