package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "SENDQR"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Preset    PresetConfig    `mapstructure:"preset"`
	QR        QRConfig        `mapstructure:"qr"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Invoke    InvokeConfig    `mapstructure:"invoke"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// PresetConfig is the draft a fresh page starts from.
type PresetConfig struct {
	Bank             string `mapstructure:"bank"`
	AccountNo        string `mapstructure:"account_no"`
	Holder           string `mapstructure:"holder"`
	Amount           int64  `mapstructure:"amount"`
	Memo             string `mapstructure:"memo"`
	IncludeOriginTag bool   `mapstructure:"include_origin_tag"`
}

type QRConfig struct {
	RecoveryLevel string  `mapstructure:"recovery_level"`
	DefaultSize   int     `mapstructure:"default_size"`
	MinSize       int     `mapstructure:"min_size"`
	MaxViewport   int     `mapstructure:"max_viewport"`
	Scale         float64 `mapstructure:"scale"`
}

type CacheConfig struct {
	QRTTL      time.Duration `mapstructure:"qr_ttl"`
	MaxEntries int           `mapstructure:"max_entries"`
}

type RateLimitConfig struct {
	PagePerMinute int `mapstructure:"page_per_minute"`
	QRPerMinute   int `mapstructure:"qr_per_minute"`
	APIPerMinute  int `mapstructure:"api_per_minute"`
}

type InvokeConfig struct {
	FallbackURL   string        `mapstructure:"fallback_url"`
	FallbackDelay time.Duration `mapstructure:"fallback_delay"`
}

type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("preset.bank", "국민은행")
	v.SetDefault("preset.account_no", "93800201135927")
	v.SetDefault("preset.holder", "전효준")
	v.SetDefault("preset.amount", 15000)
	v.SetDefault("preset.memo", "")
	v.SetDefault("preset.include_origin_tag", true)

	v.SetDefault("qr.recovery_level", "low")
	v.SetDefault("qr.default_size", 240)
	v.SetDefault("qr.min_size", 180)
	v.SetDefault("qr.max_viewport", 480)
	v.SetDefault("qr.scale", 0.6)

	v.SetDefault("cache.qr_ttl", 5*time.Minute)
	v.SetDefault("cache.max_entries", 256)

	v.SetDefault("rate_limit.page_per_minute", 600)
	v.SetDefault("rate_limit.qr_per_minute", 300)
	v.SetDefault("rate_limit.api_per_minute", 600)

	v.SetDefault("invoke.fallback_url", "")
	v.SetDefault("invoke.fallback_delay", 1200*time.Millisecond)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")
	v.SetDefault("logging.file_path", "")
}

// Load reads path (optional), .env and SENDQR_* environment variables on top of the defaults.
// A missing config file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
