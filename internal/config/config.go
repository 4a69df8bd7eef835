package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	Addr        string `mapstructure:"ADDR"`
	WebDir      string `mapstructure:"WEB_DIR"`
	OpenBrowser bool   `mapstructure:"OPEN_BROWSER"`

	Store      string        `mapstructure:"STORE"`
	RedisURL   string        `mapstructure:"REDIS_URL"`
	SessionTTL time.Duration `mapstructure:"SESSION_TTL"`

	// 为空时不归档已结束的对局
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	Strict bool `mapstructure:"STRICT"`

	LogLevel     string `mapstructure:"LOG_LEVEL"`
	LogFormat    string `mapstructure:"LOG_FORMAT"`
	LogFile      string `mapstructure:"LOG_FILE"`
	LogToConsole bool   `mapstructure:"LOG_TO_CONSOLE"`
	LogToFile    bool   `mapstructure:"LOG_TO_FILE"`
	LogCaller    bool   `mapstructure:"LOG_CALLER"`
}

var defaults = map[string]any{
	"ADDR":           ":2888",
	"WEB_DIR":        "./web",
	"OPEN_BROWSER":   false,
	"STORE":          StoreMemory,
	"REDIS_URL":      "",
	"SESSION_TTL":    24 * time.Hour,
	"DATABASE_URL":   "",
	"STRICT":         false,
	"LOG_LEVEL":      "info",
	"LOG_FORMAT":     "legacy",
	"LOG_FILE":       "logs/xiangqi.log",
	"LOG_TO_CONSOLE": true,
	"LOG_TO_FILE":    false,
	"LOG_CALLER":     false,
}

// Setup 读取配置：默认值 < 配置文件（cfgPath 为空则跳过）< XIANGQI_* 环境变量。
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix("XIANGQI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	switch c.Store {
	case StoreMemory:
	case StoreRedis:
		if strings.TrimSpace(c.RedisURL) == "" {
			return errors.New("REDIS_URL is required for the redis store")
		}
	default:
		return fmt.Errorf("unknown STORE %q", c.Store)
	}
	if c.SessionTTL < 0 {
		return errors.New("SESSION_TTL must not be negative")
	}
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("ADDR is required")
	}
	return nil
}
