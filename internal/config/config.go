package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings read from configs/config.yml and PROOF_* env vars.
type Config struct {
	Port     string
	DBPath   string
	LogLevel string

	LiveEnabled bool
	LiveTick    time.Duration
}

const (
	envPrefix = "PROOF"

	defaultPort     = "8080"
	defaultDBPath   = "proofing.db"
	defaultLogLevel = "info"
	defaultLiveTick = 30 * time.Second
	minLiveTick     = time.Second
)

// Load reads the config file named "config" from the given search paths.
// A missing file is not an error; defaults and environment still apply.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", defaultPort)
	v.SetDefault("db.path", defaultDBPath)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("live.enabled", false)
	v.SetDefault("live.tick", defaultLiveTick)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Port:        v.GetString("port"),
		DBPath:      v.GetString("db.path"),
		LogLevel:    v.GetString("log.level"),
		LiveEnabled: v.GetBool("live.enabled"),
		LiveTick:    v.GetDuration("live.tick"),
	}
	if cfg.LiveTick < minLiveTick {
		return Config{}, fmt.Errorf("live.tick must be at least %s, got %s", minLiveTick, cfg.LiveTick)
	}
	return cfg, nil
}
