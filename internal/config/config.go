// Package config loads the bot configuration from a TOML file, .env files and the environment,
// and validates it before anything else starts.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Bot          BotConfig          `mapstructure:"bot"`
	Discord      DiscordConfig      `mapstructure:"discord"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Handler      HandlerConfig      `mapstructure:"handler"`
	Applications ApplicationsConfig `mapstructure:"applications"`
}

type BotConfig struct {
	LogLevel  string `mapstructure:"log_level"  validate:"oneof=trace debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=json console"`
}

type DiscordConfig struct {
	Token      string   `mapstructure:"token"      validate:"required"`
	Prefix     string   `mapstructure:"prefix"     validate:"required,max=5"`
	Moderators []string `mapstructure:"moderators" validate:"dive,required,numeric"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type HandlerConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"    validate:"min=1s,max=10m"`
	Workers   int           `mapstructure:"workers"    validate:"min=1,max=64"`
	QueueSize int           `mapstructure:"queue_size" validate:"min=1"`
}

type ApplicationsConfig struct {
	DigestCron      string `mapstructure:"digest_cron"`
	DigestChannelID string `mapstructure:"digest_channel_id" validate:"required_with=DigestCron"`
}

const EnvPrefix = "MEMBERBOT"

func setDefaults(v *viper.Viper) {
	v.SetDefault("bot.log_level", "info")
	v.SetDefault("bot.log_format", "json")
	v.SetDefault("discord.token", "")
	v.SetDefault("discord.prefix", "!")
	v.SetDefault("discord.moderators", []string{})
	v.SetDefault("database.path", "memberbot.db")
	v.SetDefault("handler.timeout", "30s")
	v.SetDefault("handler.workers", 4)
	v.SetDefault("handler.queue_size", 64)
	v.SetDefault("applications.digest_cron", "")
	v.SetDefault("applications.digest_channel_id", "")
}

// Load reads configuration from path. A missing file is fine as long as the environment supplies
// the required keys.
func Load(path string) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err = v.BindEnv("discord.token", EnvPrefix+"_DISCORD_TOKEN", "DISCORD_TOKEN")
	if err != nil {
		return nil, fmt.Errorf("failed to bind token env: %w", err)
	}

	err = v.ReadInConfig()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		log.Info().Str("path", path).Msg("config file not found, using defaults and environment")
	}

	cfg := &Config{}

	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	err = validator.New().Struct(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
