package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/railgate/railgate/pkg/stations"
)

type ServerConfig struct {
	Listen string `yaml:"listen" validate:"required"`
}

type UpstreamConfig struct {
	BaseURL        string `yaml:"base_url" validate:"required,url"`
	UserAgent      string `yaml:"user_agent" validate:"required"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"gt=0"`
	MaxRetries     int    `yaml:"max_retries" validate:"gte=0"`
}

type FeedConfig struct {
	URL       string `yaml:"url" validate:"required,url"`
	CachePath string `yaml:"cache_path" validate:"required"`
}

type Config struct {
	Server   ServerConfig         `yaml:"server"`
	Upstream UpstreamConfig       `yaml:"upstream"`
	Feed     FeedConfig           `yaml:"feed"`
	Heal     stations.HealWindows `yaml:"heal_windows"`
}

func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Listen: ":8000",
		},
		Upstream: UpstreamConfig{
			BaseURL:        "https://kyfw.12306.cn",
			UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
			TimeoutSeconds: 8,
			MaxRetries:     2,
		},
		Feed: FeedConfig{
			URL:       "https://kyfw.12306.cn/otn/resources/js/framework/station_name.js",
			CachePath: "data/station_name.js",
		},
		Heal: stations.DefaultHealWindows(),
	}
}

// Load reads the yaml config file on top of the defaults and validates the
// result. An absent file is fine - the defaults work out of the box - but a
// file that exists and fails to parse or validate is fatal for the caller.
// RAILGATE_LISTEN overrides the listen address either way.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	} else if !os.IsNotExist(err) {
		return cfg, err
	} else {
		log.Debug().Str("path", path).Msg("No config file found, using defaults")
	}

	if listen := os.Getenv("RAILGATE_LISTEN"); listen != "" {
		cfg.Server.Listen = listen
	}

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
