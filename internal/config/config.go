package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Dataset DatasetConfig
	Regions RegionsConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Mapbox  MapboxConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatasetConfig struct {
	Path     string
	Variable string
}

type RegionsConfig struct {
	ContinentsPath string
	CentroidsPath  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	SliceTTL time.Duration
	StatsTTL time.Duration
}

type MapboxConfig struct {
	AccessToken    string
	BaseURL        string
	Style          string
	RequestTimeout int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env опционален: в контейнере всё приходит из окружения
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Dataset: DatasetConfig{
			Path:     viper.GetString("DATASET_PATH"),
			Variable: viper.GetString("DATASET_VARIABLE"),
		},
		Regions: RegionsConfig{
			ContinentsPath: viper.GetString("REGIONS_CONTINENTS_PATH"),
			CentroidsPath:  viper.GetString("REGIONS_CENTROIDS_PATH"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SliceTTL: time.Duration(viper.GetInt("SLICE_CACHE_TTL")) * time.Second,
			StatsTTL: time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Mapbox: MapboxConfig{
			AccessToken:    viper.GetString("MAPBOX_ACCESS_TOKEN"),
			BaseURL:        viper.GetString("MAPBOX_BASE_URL"),
			Style:          viper.GetString("MAPBOX_STYLE"),
			RequestTimeout: viper.GetInt("MAPBOX_REQUEST_TIMEOUT"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Dataset.Variable == "" {
		cfg.Dataset.Variable = "spei"
	}
	if cfg.Regions.ContinentsPath == "" {
		cfg.Regions.ContinentsPath = "data/continents.json"
	}
	if cfg.Regions.CentroidsPath == "" {
		cfg.Regions.CentroidsPath = "data/country_centroids.json"
	}
	if cfg.Cache.SliceTTL == 0 {
		cfg.Cache.SliceTTL = time.Hour
	}
	if cfg.Cache.StatsTTL == 0 {
		cfg.Cache.StatsTTL = time.Hour
	}
	if cfg.Mapbox.BaseURL == "" {
		cfg.Mapbox.BaseURL = "https://api.mapbox.com"
	}
	if cfg.Mapbox.Style == "" {
		cfg.Mapbox.Style = "mapbox/dark-v11"
	}
	if cfg.Mapbox.RequestTimeout == 0 {
		cfg.Mapbox.RequestTimeout = 30
	}

	// Датасет и токен обязательны: без них сервис не имеет смысла
	if cfg.Dataset.Path == "" {
		return nil, fmt.Errorf("DATASET_PATH is required")
	}
	if cfg.Mapbox.AccessToken == "" {
		return nil, fmt.Errorf("MAPBOX_ACCESS_TOKEN is required")
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
