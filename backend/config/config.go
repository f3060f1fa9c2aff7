package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string
}

type JWT struct {
	Secret  string
	Issuer  string
	ExpDays int
}

type Redis struct {
	Addr string
}

type Content struct {
	SeedFile string
}

type Config struct {
	HTTP    HTTP
	DB      DB
	JWT     JWT
	Redis   Redis
	Content Content
}

// Load reads a yaml config file. An empty path yields pure defaults, which
// run the server against a local sqlite file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 5000)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "learnhub")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "learnhub_db")
	v.SetDefault("db.path", "learnhub.db")
	v.SetDefault("jwt.secret", "super-secret-key")
	v.SetDefault("jwt.issuer", "learnhub")
	v.SetDefault("jwt.exp_days", 7)
	v.SetDefault("redis.addr", "")
	v.SetDefault("content.seed_file", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
			Path:   v.GetString("db.path"),
		},
		JWT: JWT{
			Secret:  v.GetString("jwt.secret"),
			Issuer:  v.GetString("jwt.issuer"),
			ExpDays: v.GetInt("jwt.exp_days"),
		},
		Redis:   Redis{Addr: v.GetString("redis.addr")},
		Content: Content{SeedFile: v.GetString("content.seed_file")},
	}
	if cfg.JWT.ExpDays <= 0 {
		cfg.JWT.ExpDays = 7
	}
	return cfg, nil
}
