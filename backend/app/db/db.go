package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Driver   string // "mysql" or "sqlite"
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	Path     string // sqlite file path, ":memory:" allowed
}

func Connect(cfg Config) (*gorm.DB, error) {
	switch cfg.Driver {
	case "sqlite":
		path := cfg.Path
		if path == "" {
			path = "learnhub.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	case "mysql", "":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}
