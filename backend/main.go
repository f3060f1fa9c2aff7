package main

import (
	"flag"

	"learnhub/backend/config"
	"learnhub/backend/global"
	"learnhub/backend/initialize"
	"learnhub/backend/server"
)

func main() {
	configPath := flag.String("config", "", "Path to yaml config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("config load failed")
	}

	app, err := initialize.Build(cfg)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}
	defer app.Close()

	global.Logger.Info().
		Str("host", cfg.HTTP.Host).
		Int("port", cfg.HTTP.Port).
		Str("db", cfg.DB.Driver).
		Msg("learnhub backend listening")

	if err := server.StartHTTPServer(cfg.HTTP.Host, cfg.HTTP.Port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server stopped")
	}
}
