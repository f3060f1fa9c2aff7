package initialize

import (
	"fmt"
	"net/http"

	"learnhub/backend/app/controllers"
	"learnhub/backend/app/db"
	jwtutil "learnhub/backend/app/jwt"
	"learnhub/backend/app/middleware"
	"learnhub/backend/app/models"
	"learnhub/backend/app/repo"
	"learnhub/backend/app/services"
	"learnhub/backend/app/watcher"
	"learnhub/backend/config"
	"learnhub/backend/global"
	"learnhub/backend/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App is the explicit application context: everything a request touches is
// constructed here once and handed down, nothing is resolved from globals at
// request time.
type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Router http.Handler

	Auth   *controllers.AuthController
	Words  *controllers.WordController
	Stats  *controllers.StatsController
	Social *controllers.SocialController

	UserSvc   *services.UserService
	WordSvc   *services.WordService
	StatsSvc  *services.StatsService
	SocialSvc *services.SocialService

	seedWatcher *watcher.SeedWatcher
}

func Build(cfg *config.Config) (*App, error) {
	global.Config = cfg

	gdb, err := db.Connect(db.Config{
		Driver:   cfg.DB.Driver,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Pass,
		DBName:   cfg.DB.Name,
		Path:     cfg.DB.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.UserStats{},
		&models.Word{},
		&models.GrammarTopic{},
		&models.TestQuestion{},
		&models.Friendship{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if cfg.Redis.Addr != "" {
		global.Rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	}

	// Repositories and services
	userRepo := repo.NewUserRepository(gdb)
	wordRepo := repo.NewWordRepository(gdb)
	statsRepo := repo.NewStatsRepository(gdb)
	friendRepo := repo.NewFriendshipRepository(gdb)

	userSvc := services.NewUserService(userRepo)
	wordSvc := services.NewWordService(wordRepo)
	statsSvc := services.NewStatsService(userRepo, statsRepo, global.Rdb)
	socialSvc := services.NewSocialService(friendRepo, userRepo)

	if err := wordSvc.Seed(); err != nil {
		return nil, fmt.Errorf("seed words: %w", err)
	}

	app := &App{
		Cfg:       cfg,
		DB:        gdb,
		UserSvc:   userSvc,
		WordSvc:   wordSvc,
		StatsSvc:  statsSvc,
		SocialSvc: socialSvc,
	}

	if cfg.Content.SeedFile != "" {
		if n, err := wordSvc.ImportFile(cfg.Content.SeedFile); err != nil {
			global.Logger.Error().Err(err).Msg("seed file import failed")
		} else {
			global.Logger.Info().Int("words", n).Msg("seed file imported")
		}
		sw, err := watcher.Watch(cfg.Content.SeedFile, func(path string) {
			if n, err := wordSvc.ImportFile(path); err != nil {
				global.Logger.Error().Err(err).Msg("seed file reload failed")
			} else {
				global.Logger.Info().Int("words", n).Msg("seed file reloaded")
			}
		})
		if err != nil {
			global.Logger.Error().Err(err).Msg("seed watcher unavailable")
		} else {
			app.seedWatcher = sw
		}
	}

	// Controllers
	signer := &jwtutil.Signer{
		Secret:  []byte(cfg.JWT.Secret),
		Issuer:  cfg.JWT.Issuer,
		ExpDays: cfg.JWT.ExpDays,
	}
	app.Auth = controllers.NewAuthController(userSvc, signer)
	app.Words = controllers.NewWordController(wordSvc)
	app.Stats = controllers.NewStatsController(statsSvc)
	app.Social = controllers.NewSocialController(socialSvc)

	mw := &middleware.Auth{Signer: signer, Users: userSvc}
	h := router.NewRouter(app.Auth, app.Words, app.Stats, app.Social, mw)
	app.Router = middleware.Logging(h)

	return app, nil
}

// Close releases background resources (the seed watcher).
func (a *App) Close() error {
	if a.seedWatcher != nil {
		return a.seedWatcher.Close()
	}
	return nil
}
