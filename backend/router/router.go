package router

import (
	"net/http"

	"learnhub/backend/app/controllers"
	"learnhub/backend/app/middleware"
)

func NewRouter(authCtrl *controllers.AuthController, wordCtrl *controllers.WordController, statsCtrl *controllers.StatsController, socialCtrl *controllers.SocialController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("POST /api/auth/register", authCtrl.Register)
	mux.HandleFunc("POST /api/auth/login", authCtrl.Login)
	mux.HandleFunc("GET /api/words/public", wordCtrl.ListPublic)
	mux.HandleFunc("GET /api/scoreboard", statsCtrl.Scoreboard)

	// bearer-token gated
	mux.Handle("GET /api/words", mw.RequireAuth(http.HandlerFunc(wordCtrl.List)))
	mux.Handle("GET /api/stats/{username}", mw.RequireAuth(http.HandlerFunc(statsCtrl.GetStats)))
	mux.Handle("GET /api/profile/{username}", mw.RequireAuth(http.HandlerFunc(statsCtrl.GetProfile)))
	mux.Handle("GET /api/social/friends", mw.RequireAuth(http.HandlerFunc(socialCtrl.GetFriends)))

	return mux
}
