package controllers

import (
	"errors"
	"net/http"

	"learnhub/backend/app/dto"
	"learnhub/backend/app/services"
	"learnhub/backend/global"
)

type StatsController struct {
	Stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{Stats: stats}
}

func (c *StatsController) GetStats(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	user, block, err := c.Stats.StatsFor(username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			fail(w, http.StatusNotFound, "user not found")
			return
		}
		global.Logger.Error().Err(err).Str("username", username).Msg("stats lookup failed")
		fail(w, http.StatusInternalServerError, "could not load stats")
		return
	}
	writeJSON(w, http.StatusOK, dto.StatsResponse{Success: true, Level: user.Level, Stats: block})
}

// Scoreboard is public and returns a bare array, not the envelope.
func (c *StatsController) Scoreboard(w http.ResponseWriter, r *http.Request) {
	entries, err := c.Stats.Scoreboard(r.Context())
	if err != nil {
		global.Logger.Error().Err(err).Msg("scoreboard failed")
		fail(w, http.StatusInternalServerError, "could not load scoreboard")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (c *StatsController) GetProfile(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	user, err := c.Stats.ProfileFor(username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			fail(w, http.StatusNotFound, "user not found")
			return
		}
		global.Logger.Error().Err(err).Str("username", username).Msg("profile lookup failed")
		fail(w, http.StatusInternalServerError, "could not load profile")
		return
	}
	writeJSON(w, http.StatusOK, dto.ProfileResponse{
		Success: true,
		Profile: dto.Profile{
			Username:  user.Username,
			Level:     user.Level,
			Score:     user.Score,
			CreatedAt: user.CreatedAt,
		},
	})
}
