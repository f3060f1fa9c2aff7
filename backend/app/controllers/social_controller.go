package controllers

import (
	"net/http"

	"learnhub/backend/app/dto"
	"learnhub/backend/app/middleware"
	"learnhub/backend/app/services"
	"learnhub/backend/global"
)

type SocialController struct {
	Social *services.SocialService
}

func NewSocialController(social *services.SocialService) *SocialController {
	return &SocialController{Social: social}
}

func (c *SocialController) GetFriends(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r.Context())
	if user == nil {
		fail(w, http.StatusUnauthorized, "token missing")
		return
	}
	friends, err := c.Social.FriendsOf(user)
	if err != nil {
		global.Logger.Error().Err(err).Msg("friend listing failed")
		fail(w, http.StatusInternalServerError, "could not load friends")
		return
	}
	writeJSON(w, http.StatusOK, dto.FriendsResponse{Success: true, Friends: friends})
}
