package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"learnhub/backend/app/dto"
	jwtutil "learnhub/backend/app/jwt"
	"learnhub/backend/app/services"
	"learnhub/backend/global"
)

type AuthController struct {
	Users  *services.UserService
	Signer *jwtutil.Signer
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Users: users, Signer: signer}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		fail(w, http.StatusBadRequest, "username and password are required")
		return
	}
	u, err := c.Users.Register(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			fail(w, http.StatusBadRequest, "username already taken")
			return
		}
		global.Logger.Error().Err(err).Msg("register failed")
		fail(w, http.StatusInternalServerError, "registration failed")
		return
	}
	writeJSON(w, http.StatusCreated, dto.RegisterResponse{
		Success: true,
		Message: "registration successful",
		User:    dto.UserSummary{Username: u.Username, Level: u.Level},
	})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		fail(w, http.StatusBadRequest, "username and password are required")
		return
	}
	// Unknown username and wrong password produce the same response body.
	u, err := c.Users.ValidateCredentials(req.Username, req.Password)
	if err != nil {
		fail(w, http.StatusUnauthorized, "invalid username or password")
		return
	}
	token, err := c.Signer.Sign(u.Username)
	if err != nil {
		global.Logger.Error().Err(err).Msg("token issuance failed")
		fail(w, http.StatusInternalServerError, "token error")
		return
	}
	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Success:     true,
		Message:     "login successful",
		Token:       token,
		AccessToken: token,
		Username:    u.Username,
		Level:       u.Level,
		Score:       u.Score,
	})
}
