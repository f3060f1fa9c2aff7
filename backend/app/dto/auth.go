package dto

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserSummary struct {
	Username string `json:"username"`
	Level    string `json:"level"`
}

type RegisterResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// LoginResponse duplicates the token under access_token for frontend
// compatibility, as the original API did.
type LoginResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
	Level       string `json:"level"`
	Score       int    `json:"score"`
}

// ErrorResponse is the uniform failure envelope for every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
