package controllers

import (
	"encoding/json"
	"net/http"

	"learnhub/backend/app/dto"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func fail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Success: false, Message: msg})
}
