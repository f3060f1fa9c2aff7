package tool

import (
	"encoding/json"
	"net/http"

	"learnhub/assistant/internal/logger"
)

type CallRequest struct {
	Tool     string          `json:"tool"`
	Argument json.RawMessage `json:"argument,omitempty"`
}

type CallResponse struct {
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Message string `json:"message,omitempty"`
}

// NewHandler serves the tool registry over HTTP: GET /tools lists names,
// POST /tools/call invokes one.
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tools", listTools)
	mux.HandleFunc("POST /tools/call", callTool)
	return mux
}

func listTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "tools": Names()})
}

func callTool(w http.ResponseWriter, r *http.Request) {
	var req CallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Tool == "" {
		writeJSON(w, http.StatusBadRequest, CallResponse{Success: false, Message: "tool name is required"})
		return
	}
	h, ok := Get(req.Tool)
	if !ok {
		writeJSON(w, http.StatusNotFound, CallResponse{Success: false, Message: "unknown tool: " + req.Tool})
		return
	}
	raw := req.Argument
	if len(raw) == 0 {
		raw = json.RawMessage(`{}`)
	}
	arg, err := h.DecodeArg(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, CallResponse{Success: false, Message: "bad argument: " + err.Error()})
		return
	}
	result, err := h.Call(arg)
	if err != nil {
		logger.Errorf("tool %s failed: %v", req.Tool, err)
		writeJSON(w, http.StatusInternalServerError, CallResponse{Success: false, Message: "tool failed"})
		return
	}
	writeJSON(w, http.StatusOK, CallResponse{Success: true, Result: result})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
