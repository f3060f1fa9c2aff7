package controllers

import (
	"net/http"

	"learnhub/backend/app/dto"
	"learnhub/backend/app/models"
	"learnhub/backend/app/services"
	"learnhub/backend/global"
)

const noExampleFallback = "No example sentence available."

type WordController struct {
	Words *services.WordService
}

func NewWordController(words *services.WordService) *WordController {
	return &WordController{Words: words}
}

// List serves the full catalog; RequireAuth gates it in the router.
func (c *WordController) List(w http.ResponseWriter, r *http.Request) {
	words, err := c.Words.List()
	if err != nil {
		global.Logger.Error().Err(err).Msg("word listing failed")
		fail(w, http.StatusInternalServerError, "could not load words")
		return
	}
	writeJSON(w, http.StatusOK, dto.WordListResponse{Success: true, Words: toEntries(words)})
}

// ListPublic serves a capped catalog without authentication.
func (c *WordController) ListPublic(w http.ResponseWriter, r *http.Request) {
	words, err := c.Words.ListPublic()
	if err != nil {
		global.Logger.Error().Err(err).Msg("public word listing failed")
		fail(w, http.StatusInternalServerError, "could not load words")
		return
	}
	writeJSON(w, http.StatusOK, dto.WordListResponse{
		Success: true,
		Words:   toEntries(words),
		Note:    "public endpoint, no token required",
	})
}

func toEntries(words []models.Word) []dto.WordEntry {
	entries := make([]dto.WordEntry, 0, len(words))
	for _, word := range words {
		example := word.Example
		if example == "" {
			example = noExampleFallback
		}
		entries = append(entries, dto.WordEntry{
			ID:      word.ID,
			Word:    word.Word,
			Meaning: word.Meaning,
			Level:   word.Level,
			Example: example,
		})
	}
	return entries
}
