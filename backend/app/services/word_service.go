package services

import (
	"encoding/json"
	"fmt"
	"os"

	"learnhub/backend/app/models"
	"learnhub/backend/app/repo"
)

// PublicWordLimit caps the unauthenticated word listing.
const PublicWordLimit = 5

type WordService struct {
	words *repo.WordRepository
}

func NewWordService(words *repo.WordRepository) *WordService {
	return &WordService{words: words}
}

func (s *WordService) List() ([]models.Word, error) { return s.words.All() }

func (s *WordService) ListPublic() ([]models.Word, error) {
	return s.words.Limit(PublicWordLimit)
}

// Seed loads the built-in starter catalog when the words table is empty.
func (s *WordService) Seed() error {
	count, err := s.words.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.words.Upsert(defaultWords())
}

type seedWord struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Level   string `json:"level"`
	Example string `json:"example"`
}

// ImportFile upserts a JSON seed file into the catalog. Re-importing the
// same file leaves the table unchanged.
func (s *WordService) ImportFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}
	var entries []seedWord
	if err := json.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}
	words := make([]models.Word, 0, len(entries))
	for _, e := range entries {
		if e.Word == "" || e.Meaning == "" {
			continue
		}
		level := e.Level
		if level == "" {
			level = models.DefaultLevel
		}
		words = append(words, models.Word{Word: e.Word, Meaning: e.Meaning, Level: level, Example: e.Example})
	}
	if err := s.words.Upsert(words); err != nil {
		return 0, err
	}
	return len(words), nil
}

func defaultWords() []models.Word {
	return []models.Word{
		{Word: "Ebullient", Meaning: "Cheerful and full of energy", Level: models.LevelC2, Example: "She sounded ebullient and happy."},
		{Word: "Serene", Meaning: "Calm and peaceful", Level: models.LevelB2, Example: "He remained serene in the midst of chaos."},
		{Word: "Lucid", Meaning: "Clear and easy to understand", Level: models.LevelC1, Example: "His explanation was lucid."},
		{Word: "Resilient", Meaning: "Able to recover quickly", Level: models.LevelB2, Example: "Children are often remarkably resilient."},
		{Word: "Meticulous", Meaning: "Very careful and precise", Level: models.LevelC1, Example: "She kept meticulous records."},
		{Word: "Candid", Meaning: "Honest and direct", Level: models.LevelB2, Example: "He gave a candid account of the events."},
		{Word: "Frugal", Meaning: "Careful with money", Level: models.LevelC1, Example: "They lived a frugal life in the countryside."},
		{Word: "Vivid", Meaning: "Producing strong, clear images", Level: models.LevelB1, Example: "She gave a vivid description of the city."},
	}
}
