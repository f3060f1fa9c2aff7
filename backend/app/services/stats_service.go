package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"learnhub/backend/app/dto"
	"learnhub/backend/app/models"
	"learnhub/backend/app/repo"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	ScoreboardSize     = 10
	scoreboardKey      = "learnhub:scoreboard"
	scoreboardCacheTTL = 30 * time.Second
)

type StatsService struct {
	users *repo.UserRepository
	stats *repo.StatsRepository
	cache *redis.Client // nil when redis is not configured
}

func NewStatsService(users *repo.UserRepository, stats *repo.StatsRepository, cache *redis.Client) *StatsService {
	return &StatsService{users: users, stats: stats, cache: cache}
}

// StatsFor returns a user's counters. A missing stats row yields zeros, not
// an error; an unknown username yields ErrUserNotFound.
func (s *StatsService) StatsFor(username string) (*models.User, dto.StatsBlock, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dto.StatsBlock{}, ErrUserNotFound
		}
		return nil, dto.StatsBlock{}, err
	}
	row, err := s.stats.FindByUserID(u.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return u, dto.StatsBlock{}, nil
		}
		return nil, dto.StatsBlock{}, err
	}
	return u, dto.StatsBlock{
		WordsLearned:           row.WordsLearned,
		GrammarTopicsCompleted: row.GrammarTopicsCompleted,
		TestsTaken:             row.TestsTaken,
		StudyStreakDays:        row.StudyStreakDays,
		TotalStudyTimeMinutes:  row.TotalStudyTimeMinutes,
	}, nil
}

func (s *StatsService) ProfileFor(username string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Scoreboard returns the top entries by score. Results are cached in redis
// for a short window when a client is configured; cache failures fall
// through to the database.
func (s *StatsService) Scoreboard(ctx context.Context) ([]dto.ScoreboardEntry, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, scoreboardKey).Bytes(); err == nil {
			var cached []dto.ScoreboardEntry
			if json.Unmarshal(data, &cached) == nil {
				return cached, nil
			}
		}
	}

	users, err := s.users.TopByScore(ScoreboardSize)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.ScoreboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, dto.ScoreboardEntry{Username: u.Username, Score: u.Score, Level: u.Level})
	}

	if s.cache != nil {
		if data, err := json.Marshal(entries); err == nil {
			s.cache.Set(ctx, scoreboardKey, data, scoreboardCacheTTL)
		}
	}
	return entries, nil
}
