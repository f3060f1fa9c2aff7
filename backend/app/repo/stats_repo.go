package repo

import (
	"learnhub/backend/app/models"

	"gorm.io/gorm"
)

type StatsRepository struct{ db *gorm.DB }

func NewStatsRepository(db *gorm.DB) *StatsRepository { return &StatsRepository{db: db} }

func (r *StatsRepository) Create(s *models.UserStats) error { return r.db.Create(s).Error }

func (r *StatsRepository) FindByUserID(userID uint) (*models.UserStats, error) {
	var s models.UserStats
	if err := r.db.Where("user_id = ?", userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
