package models

import "time"

// UserStats holds per-user learning counters, one row per user.
type UserStats struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"uniqueIndex;not null"`

	WordsLearned           int `gorm:"not null;default:0"`
	GrammarTopicsCompleted int `gorm:"not null;default:0"`
	TestsTaken             int `gorm:"not null;default:0"`
	StudyStreakDays        int `gorm:"not null;default:0"`
	TotalStudyTimeMinutes  int `gorm:"not null;default:0"`

	LastActivity time.Time
}
