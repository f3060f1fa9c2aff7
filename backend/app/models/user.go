package models

import "time"

// CEFR proficiency levels. Every user starts at A1.
const (
	LevelA1 = "A1"
	LevelA2 = "A2"
	LevelB1 = "B1"
	LevelB2 = "B2"
	LevelC1 = "C1"
	LevelC2 = "C2"
)

const DefaultLevel = LevelA1

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:80;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Level        string `gorm:"size:10;not null;default:A1"`
	Score        int    `gorm:"not null;default:0"`
	CreatedAt    time.Time

	Stats   *UserStats   `gorm:"constraint:OnDelete:CASCADE"`
	Friends []Friendship `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
