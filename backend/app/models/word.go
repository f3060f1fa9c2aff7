package models

// Word is a vocabulary catalog entry, unique by the word itself.
type Word struct {
	ID      uint   `gorm:"primaryKey"`
	Word    string `gorm:"uniqueIndex;size:120;not null"`
	Meaning string `gorm:"size:500;not null"`
	Level   string `gorm:"size:10;not null;default:A1"`
	Example string `gorm:"size:500"`
}
