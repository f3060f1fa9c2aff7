package models

// GrammarTopic and TestQuestion are migrated alongside the rest of the
// schema so a content pipeline can fill them in; no routes serve them yet.

type GrammarTopic struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Level       string `gorm:"size:10;not null;default:A1"`
	Description string `gorm:"size:1000"`
}

type TestQuestion struct {
	ID       uint   `gorm:"primaryKey"`
	Question string `gorm:"size:500;not null"`
	Answer   string `gorm:"size:200;not null"`
	Level    string `gorm:"size:10;not null;default:A1"`
}
