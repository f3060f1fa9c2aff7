package dto

import "time"

type StatsBlock struct {
	WordsLearned           int `json:"words_learned"`
	GrammarTopicsCompleted int `json:"grammar_topics_completed"`
	TestsTaken             int `json:"tests_taken"`
	StudyStreakDays        int `json:"study_streak_days"`
	TotalStudyTimeMinutes  int `json:"total_study_time_minutes"`
}

type StatsResponse struct {
	Success bool       `json:"success"`
	Level   string     `json:"level"`
	Stats   StatsBlock `json:"stats"`
}

type ScoreboardEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
	Level    string `json:"level"`
}

type Profile struct {
	Username  string    `json:"username"`
	Level     string    `json:"level"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileResponse struct {
	Success bool    `json:"success"`
	Profile Profile `json:"profile"`
}
