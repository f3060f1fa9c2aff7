package repo

import (
	"learnhub/backend/app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WordRepository struct{ db *gorm.DB }

func NewWordRepository(db *gorm.DB) *WordRepository { return &WordRepository{db: db} }

func (r *WordRepository) All() ([]models.Word, error) {
	var words []models.Word
	err := r.db.Order("id ASC").Find(&words).Error
	return words, err
}

func (r *WordRepository) Limit(n int) ([]models.Word, error) {
	var words []models.Word
	err := r.db.Order("id ASC").Limit(n).Find(&words).Error
	return words, err
}

func (r *WordRepository) Count() (int64, error) {
	var count int64
	return count, r.db.Model(&models.Word{}).Count(&count).Error
}

// Upsert inserts or refreshes entries keyed by the word column, so a seed
// file can be re-imported without duplicating the catalog.
func (r *WordRepository) Upsert(words []models.Word) error {
	if len(words) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "word"}},
		DoUpdates: clause.AssignmentColumns([]string{"meaning", "level", "example"}),
	}).Create(&words).Error
}
