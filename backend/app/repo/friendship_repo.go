package repo

import (
	"learnhub/backend/app/models"

	"gorm.io/gorm"
)

type FriendshipRepository struct{ db *gorm.DB }

func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{db: db}
}

func (r *FriendshipRepository) Create(f *models.Friendship) error { return r.db.Create(f).Error }

func (r *FriendshipRepository) ListByUserID(userID uint) ([]models.Friendship, error) {
	var friendships []models.Friendship
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&friendships).Error
	return friendships, err
}
