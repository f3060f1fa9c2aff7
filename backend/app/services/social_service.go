package services

import (
	"learnhub/backend/app/dto"
	"learnhub/backend/app/models"
	"learnhub/backend/app/repo"
)

type SocialService struct {
	friendships *repo.FriendshipRepository
	users       *repo.UserRepository
}

func NewSocialService(friendships *repo.FriendshipRepository, users *repo.UserRepository) *SocialService {
	return &SocialService{friendships: friendships, users: users}
}

// FriendsOf projects a user's friendships onto friend summaries. Dangling
// friend ids are skipped.
func (s *SocialService) FriendsOf(user *models.User) ([]dto.FriendEntry, error) {
	friendships, err := s.friendships.ListByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	friends := make([]dto.FriendEntry, 0, len(friendships))
	for _, f := range friendships {
		friend, err := s.users.FindByID(f.FriendID)
		if err != nil {
			continue
		}
		friends = append(friends, dto.FriendEntry{Username: friend.Username, Level: friend.Level, Score: friend.Score})
	}
	return friends, nil
}

func (s *SocialService) AddFriend(user *models.User, friend *models.User) error {
	return s.friendships.Create(&models.Friendship{UserID: user.ID, FriendID: friend.ID})
}
