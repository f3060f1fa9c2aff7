package services

import (
	"errors"
	"time"

	"learnhub/backend/app/models"
	"learnhub/backend/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so the response never reveals which part failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService struct {
	users *repo.UserRepository
}

func NewUserService(users *repo.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates a user at level A1 with score 0 plus a zeroed stats row.
// Both rows go in as one association create, so a failure on either side
// leaves nothing behind. The plaintext password is bcrypt-hashed and never
// stored or logged.
func (s *UserService) Register(username, password string) (*models.User, error) {
	count, err := s.users.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Level:        models.DefaultLevel,
		Score:        0,
		Stats:        &models.UserStats{LastActivity: time.Now()},
	}
	if err := s.users.Create(u); err != nil {
		// The unique index is the authority under concurrent registration.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) ValidateCredentials(username, password string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) FindByUsername(username string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
