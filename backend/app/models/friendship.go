package models

// Friendship is a directed edge from a user to a friend.
type Friendship struct {
	ID       uint `gorm:"primaryKey"`
	UserID   uint `gorm:"index;not null"`
	FriendID uint `gorm:"not null"`
}
