package dto

type FriendEntry struct {
	Username string `json:"username"`
	Level    string `json:"level"`
	Score    int    `json:"score"`
}

type FriendsResponse struct {
	Success bool          `json:"success"`
	Friends []FriendEntry `json:"friends"`
}
