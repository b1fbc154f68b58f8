package domain

import "time"

type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	SessionID string    `json:"-" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// UserWithVotes is the API view of a user: the user plus the summer-house
// IDs they voted for, ordered by when each vote was cast.
type UserWithVotes struct {
	User
	Votes []int64 `json:"votes"`
}
