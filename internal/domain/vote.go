package domain

import "time"

// Vote associates a user with a summer house. The composite unique index is
// the authority on "one vote per user per house": a duplicate insert fails
// at the constraint and is translated to ErrAlreadyVoted upstream.
type Vote struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	UserID        int64     `json:"userId" gorm:"not null;uniqueIndex:idx_votes_user_house"`
	SummerHouseID int64     `json:"summerHouseId" gorm:"not null;uniqueIndex:idx_votes_user_house"`
	CreatedAt     time.Time `json:"createdAt"`

	User        *User        `json:"-" gorm:"foreignKey:UserID"`
	SummerHouse *SummerHouse `json:"-" gorm:"foreignKey:SummerHouseID"`
}

func (Vote) TableName() string {
	return "votes"
}
