package domain

import "time"

// SummerHouse is a catalogue entry users can vote on. Rows are written once
// by the seeder and read-only afterwards.
type SummerHouse struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	ImageURL   string    `json:"imageUrl" gorm:"not null"`
	BookingURL string    `json:"bookingUrl" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (SummerHouse) TableName() string {
	return "summer_houses"
}

// SummerHouseWithVotes is one row of the results ranking: a summer house
// plus its vote tally.
type SummerHouseWithVotes struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	ImageURL   string    `json:"imageUrl"`
	BookingURL string    `json:"bookingUrl"`
	CreatedAt  time.Time `json:"createdAt"`
	VoteCount  int64     `json:"voteCount"`
}
