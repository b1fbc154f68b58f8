package sqlite

import (
	"context"

	"github.com/mkj/summerhouse-voting/internal/domain"
	"gorm.io/gorm"
)

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *voteRepository {
	return &voteRepository{db: db}
}

// Create inserts the vote. A second vote by the same user for the same house
// fails with gorm.ErrDuplicatedKey at the unique index; callers treat that
// as the conflict signal rather than pre-checking.
func (r *voteRepository) Create(ctx context.Context, vote *domain.Vote) error {
	return r.db.WithContext(ctx).Create(vote).Error
}

func (r *voteRepository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Vote, error) {
	var votes []*domain.Vote
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}

func (r *voteRepository) Delete(ctx context.Context, userID, summerHouseID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND summer_house_id = ?", userID, summerHouseID).
		Delete(&domain.Vote{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
