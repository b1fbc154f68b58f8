package sqlite

import (
	"context"

	"github.com/mkj/summerhouse-voting/internal/domain"
	"gorm.io/gorm"
)

type summerHouseRepository struct {
	db *gorm.DB
}

func NewSummerHouseRepository(db *gorm.DB) *summerHouseRepository {
	return &summerHouseRepository{db: db}
}

func (r *summerHouseRepository) Create(ctx context.Context, house *domain.SummerHouse) error {
	return r.db.WithContext(ctx).Create(house).Error
}

func (r *summerHouseRepository) GetAll(ctx context.Context) ([]*domain.SummerHouse, error) {
	var houses []*domain.SummerHouse
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&houses).Error
	if err != nil {
		return nil, err
	}
	return houses, nil
}

func (r *summerHouseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.SummerHouse{}).Count(&count).Error
	return count, err
}

// GetAllWithVoteCounts returns the results ranking: every summer house with
// its vote tally, ordered by count descending and name ascending on ties.
func (r *summerHouseRepository) GetAllWithVoteCounts(ctx context.Context) ([]*domain.SummerHouseWithVotes, error) {
	var results []*domain.SummerHouseWithVotes
	err := r.db.WithContext(ctx).
		Model(&domain.SummerHouse{}).
		Select("summer_houses.id, summer_houses.name, summer_houses.image_url, summer_houses.booking_url, summer_houses.created_at, COUNT(votes.id) AS vote_count").
		Joins("LEFT JOIN votes ON votes.summer_house_id = summer_houses.id").
		Group("summer_houses.id").
		Order("COUNT(votes.id) DESC, summer_houses.name ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
