package repository

import (
	"context"

	"github.com/mkj/summerhouse-voting/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.User, error)
	UpdateSession(ctx context.Context, userID int64, sessionID string) error
}

type SummerHouseRepository interface {
	Create(ctx context.Context, house *domain.SummerHouse) error
	GetAll(ctx context.Context) ([]*domain.SummerHouse, error)
	Count(ctx context.Context) (int64, error)
	GetAllWithVoteCounts(ctx context.Context) ([]*domain.SummerHouseWithVotes, error)
}

type VoteRepository interface {
	Create(ctx context.Context, vote *domain.Vote) error
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Vote, error)
	// Delete removes the vote for (userID, summerHouseID) and reports whether
	// a row was actually deleted, so callers can tell "nothing to delete"
	// apart from a storage failure.
	Delete(ctx context.Context, userID, summerHouseID int64) (bool, error)
}

type Repositories struct {
	User        UserRepository
	SummerHouse SummerHouseRepository
	Vote        VoteRepository
}
