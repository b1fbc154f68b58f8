package service

import (
	"context"
	"errors"

	"github.com/mkj/summerhouse-voting/internal/domain"
	"github.com/mkj/summerhouse-voting/internal/repository"
	"gorm.io/gorm"
)

type VoteService struct {
	userRepo  repository.UserRepository
	houseRepo repository.SummerHouseRepository
	voteRepo  repository.VoteRepository
}

func NewVoteService(userRepo repository.UserRepository, houseRepo repository.SummerHouseRepository, voteRepo repository.VoteRepository) *VoteService {
	return &VoteService{
		userRepo:  userRepo,
		houseRepo: houseRepo,
		voteRepo:  voteRepo,
	}
}

// ListHouses returns the catalogue ordered by name.
func (s *VoteService) ListHouses(ctx context.Context) ([]*domain.SummerHouse, error) {
	return s.houseRepo.GetAll(ctx)
}

// Results returns the ranking: vote count descending, name ascending on ties.
func (s *VoteService) Results(ctx context.Context) ([]*domain.SummerHouseWithVotes, error) {
	return s.houseRepo.GetAllWithVoteCounts(ctx)
}

// Cast records a vote for the session's user. The insert itself decides
// conflicts: a duplicate pair trips the unique index, an unknown house trips
// the foreign key. No read-then-insert, so concurrent casts cannot race.
func (s *VoteService) Cast(ctx context.Context, token string, summerHouseID int64) (*domain.Vote, *domain.UserWithVotes, error) {
	user, err := s.resolveUser(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	vote := &domain.Vote{
		UserID:        user.ID,
		SummerHouseID: summerHouseID,
	}
	if err := s.voteRepo.Create(ctx, vote); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, nil, domain.ErrAlreadyVoted
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, nil, domain.ErrHouseNotFound
		}
		return nil, nil, err
	}

	userWithVotes, err := s.userWithVotes(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return vote, userWithVotes, nil
}

// Retract deletes the session user's vote for a house. A delete that matched
// no row is ErrVoteNotFound, not a storage failure.
func (s *VoteService) Retract(ctx context.Context, token string, summerHouseID int64) (*domain.UserWithVotes, error) {
	user, err := s.resolveUser(ctx, token)
	if err != nil {
		return nil, err
	}

	deleted, err := s.voteRepo.Delete(ctx, user.ID, summerHouseID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, domain.ErrVoteNotFound
	}

	return s.userWithVotes(ctx, user)
}

func (s *VoteService) resolveUser(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.userRepo.GetBySessionID(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *VoteService) userWithVotes(ctx context.Context, user *domain.User) (*domain.UserWithVotes, error) {
	votes, err := s.voteRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	houseIDs := make([]int64, len(votes))
	for i, vote := range votes {
		houseIDs[i] = vote.SummerHouseID
	}

	return &domain.UserWithVotes{User: *user, Votes: houseIDs}, nil
}
