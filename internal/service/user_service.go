package service

import (
	"context"
	"errors"
	"strings"

	"github.com/mkj/summerhouse-voting/internal/domain"
	"github.com/mkj/summerhouse-voting/internal/repository"
	"github.com/mkj/summerhouse-voting/internal/session"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo repository.UserRepository
	voteRepo repository.VoteRepository
}

func NewUserService(userRepo repository.UserRepository, voteRepo repository.VoteRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		voteRepo: voteRepo,
	}
}

// Register creates a user and a fresh session token. The email is trimmed
// and lowercased before the uniqueness check so case variants hit the same
// row.
func (s *UserService) Register(ctx context.Context, name, email string) (*domain.UserWithVotes, string, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, "", domain.ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	token, err := session.GenerateToken()
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:      name,
		Email:     email,
		SessionID: token,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index backs the pre-check if two registrations race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", domain.ErrEmailTaken
		}
		return nil, "", err
	}

	return &domain.UserWithVotes{User: *user, Votes: []int64{}}, token, nil
}

// EmailExists reports whether a user is registered under the email.
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.userRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Login rotates the session token for an existing email. The previous token
// stops resolving once the row is updated.
func (s *UserService) Login(ctx context.Context, email string) (*domain.UserWithVotes, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", domain.ErrUserNotFound
		}
		return nil, "", err
	}

	token, err := session.GenerateToken()
	if err != nil {
		return nil, "", err
	}
	if err := s.userRepo.UpdateSession(ctx, user.ID, token); err != nil {
		return nil, "", err
	}
	user.SessionID = token

	userWithVotes, err := s.withVotes(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return userWithVotes, token, nil
}

// CurrentUser resolves a session token to the user and their votes.
func (s *UserService) CurrentUser(ctx context.Context, token string) (*domain.UserWithVotes, error) {
	user, err := s.userRepo.GetBySessionID(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return s.withVotes(ctx, user)
}

func (s *UserService) withVotes(ctx context.Context, user *domain.User) (*domain.UserWithVotes, error) {
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

// NormalizeEmail is the canonical form stored and compared everywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
