package service

import (
	"github.com/mkj/summerhouse-voting/internal/repository"
)

type Services struct {
	User *UserService
	Vote *VoteService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		User: NewUserService(repos.User, repos.Vote),
		Vote: NewVoteService(repos.User, repos.SummerHouse, repos.Vote),
	}
}
