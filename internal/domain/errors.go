package domain

import "errors"

// Domain outcomes handlers branch on. Anything else coming out of a service
// is a storage failure and maps to a 500.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrHouseNotFound = errors.New("summer house not found")
	ErrAlreadyVoted  = errors.New("already voted for this summer house")
	ErrVoteNotFound  = errors.New("vote not found")
)
