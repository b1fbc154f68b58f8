package service_test

import (
	"context"
	"testing"

	"github.com/mkj/summerhouse-voting/internal/domain"
	"github.com/mkj/summerhouse-voting/internal/repository/sqlite"
	"github.com/mkj/summerhouse-voting/internal/service"
	"github.com/mkj/summerhouse-voting/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVoteService(t *testing.T) (*service.VoteService, *testutil.TestDB) {
	t.Helper()
	testDB := testutil.NewTestDB(t)
	repos := sqlite.NewRepositories(testDB.DB)
	return service.NewVoteService(repos.User, repos.SummerHouse, repos.Vote), testDB
}

func TestVoteService_Cast(t *testing.T) {
	svc, testDB := newVoteService(t)
	ctx := context.Background()

	user := testutil.NewUserBuilder().WithSessionID("cast-session").Build(t, testDB.DB)
	house := testutil.NewSummerHouseBuilder().Build(t, testDB.DB)

	vote, userWithVotes, err := svc.Cast(ctx, "cast-session", house.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, vote.UserID)
	assert.Equal(t, house.ID, vote.SummerHouseID)
	assert.Equal(t, []int64{house.ID}, userWithVotes.Votes)

	// Voting again for the same house is a conflict, never a second row.
	_, _, err = svc.Cast(ctx, "cast-session", house.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)

	var count int64
	require.NoError(t, testDB.DB.Model(&domain.Vote{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestVoteService_Cast_Errors(t *testing.T) {
	svc, testDB := newVoteService(t)
	ctx := context.Background()

	testutil.NewUserBuilder().WithSessionID("err-session").Build(t, testDB.DB)
	house := testutil.NewSummerHouseBuilder().Build(t, testDB.DB)

	tests := []struct {
		name    string
		token   string
		houseID int64
		wantErr error
	}{
		{
			name:    "stale session",
			token:   "no-such-session",
			houseID: house.ID,
			wantErr: domain.ErrUserNotFound,
		},
		{
			name:    "unknown summer house",
			token:   "err-session",
			houseID: 99999,
			wantErr: domain.ErrHouseNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Cast(ctx, tt.token, tt.houseID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVoteService_Retract(t *testing.T) {
	svc, testDB := newVoteService(t)
	ctx := context.Background()

	testutil.NewUserBuilder().WithSessionID("retract-session").Build(t, testDB.DB)
	house := testutil.NewSummerHouseBuilder().Build(t, testDB.DB)

	// Retracting before any vote exists is not found, not a storage error.
	_, err := svc.Retract(ctx, "retract-session", house.ID)
	assert.ErrorIs(t, err, domain.ErrVoteNotFound)

	// Round trip: cast, see the id, retract, see it gone.
	_, userWithVotes, err := svc.Cast(ctx, "retract-session", house.ID)
	require.NoError(t, err)
	assert.Contains(t, userWithVotes.Votes, house.ID)

	userWithVotes, err = svc.Retract(ctx, "retract-session", house.ID)
	require.NoError(t, err)
	assert.NotContains(t, userWithVotes.Votes, house.ID)
}

func TestVoteService_ListHouses(t *testing.T) {
	svc, testDB := newVoteService(t)
	ctx := context.Background()

	testutil.NewSummerHouseBuilder().WithName("Vejers").Build(t, testDB.DB)
	testutil.NewSummerHouseBuilder().WithName("Blokhus").Build(t, testDB.DB)

	houses, err := svc.ListHouses(ctx)
	require.NoError(t, err)
	require.Len(t, houses, 2)
	assert.Equal(t, "Blokhus", houses[0].Name)
	assert.Equal(t, "Vejers", houses[1].Name)
}

func TestVoteService_Results(t *testing.T) {
	svc, testDB := newVoteService(t)
	ctx := context.Background()

	winner := testutil.NewSummerHouseBuilder().WithName("Vinder").Build(t, testDB.DB)
	runnerUp := testutil.NewSummerHouseBuilder().WithName("Andenplads").Build(t, testDB.DB)

	first := testutil.NewUserBuilder().Build(t, testDB.DB)
	second := testutil.NewUserBuilder().Build(t, testDB.DB)
	testutil.CastVote(t, testDB.DB, first.ID, winner.ID)
	testutil.CastVote(t, testDB.DB, second.ID, winner.ID)
	testutil.CastVote(t, testDB.DB, first.ID, runnerUp.ID)

	results, err := svc.Results(ctx)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, winner.ID, results[0].ID)
	assert.Equal(t, int64(2), results[0].VoteCount)
	assert.Equal(t, runnerUp.ID, results[1].ID)
	assert.Equal(t, int64(1), results[1].VoteCount)
}
