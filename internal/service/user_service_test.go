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

func newUserService(t *testing.T) (*service.UserService, *testutil.TestDB) {
	t.Helper()
	testDB := testutil.NewTestDB(t)
	repos := sqlite.NewRepositories(testDB.DB)
	return service.NewUserService(repos.User, repos.Vote), testDB
}

func TestUserService_Register(t *testing.T) {
	svc, testDB := newUserService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Anna", "  Anna@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "Anna", user.Name)
	assert.Equal(t, "anna@example.com", user.Email)
	assert.Empty(t, user.Votes)
	assert.Len(t, token, 64)

	// Second registration with a case variant of the same email conflicts
	// and leaves a single stored row.
	_, _, err = svc.Register(ctx, "Anna Again", "ANNA@example.com")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	var count int64
	require.NoError(t, testDB.DB.Model(&domain.User{}).Where("email = ?", "anna@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserService_EmailExists(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Bo", "bo@example.com")
	require.NoError(t, err)

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "registered email", email: "bo@example.com", want: true},
		{name: "case variant", email: "BO@Example.com", want: true},
		{name: "unknown email", email: "nobody@example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := svc.EmailExists(ctx, tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.want, exists)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, registerToken, err := svc.Register(ctx, "Clara", "clara@example.com")
	require.NoError(t, err)

	user, loginToken, err := svc.Login(ctx, "Clara@example.com")
	require.NoError(t, err)
	assert.Equal(t, "clara@example.com", user.Email)
	assert.Len(t, loginToken, 64)
	assert.NotEqual(t, registerToken, loginToken)

	// The rotated token resolves, the original no longer does.
	current, err := svc.CurrentUser(ctx, loginToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)

	_, err = svc.CurrentUser(ctx, registerToken)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newUserService(t)

	_, _, err := svc.Login(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_CurrentUser_IncludesVotes(t *testing.T) {
	svc, testDB := newUserService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Dan", "dan@example.com")
	require.NoError(t, err)

	house := testutil.NewSummerHouseBuilder().Build(t, testDB.DB)
	testutil.CastVote(t, testDB.DB, user.ID, house.ID)

	current, err := svc.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, []int64{house.ID}, current.Votes)
}
