package sqlite_test

import (
	"context"
	"testing"

	"github.com/mkj/summerhouse-voting/internal/domain"
	"github.com/mkj/summerhouse-voting/internal/repository/sqlite"
	"github.com/mkj/summerhouse-voting/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := sqlite.NewUserRepository(testDB.DB)
	ctx := context.Background()

	tests := []struct {
		name    string
		user    *domain.User
		wantErr error
	}{
		{
			name: "successful creation",
			user: &domain.User{
				Name:      "Anna",
				Email:     "anna@example.com",
				SessionID: "session-a",
			},
		},
		{
			name: "duplicate email",
			user: &domain.User{
				Name:      "Anna Again",
				Email:     "anna@example.com",
				SessionID: "session-b",
			},
			wantErr: gorm.ErrDuplicatedKey,
		},
		{
			name: "duplicate session id",
			user: &domain.User{
				Name:      "Bo",
				Email:     "bo@example.com",
				SessionID: "session-a",
			},
			wantErr: gorm.ErrDuplicatedKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(ctx, tt.user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, tt.user.ID)
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := sqlite.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user := testutil.NewUserBuilder().WithEmail("lookup@example.com").Build(t, testDB.DB)

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{
			name:  "existing user",
			email: "lookup@example.com",
		},
		{
			name:    "non-existent user",
			email:   "nobody@example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByEmail(ctx, tt.email)
			if tt.wantErr {
				assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
			assert.Equal(t, user.Email, got.Email)
		})
	}
}

func TestUserRepository_GetBySessionID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := sqlite.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user := testutil.NewUserBuilder().WithSessionID("known-session").Build(t, testDB.DB)

	got, err := repo.GetBySessionID(ctx, "known-session")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.GetBySessionID(ctx, "unknown-session")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_UpdateSession(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := sqlite.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user := testutil.NewUserBuilder().WithSessionID("old-session").Build(t, testDB.DB)

	require.NoError(t, repo.UpdateSession(ctx, user.ID, "new-session"))

	got, err := repo.GetBySessionID(ctx, "new-session")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// The old token stops resolving once rotated.
	_, err = repo.GetBySessionID(ctx, "old-session")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Unknown user id is an error, not a silent no-op.
	err = repo.UpdateSession(ctx, user.ID+999, "other-session")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
