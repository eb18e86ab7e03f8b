package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/repository"
	"github.com/boe-dawah/boe-backend/internal/repository/postgres"
	"github.com/boe-dawah/boe-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	tests := []struct {
		name    string
		user    *domain.User
		wantErr bool
	}{
		{
			name: "successful creation",
			user: &domain.User{
				ID:           uuid.New(),
				Email:        "dayee@boe.example",
				PasswordHash: "hashedpassword",
				Name:         "Test Dayee",
				Role:         domain.RoleDayee,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			},
			wantErr: false,
		},
		{
			name: "duplicate email",
			user: &domain.User{
				ID:           uuid.New(),
				Email:        "dayee@boe.example", // Same as above
				PasswordHash: "hashedpassword2",
				Name:         "Other Dayee",
				Role:         domain.RoleDayee,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(ctx, tt.user)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithEmail("lookup@boe.example").
		Build(t, testDB.DB)

	got, err := repo.GetByEmail(ctx, "lookup@boe.example")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "missing@boe.example")
	assert.Error(t, err)
}

func TestUserRepository_List(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	testutil.NewUserBuilder().WithRegion("Mirpur Markaz", "Dhaka", "Dhaka").Build(t, testDB.DB)
	testutil.NewUserBuilder().WithRegion("Sadar Markaz", "Chattogram", "Chattogram").Build(t, testDB.DB)
	testutil.NewUserBuilder().
		WithRole(domain.RoleDivisionAdmin).
		WithRegion("", "Dhaka", "").
		Build(t, testDB.DB)

	tests := []struct {
		name   string
		filter repository.UserFilter
		want   int
	}{
		{name: "no filter", filter: repository.UserFilter{}, want: 3},
		{name: "by division", filter: repository.UserFilter{Division: "Dhaka"}, want: 2},
		{name: "by role", filter: repository.UserFilter{Role: domain.RoleDivisionAdmin}, want: 1},
		{name: "by district", filter: repository.UserFilter{District: "Chattogram"}, want: 1},
		{name: "no match", filter: repository.UserFilter{Division: "Khulna"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, users, tt.want)
		})
	}
}

func TestUserRepository_ClaimDevice(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	// First claim succeeds
	claimed, err := repo.ClaimDevice(ctx, user.ID, "device-a", "session-1")
	require.NoError(t, err)
	assert.True(t, claimed)

	// Same device may re-claim (session refresh)
	claimed, err = repo.ClaimDevice(ctx, user.ID, "device-a", "session-2")
	require.NoError(t, err)
	assert.True(t, claimed)

	// A different device is rejected and the lock is untouched
	claimed, err = repo.ClaimDevice(ctx, user.ID, "device-b", "session-3")
	require.NoError(t, err)
	assert.False(t, claimed)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ActiveDeviceID)
	assert.Equal(t, "device-a", *got.ActiveDeviceID)
	require.NotNil(t, got.ActiveSessionID)
	assert.Equal(t, "session-2", *got.ActiveSessionID)
}

func TestUserRepository_ClaimDevice_ConcurrentFirstClaims(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	// Two devices race for the unclaimed lock; the conditional update must
	// let exactly one through.
	const racers = 2
	results := make([]bool, racers)
	errs := make([]error, racers)

	var start sync.WaitGroup
	var done sync.WaitGroup
	start.Add(1)
	for i := 0; i < racers; i++ {
		done.Add(1)
		go func(i int) {
			defer done.Done()
			start.Wait()
			results[i], errs[i] = repo.ClaimDevice(ctx, user.ID, uuid.New().String(), uuid.New().String())
		}(i)
	}
	start.Done()
	done.Wait()

	wins := 0
	for i := 0; i < racers; i++ {
		require.NoError(t, errs[i])
		if results[i] {
			wins++
		}
	}
	assert.Equal(t, 1, wins, "exactly one device must win the first claim")
}

func TestUserRepository_ReleaseDevice(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	claimed, err := repo.ClaimDevice(ctx, user.ID, "device-a", "session-1")
	require.NoError(t, err)
	require.True(t, claimed)

	// A stale device cannot release another device's lock
	require.NoError(t, repo.ReleaseDevice(ctx, user.ID, "device-b"))
	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ActiveDeviceID)

	// The holder can release, after which a new device may claim
	require.NoError(t, repo.ReleaseDevice(ctx, user.ID, "device-a"))
	got, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ActiveDeviceID)
	assert.Nil(t, got.ActiveSessionID)

	claimed, err = repo.ClaimDevice(ctx, user.ID, "device-b", "session-2")
	require.NoError(t, err)
	assert.True(t, claimed)
}
