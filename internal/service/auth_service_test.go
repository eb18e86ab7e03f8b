package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/repository/postgres"
	"github.com/boe-dawah/boe-backend/internal/service"
	"github.com/boe-dawah/boe-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.RegisterInput
		setup   func()
		wantErr error
	}{
		{
			name: "successful registration is pending approval",
			input: service.RegisterInput{
				Email:    "new@boe.example",
				Password: "password123",
				Name:     "New Dayee",
				Division: "Dhaka",
			},
		},
		{
			name: "duplicate email",
			input: service.RegisterInput{
				Email:    "existing@boe.example",
				Password: "password123",
				Name:     "Second",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("existing@boe.example").
					Build(t, testDB.DB)
			},
			wantErr: service.ErrEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			user, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input.Email, user.Email)
			assert.Equal(t, domain.RoleDayee, user.Role)
			assert.False(t, user.Approved)
		})
	}
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	// Two registrations race for the same email; the unique constraint must
	// let exactly one through and the loser must surface as ErrEmailExists,
	// not an internal error.
	const racers = 2
	errs := make([]error, racers)

	var start sync.WaitGroup
	var done sync.WaitGroup
	start.Add(1)
	for i := 0; i < racers; i++ {
		done.Add(1)
		go func(i int) {
			defer done.Done()
			start.Wait()
			_, errs[i] = authService.Register(ctx, service.RegisterInput{
				Email:    "race@boe.example",
				Password: "password123",
				Name:     "Racer",
			})
		}(i)
	}
	start.Done()
	done.Wait()

	wins, conflicts := 0, 0
	for i := 0; i < racers; i++ {
		switch {
		case errs[i] == nil:
			wins++
		case errors.Is(errs[i], service.ErrEmailExists):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", errs[i])
		}
	}
	assert.Equal(t, 1, wins, "exactly one registration must win")
	assert.Equal(t, 1, conflicts, "the loser must map to ErrEmailExists")
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@boe.example").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	pending, pendingPassword := testutil.NewUserBuilder().
		WithEmail("pending@boe.example").
		WithApproved(false).
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name: "successful login",
			input: service.LoginInput{
				Email:    user.Email,
				Password: rawPassword,
				DeviceID: "device-a",
			},
		},
		{
			name: "same device may log in again",
			input: service.LoginInput{
				Email:    user.Email,
				Password: rawPassword,
				DeviceID: "device-a",
			},
		},
		{
			name: "another device is locked out",
			input: service.LoginInput{
				Email:    user.Email,
				Password: rawPassword,
				DeviceID: "device-b",
			},
			wantErr: domain.ErrDeviceConflict,
		},
		{
			name: "wrong password",
			input: service.LoginInput{
				Email:    user.Email,
				Password: "wrongpassword",
				DeviceID: "device-a",
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name: "unknown email",
			input: service.LoginInput{
				Email:    "nobody@boe.example",
				Password: "anypassword",
				DeviceID: "device-a",
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name: "unapproved account",
			input: service.LoginInput{
				Email:    pending.Email,
				Password: pendingPassword,
				DeviceID: "device-c",
			},
			wantErr: service.ErrUserNotApproved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, result.AccessToken)
			assert.NotEmpty(t, result.SessionID)

			claims, err := authService.ValidateToken(result.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, user.ID.String(), (*claims)["sub"])
			assert.Equal(t, result.SessionID, (*claims)["jti"])
		})
	}
}

func TestAuthService_LogoutReleasesLock(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("logout@boe.example").
		Build(t, testDB.DB)

	_, err := authService.Login(ctx, service.LoginInput{
		Email: user.Email, Password: rawPassword, DeviceID: "device-a",
	})
	require.NoError(t, err)

	// Locked to device-a
	_, err = authService.Login(ctx, service.LoginInput{
		Email: user.Email, Password: rawPassword, DeviceID: "device-b",
	})
	assert.ErrorIs(t, err, domain.ErrDeviceConflict)

	// Logout frees the lock for the next device
	require.NoError(t, authService.Logout(ctx, user.ID, "device-a"))

	_, err = authService.Login(ctx, service.LoginInput{
		Email: user.Email, Password: rawPassword, DeviceID: "device-b",
	})
	assert.NoError(t, err)
}
