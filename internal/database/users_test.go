package database

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"pagehub/internal/auth"
	"pagehub/internal/config"
	"pagehub/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCreateUser_Defaults(t *testing.T) {
	user := createTestUser(t, models.RoleUser)

	require.Equal(t, models.RoleUser, user.Role)
	require.Equal(t, models.StatusActive, user.Status)
	require.Equal(t, models.SubscriptionFree, user.SubscriptionStatus)
	require.Nil(t, user.SubscriptionExpiry)
	require.NotZero(t, user.CreatedAt)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	user := createTestUser(t, models.RoleUser)

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	_, err = testStore.CreateUser(context.Background(), CreateUserParams{
		Username:     "someone_else",
		Email:        user.Email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	})
	require.ErrorIs(t, err, ErrDuplicateEmail)

	// No second record must exist for this email.
	found, err := testStore.GetUserByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, user.ID, found.ID)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	user, err := testStore.GetUserByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestGetUserByID_NotFound(t *testing.T) {
	user, err := testStore.GetUserByID(context.Background(), 999_999)
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestUpdateUserSubscription(t *testing.T) {
	user := createTestUser(t, models.RoleUser)
	ctx := context.Background()

	expiry := time.Now().AddDate(0, 1, 0).UTC().Truncate(time.Second)
	updated, err := testStore.UpdateUserSubscription(ctx, user.ID, models.SubscriptionPaid, &expiry)
	require.NoError(t, err)
	require.Equal(t, models.SubscriptionPaid, updated.SubscriptionStatus)
	require.NotNil(t, updated.SubscriptionExpiry)
	require.WithinDuration(t, expiry, *updated.SubscriptionExpiry, time.Second)

	// Downgrade clears the expiry.
	updated, err = testStore.UpdateUserSubscription(ctx, user.ID, models.SubscriptionFree, nil)
	require.NoError(t, err)
	require.Equal(t, models.SubscriptionFree, updated.SubscriptionStatus)
	require.Nil(t, updated.SubscriptionExpiry)
}

func TestUpdateUserSubscription_NotFound(t *testing.T) {
	_, err := testStore.UpdateUserSubscription(context.Background(), 999_999, models.SubscriptionPaid, nil)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUserRoleAndStatus(t *testing.T) {
	user := createTestUser(t, models.RoleUser)
	ctx := context.Background()

	updated, err := testStore.UpdateUserRole(ctx, user.ID, models.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, updated.Role)

	updated, err = testStore.UpdateUserStatus(ctx, user.ID, models.StatusBanned)
	require.NoError(t, err)
	require.Equal(t, models.StatusBanned, updated.Status)
}

func TestUpdateUserDetails_PartialPatch(t *testing.T) {
	user := createTestUser(t, models.RoleUser)
	ctx := context.Background()

	newName := "renamed_user"
	updated, err := testStore.UpdateUserDetails(ctx, user.ID, UpdateUserDetailsParams{
		Username: &newName,
	})
	require.NoError(t, err)
	require.Equal(t, "renamed_user", updated.Username)
	// Untouched fields keep their values.
	require.Equal(t, user.Email, updated.Email)
	require.Equal(t, user.Role, updated.Role)
	require.Equal(t, user.SubscriptionStatus, updated.SubscriptionStatus)
}

func TestUpdateUserDetails_SubscriptionRewritesExpiry(t *testing.T) {
	user := createTestUser(t, models.RoleUser)
	ctx := context.Background()

	expiry := time.Now().AddDate(0, 1, 0)
	_, err := testStore.UpdateUserSubscription(ctx, user.ID, models.SubscriptionPaid, &expiry)
	require.NoError(t, err)

	// A patch that does not mention the subscription leaves the expiry alone.
	newName := "patched_name"
	updated, err := testStore.UpdateUserDetails(ctx, user.ID, UpdateUserDetailsParams{
		Username: &newName,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.SubscriptionExpiry)

	// A downgrade through the patch path clears it.
	free := models.SubscriptionFree
	updated, err = testStore.UpdateUserDetails(ctx, user.ID, UpdateUserDetailsParams{
		SubscriptionStatus: &free,
		SubscriptionExpiry: nil,
	})
	require.NoError(t, err)
	require.Equal(t, models.SubscriptionFree, updated.SubscriptionStatus)
	require.Nil(t, updated.SubscriptionExpiry)

	// An upgrade writes exactly the expiry it is handed.
	paid := models.SubscriptionPaid
	updated, err = testStore.UpdateUserDetails(ctx, user.ID, UpdateUserDetailsParams{
		SubscriptionStatus: &paid,
		SubscriptionExpiry: &expiry,
	})
	require.NoError(t, err)
	require.Equal(t, models.SubscriptionPaid, updated.SubscriptionStatus)
	require.NotNil(t, updated.SubscriptionExpiry)
	require.WithinDuration(t, expiry, *updated.SubscriptionExpiry, time.Second)
}

func TestUpdateUserPassword(t *testing.T) {
	user := createTestUser(t, models.RoleUser)
	ctx := context.Background()

	newHash, err := auth.HashPassword("aNewPassword1")
	require.NoError(t, err)

	updated, err := testStore.UpdateUserPassword(ctx, user.ID, newHash)
	require.NoError(t, err)
	require.True(t, updated)

	fresh, err := testStore.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, auth.CheckPasswordHash("aNewPassword1", fresh.PasswordHash))

	updated, err = testStore.UpdateUserPassword(ctx, 999_999, newHash)
	require.NoError(t, err)
	require.False(t, updated)
}

func TestListUsers(t *testing.T) {
	user := createTestUser(t, models.RoleUser)

	users, err := testStore.ListUsers(context.Background())
	require.NoError(t, err)

	found := false
	for _, u := range users {
		if u.ID == user.ID {
			found = true
			break
		}
	}
	require.True(t, found)
}

func TestExecTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()

	email := fmt.Sprintf("tx_victim_%d@example.com", atomic.AddInt64(&userSeq, 1))
	err := testStore.ExecTx(ctx, func(q *Queries) error {
		_, err := q.CreateUser(ctx, CreateUserParams{
			Username:     "tx_victim",
			Email:        email,
			PasswordHash: "irrelevant",
			Role:         models.RoleUser,
		})
		require.NoError(t, err)
		return errors.New("abort")
	})
	require.Error(t, err)

	// The insert never committed.
	user, err := testStore.GetUserByEmail(ctx, email)
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestSeedAdmin_Idempotent(t *testing.T) {
	ctx := context.Background()
	cfg := config.AdminConfig{
		Username: "seed_admin",
		Email:    "seed_admin@example.com",
		Password: "Passw0rd!",
	}

	require.NoError(t, testStore.SeedAdmin(ctx, cfg))
	require.NoError(t, testStore.SeedAdmin(ctx, cfg))

	admin, err := testStore.GetUserByEmail(ctx, cfg.Email)
	require.NoError(t, err)
	require.NotNil(t, admin)
	require.Equal(t, models.RoleAdmin, admin.Role)

	// Drifted role and status get reconciled on the next run.
	_, err = testStore.UpdateUserRole(ctx, admin.ID, models.RoleUser)
	require.NoError(t, err)
	_, err = testStore.UpdateUserStatus(ctx, admin.ID, models.StatusBanned)
	require.NoError(t, err)

	require.NoError(t, testStore.SeedAdmin(ctx, cfg))

	admin, err = testStore.GetUserByEmail(ctx, cfg.Email)
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, admin.Role)
	require.Equal(t, models.StatusActive, admin.Status)
}
