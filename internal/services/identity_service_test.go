package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travely/internal/domain"
	"travely/internal/repositories"
	"travely/internal/session"
)

func newIdentityService() IdentityService {
	return IdentityService{
		Store:    repositories.NewSeededStore(),
		Sessions: session.NewMemoryStore(time.Hour),
	}
}

func TestLoginUnknownThenRegisterThenLogin(t *testing.T) {
	svc := newIdentityService()
	ctx := context.Background()

	_, err := svc.Login(ctx, "sid-1", "ghost")
	require.True(t, domain.IsInvalidCredentials(err))

	registered, err := svc.Register(ctx, "sid-1", "ghost")
	require.NoError(t, err)
	assert.Equal(t, "ghost", registered.ID)

	loggedIn, err := svc.Login(ctx, "sid-2", "ghost")
	require.NoError(t, err)
	assert.Equal(t, registered, loggedIn)
}

func TestLoginIsCaseInsensitive(t *testing.T) {
	svc := newIdentityService()

	user, err := svc.Login(context.Background(), "sid-1", "ALICE")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.ID)
}

func TestRegisterNormalizesIDKeepsDisplayCasing(t *testing.T) {
	svc := newIdentityService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "sid-1", "Bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", user.ID)
	assert.Equal(t, "Bob", user.Name)

	// registration implies immediate login
	current, err := svc.CurrentUser(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "bob", current.ID)
}

func TestRegisterBlankUsername(t *testing.T) {
	svc := newIdentityService()

	_, err := svc.Register(context.Background(), "sid-1", "   ")
	assert.True(t, domain.IsValidation(err))
}

func TestRegisterConflictIsCaseInsensitive(t *testing.T) {
	svc := newIdentityService()

	_, err := svc.Register(context.Background(), "sid-1", "Alice")
	assert.True(t, domain.IsConflict(err))
}

func TestUpdateProfile(t *testing.T) {
	svc := newIdentityService()
	ctx := context.Background()

	_, err := svc.Login(ctx, "sid-1", "alice")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, "sid-1", "alice", "Alice Cooper")
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.Equal(t, "alice", updated.ID)

	current, err := svc.CurrentUser(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Alice Cooper", current.Name)
}

func TestUpdateProfileFailureLeavesSessionUntouched(t *testing.T) {
	svc := newIdentityService()
	ctx := context.Background()

	_, err := svc.Login(ctx, "sid-1", "alice")
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, "sid-1", "alice", "  ")
	require.True(t, domain.IsValidation(err))

	_, err = svc.UpdateProfile(ctx, "sid-1", "nobody", "New Name")
	require.True(t, domain.IsNotFound(err))

	current, err := svc.CurrentUser(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "alice", current.Name)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc := newIdentityService()
	ctx := context.Background()

	_, err := svc.Login(ctx, "sid-1", "alice")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, "sid-1"))
	require.NoError(t, svc.Logout(ctx, "sid-1"))
	require.NoError(t, svc.Logout(ctx, ""))

	current, err := svc.CurrentUser(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestCurrentUserAbsentAndCorrupt(t *testing.T) {
	svc := newIdentityService()
	ctx := context.Background()

	current, err := svc.CurrentUser(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, current)

	current, err = svc.CurrentUser(ctx, "never-seen")
	require.NoError(t, err)
	assert.Nil(t, current)

	// corrupt payload reads as absent, not as an error
	require.NoError(t, svc.Sessions.Set(ctx, "sid-bad", []byte("{not json")))
	current, err = svc.CurrentUser(ctx, "sid-bad")
	require.NoError(t, err)
	assert.Nil(t, current)
}
