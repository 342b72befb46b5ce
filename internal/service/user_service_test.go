package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cleanstreet/complaint-service/internal/config"
	"github.com/cleanstreet/complaint-service/internal/domain"
)

func newUserFixture() (*UserService, *fakeUserRepo, *fakeComplaintRepo) {
	users := newFakeUserRepo()
	complaints := newFakeComplaintRepo()
	svc := NewUserService(config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 15,
		BcryptCost:            bcrypt.MinCost,
	}, UserDependencies{UserRepo: users, ComplaintRepo: complaints})
	return svc, users, complaints
}

func TestRegisterDefaultsToUserRole(t *testing.T) {
	svc, _, _ := newUserFixture()

	user, err := svc.Register(context.Background(), "Asha", "asha@example.com", "s3cret", "")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)
	// The stored credential is a hash, never the raw password.
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _, _ := newUserFixture()

	_, err := svc.Register(context.Background(), "Asha", "asha@example.com", "s3cret", "SUPERUSER")
	assert.Equal(t, http.StatusBadRequest, denialStatus(t, err))
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _, _ := newUserFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Asha", "asha@example.com", "s3cret", domain.RoleUser)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Imposter", "asha@example.com", "other", domain.RoleUser)
	assert.Equal(t, http.StatusConflict, denialStatus(t, err))
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, _, _ := newUserFixture()
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Asha", "asha@example.com", "s3cret", domain.RoleAdmin)
	require.NoError(t, err)

	user, token, expiresAt, err := svc.Login(ctx, "asha@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.False(t, expiresAt.IsZero())

	claims, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLoginBadCredentialsAreUnauthorized(t *testing.T) {
	svc, _, _ := newUserFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Asha", "asha@example.com", "s3cret", domain.RoleUser)
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "asha@example.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, denialStatus(t, err))

	_, _, _, err = svc.Login(ctx, "nobody@example.com", "s3cret")
	assert.Equal(t, http.StatusUnauthorized, denialStatus(t, err))
}

func TestDeleteUserCascadesComplaints(t *testing.T) {
	svc, users, complaints := newUserFixture()
	ctx := context.Background()

	owner, err := svc.Register(ctx, "Asha", "asha@example.com", "s3cret", domain.RoleUser)
	require.NoError(t, err)
	other, err := svc.Register(ctx, "Ravi", "ravi@example.com", "s3cret", domain.RoleUser)
	require.NoError(t, err)

	for _, ownerID := range []string{owner.ID, owner.ID, other.ID} {
		require.NoError(t, complaints.Create(ctx, &domain.Complaint{
			Title:       "Pothole",
			Description: "Deep pothole",
			Status:      domain.ComplaintStatusOpen,
			OwnerID:     ownerID,
			LocationID:  "l1",
		}))
	}

	require.NoError(t, svc.Delete(ctx, owner.ID))

	_, err = users.GetByID(ctx, owner.ID)
	assert.Error(t, err)

	// No complaint outlives its owner; unrelated complaints survive.
	remaining, err := complaints.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].OwnerID)
}

func TestDeleteMissingUserIsNotFound(t *testing.T) {
	svc, _, _ := newUserFixture()

	err := svc.Delete(context.Background(), "nope")
	assert.Equal(t, http.StatusNotFound, denialStatus(t, err))
}

func TestGetMissingUserIsNotFound(t *testing.T) {
	svc, _, _ := newUserFixture()

	_, err := svc.Get(context.Background(), "nope")
	assert.Equal(t, http.StatusNotFound, denialStatus(t, err))
}
