package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleanstreet/complaint-service/internal/domain"
	apperrors "github.com/cleanstreet/complaint-service/pkg/util"
)

func principalFor(id string, role domain.Role) *Principal {
	return &Principal{
		User: &domain.User{ID: id, Email: id + "@example.com", Role: role},
		Role: role,
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	return apperrors.ToDomainError(err).HTTPStatus
}

func TestAuthorizeComplaintMatrix(t *testing.T) {
	owner := principalFor("u1", domain.RoleUser)
	stranger := principalFor("u2", domain.RoleUser)
	admin := principalFor("a1", domain.RoleAdmin)

	open := &domain.Complaint{ID: "c1", OwnerID: "u1", Status: domain.ComplaintStatusOpen}
	resolved := &domain.Complaint{ID: "c1", OwnerID: "u1", Status: domain.ComplaintStatusResolved}

	tests := []struct {
		name       string
		principal  *Principal
		action     ComplaintAction
		complaint  *domain.Complaint
		wantStatus int // 0 means allowed
	}{
		{"owner views own", owner, ComplaintView, open, 0},
		{"owner deletes own resolved", owner, ComplaintDelete, resolved, 0},
		{"owner edits own open", owner, ComplaintEditContent, open, 0},
		{"owner edits own resolved", owner, ComplaintEditContent, resolved, http.StatusForbidden},
		{"owner changes status", owner, ComplaintChangeStatus, open, http.StatusForbidden},
		{"stranger views", stranger, ComplaintView, open, http.StatusNotFound},
		{"stranger deletes", stranger, ComplaintDelete, open, http.StatusNotFound},
		{"stranger edits", stranger, ComplaintEditContent, open, http.StatusForbidden},
		{"admin views", admin, ComplaintView, resolved, 0},
		{"admin edits resolved", admin, ComplaintEditContent, resolved, 0},
		{"admin changes status", admin, ComplaintChangeStatus, resolved, 0},
		{"admin deletes", admin, ComplaintDelete, resolved, 0},
		{"anonymous views", nil, ComplaintView, open, http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := AuthorizeComplaint(tc.principal, tc.action, tc.complaint)
			if tc.wantStatus == 0 {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tc.wantStatus, statusOf(t, err))
		})
	}
}

func TestAuthorizeUserScope(t *testing.T) {
	user := principalFor("u1", domain.RoleUser)
	admin := principalFor("a1", domain.RoleAdmin)

	assert.NoError(t, AuthorizeUserScope(user, "u1"))
	assert.NoError(t, AuthorizeUserScope(admin, "u1"))
	assert.Equal(t, http.StatusForbidden, statusOf(t, AuthorizeUserScope(user, "u2")))
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, AuthorizeUserScope(nil, "u1")))
}
