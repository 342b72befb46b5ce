package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseComplaintStatus(t *testing.T) {
	for _, valid := range []string{"OPEN", "IN_PROGRESS", "RESOLVED", "REJECTED"} {
		status, ok := ParseComplaintStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, ComplaintStatus(valid), status)
	}

	for _, invalid := range []string{"", "open", "CLOSED", "PENDING"} {
		_, ok := ParseComplaintStatus(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestContentEditableOnlyWhileOpen(t *testing.T) {
	complaint := &Complaint{Status: ComplaintStatusOpen}
	assert.True(t, complaint.ContentEditable())

	for _, status := range []ComplaintStatus{ComplaintStatusInProgress, ComplaintStatusResolved, ComplaintStatusRejected} {
		complaint.Status = status
		assert.False(t, complaint.ContentEditable(), string(status))
	}
}

func TestOwnedBy(t *testing.T) {
	complaint := &Complaint{OwnerID: "u1"}
	assert.True(t, complaint.OwnedBy("u1"))
	assert.False(t, complaint.OwnedBy("u2"))
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("ADMIN")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, role)

	_, ok = ParseRole("SUPERUSER")
	assert.False(t, ok)
}
