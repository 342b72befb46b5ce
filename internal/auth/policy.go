package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cleanstreet/complaint-service/internal/domain"
	apperrors "github.com/cleanstreet/complaint-service/pkg/util"
)

// ComplaintAction identifies an entity-scoped operation on a complaint.
type ComplaintAction string

const (
	ComplaintView         ComplaintAction = "view"
	ComplaintEditContent  ComplaintAction = "edit_content"
	ComplaintChangeStatus ComplaintAction = "change_status"
	ComplaintDelete       ComplaintAction = "delete"
)

// RequireRole gates a route to authenticated callers holding one of the
// allowed roles. No bound identity yields Unauthorized; a bound identity with
// a role outside the set yields Forbidden. With no roles listed, any
// authenticated caller passes.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// AuthorizeComplaint decides whether the principal may perform the action on
// the given complaint snapshot. The snapshot is resolved exactly once by the
// caller; this function is pure. Rules:
//
//   - ADMIN: any action, any status.
//   - USER view/delete: owner only. Non-owners are denied as not-found so a
//     failed probe confirms nothing beyond what read access already implies.
//   - USER edit content: owner AND status OPEN. Ownership alone stops being
//     sufficient once the status has advanced.
//   - USER change status: never.
//
// The role check always runs before the ownership predicate.
func AuthorizeComplaint(principal *Principal, action ComplaintAction, complaint *domain.Complaint) error {
	if principal == nil || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if principal.IsAdmin() {
		return nil
	}
	if principal.Role != domain.RoleUser {
		return apperrors.NewForbidden("insufficient role")
	}

	switch action {
	case ComplaintView, ComplaintDelete:
		if !complaint.OwnedBy(principal.User.ID) {
			return apperrors.NewNotFound("complaint", nil)
		}
		return nil
	case ComplaintEditContent:
		if !complaint.OwnedBy(principal.User.ID) {
			return apperrors.NewForbidden("not the complaint owner")
		}
		if !complaint.ContentEditable() {
			return apperrors.NewForbidden("complaint is no longer open")
		}
		return nil
	case ComplaintChangeStatus:
		return apperrors.NewForbidden("status changes require ADMIN")
	default:
		return apperrors.NewForbidden("unknown action")
	}
}

// AuthorizeUserScope allows admins, or a user acting on their own account.
// The bound identity's id is compared to the requested id; role membership
// alone is not enough.
func AuthorizeUserScope(principal *Principal, targetUserID string) error {
	if principal == nil || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if principal.IsAdmin() {
		return nil
	}
	if principal.User.ID != targetUserID {
		return apperrors.NewForbidden("access restricted to own account")
	}
	return nil
}
