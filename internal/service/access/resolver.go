// Package access resolves what an actor may do with a content item.
// Every function here is pure: no I/O, safe to call speculatively.
package access

import (
	"github.com/heartmarshall/memorial-backend/internal/domain"
)

// Resolve computes the capability set of actor over item, which belongs to profile.
//
// Grants accumulate; no rule revokes another rule's grant:
//   - staff roles get everything;
//   - the profile owner and editors get everything over items scoped to that
//     profile, except moderate on kinds reserved for staff and on their own
//     items of kinds that forbid self-moderation;
//   - the author gets view and edit, plus delete where the kind allows it;
//   - anyone may view an approved item.
func Resolve(actor domain.User, item domain.ContentItem, profile domain.Profile) domain.CapabilitySet {
	if !actor.IsAnonymous() && actor.Role.IsStaff() {
		return domain.AllCapabilities
	}

	var caps domain.CapabilitySet
	policy := domain.PolicyFor(item.Kind)
	isAuthor := !actor.IsAnonymous() && actor.ID == item.AuthorID

	if item.ProfileID == profile.ID && profile.IsManager(actor.ID) {
		managerCaps := domain.AllCapabilities
		if !policy.ManagerModeration || (isAuthor && policy.SelfModerationForbidden) {
			managerCaps = managerCaps.Without(domain.CapabilityModerate)
		}
		caps = caps.Union(managerCaps)
	}

	if isAuthor {
		caps = caps.With(domain.CapabilityView).With(domain.CapabilityEdit)
		if policy.AuthorMayDelete {
			caps = caps.With(domain.CapabilityDelete)
		}
	}

	if item.Status == domain.ContentStatusApproved {
		caps = caps.With(domain.CapabilityView)
	}

	return caps
}

// CanManageEditors reports whether actor may add or remove editors of profile.
// Only the owner and admins may; editors and moderators may not.
func CanManageEditors(actor domain.User, profile domain.Profile) bool {
	if actor.IsAnonymous() {
		return false
	}
	return profile.IsOwner(actor.ID) || actor.Role.IsAdmin()
}

// CanAssignRole reports whether actor may set target's global role to role.
// Superadmins assign any role; admins promote or demote between user and
// moderator for non-admin targets. Nobody changes their own role.
func CanAssignRole(actor, target domain.User, role domain.Role) bool {
	if actor.IsAnonymous() || actor.ID == target.ID || !role.IsValid() {
		return false
	}
	switch actor.Role {
	case domain.RoleSuperadmin:
		return true
	case domain.RoleAdmin:
		if target.Role.IsAdmin() {
			return false
		}
		return role == domain.RoleUser || role == domain.RoleModerator
	}
	return false
}
