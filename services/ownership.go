package services

import (
	"SinOutGo/models"
)

// CanAccess decides whether a requester may touch a resource owned by
// another user: admins may, everyone else only their own.
func CanAccess(resourceOwnerID, requesterID, requesterRole string) bool {
	return requesterRole == models.RoleAdmin || resourceOwnerID == requesterID
}

// RequireOwnership returns the uniform "Access denied" violation when
// CanAccess says no. Evaluated before every read/update/delete of a
// user-owned resource.
func RequireOwnership(resourceOwnerID, requesterID, requesterRole string) error {
	if !CanAccess(resourceOwnerID, requesterID, requesterRole) {
		return models.NewDomainError("Access denied")
	}
	return nil
}
