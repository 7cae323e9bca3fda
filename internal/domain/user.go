package domain

import "strings"

// DefaultUserID is the collection used when no authenticated user is present.
const DefaultUserID = "default_user"

// ResolveUserID returns userID, or DefaultUserID when it is blank.
func ResolveUserID(userID string) string {
	if strings.TrimSpace(userID) == "" {
		return DefaultUserID
	}
	return userID
}
