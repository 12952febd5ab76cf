package entity

import "strings"

// Party identifies one side of an order.
type Party struct {
	UID   string `json:"uid"`   // Identity provider subject of the party.
	Name  string `json:"name"`  // Display name shown on order timelines.
	Email string `json:"email"` // Contact email, normalized on write.
}

// Caller is the authenticated principal of a request.
type Caller struct {
	UID   string
	Email string
	Name  string
	Roles Roles
}

// IsAdmin reports whether the caller belongs to the admin allow-list.
func (c Caller) IsAdmin() bool {
	return c.Roles.Contains(RoleAdmin)
}

// Is reports whether the caller is the given party.
func (c Caller) Is(uid string) bool {
	return c.UID != "" && c.UID == uid
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
