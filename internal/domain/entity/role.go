// Package entity contains the core business objects of the marketplace.
package entity

import "slices"

// Role is a marketplace capability carried in the caller's token.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleFarmer Role = "farmer"
	// RoleAdmin may act on any order. It is also granted to allow-listed emails at request time.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleBuyer || r == RoleFarmer || r == RoleAdmin
}

type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// With returns rs plus role, unchanged when role is already present.
func (rs Roles) With(role Role) Roles {
	if rs.Contains(role) {
		return rs
	}

	return append(slices.Clip(rs), role)
}

// ToStrings renders the roles as token claims.
func (rs Roles) ToStrings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}

// RolesFromStrings parses token claims, dropping unknown and repeated values.
func RolesFromStrings(ss []string) Roles {
	roles := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role := Role(s); role.IsValid() {
			roles = roles.With(role)
		}
	}

	return roles
}
