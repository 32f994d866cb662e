// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is carried in the roles claim of an admin API token.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleViewer
}

type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings returns the claim form of rs.
func (rs Roles) ToStrings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}

// RolesFromStrings parses a roles claim. Unknown roles are dropped.
func RolesFromStrings(ss []string) Roles {
	out := make(Roles, 0, len(ss))
	for _, s := range ss {
		if r := Role(s); r.IsValid() {
			out = append(out, r)
		}
	}

	return out
}
