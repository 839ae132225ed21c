package enums

import "fmt"

// Role represents a platform-level account role.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleArtist   Role = "artist"
	RoleGallery  Role = "gallery"
)

var validRoles = []Role{
	RoleAdmin,
	RoleCustomer,
	RoleArtist,
	RoleGallery,
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// IsProvider reports whether the role can list catalog items.
func (r Role) IsProvider() bool {
	return r == RoleArtist || r == RoleGallery
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}
