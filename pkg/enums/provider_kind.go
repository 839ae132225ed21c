package enums

import "fmt"

// ProviderKind distinguishes the two account types that list catalog items.
type ProviderKind string

const (
	ProviderKindArtist  ProviderKind = "artist"
	ProviderKindGallery ProviderKind = "gallery"
)

var validProviderKinds = []ProviderKind{
	ProviderKindArtist,
	ProviderKindGallery,
}

// String implements fmt.Stringer.
func (p ProviderKind) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProviderKind.
func (p ProviderKind) IsValid() bool {
	for _, candidate := range validProviderKinds {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProviderKind converts raw input into a ProviderKind.
func ParseProviderKind(value string) (ProviderKind, error) {
	for _, candidate := range validProviderKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid provider kind %q", value)
}

// ProviderKindForRole maps an uploading role onto its listing kind. Admins
// list under a gallery provider, the same as any other non-artist account.
func ProviderKindForRole(role Role) (ProviderKind, error) {
	switch role {
	case RoleArtist:
		return ProviderKindArtist, nil
	case RoleGallery, RoleAdmin:
		return ProviderKindGallery, nil
	default:
		return "", fmt.Errorf("role %q cannot own listings", role)
	}
}
