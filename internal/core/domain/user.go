package domain

import (
	"strings"
	"time"
)

// Role is the closed set of portal account types. Navigation and home
// redirects are derived from it, so no value outside this set is valid.
type Role string

const (
	RoleCompany      Role = "company"
	RoleBusiness     Role = "business"
	RoleProfessional Role = "professional"
)

// ParseRole maps free-form input to a Role, or ErrInvalidRole.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleCompany:
		return RoleCompany, nil
	case RoleBusiness:
		return RoleBusiness, nil
	case RoleProfessional:
		return RoleProfessional, nil
	}
	return "", ErrInvalidRole
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleCompany, RoleBusiness, RoleProfessional:
		return true
	}
	return false
}

// Home returns the landing path a signed-in user of this role is sent to.
// Unknown roles fall back to the portal root.
func (r Role) Home() string {
	switch r {
	case RoleCompany:
		return "/company/home"
	case RoleBusiness:
		return "/business/home"
	case RoleProfessional:
		return "/professional/home"
	}
	return "/"
}

// User models a portal account. Role is immutable once assigned.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	DisplayName      string    `json:"display_name"`
	PhoneNumber      string    `json:"phone_number"`
	BusinessCategory string    `json:"business_category,omitempty"`
	Role             Role      `json:"role"`
	AvatarRef        string    `json:"avatar_ref,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

const emailDomain = "bizlink.com"

// DeriveEmail produces the deterministic mock address for a registered
// display name: lowercased, runs of non-alphanumerics collapsed to a
// single dot. Two users with the same display name therefore collide,
// which registration rejects as a duplicate.
func DeriveEmail(displayName string) string {
	var b strings.Builder
	lastDot := true // suppress a leading dot
	for _, r := range strings.ToLower(strings.TrimSpace(displayName)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDot = false
		default:
			if !lastDot {
				b.WriteByte('.')
				lastDot = true
			}
		}
	}
	local := strings.TrimSuffix(b.String(), ".")
	if local == "" {
		local = "user"
	}
	return local + "@" + emailDomain
}
