package domain

// NavLink is one entry of the portal shell menu. Links are produced only
// by ResolveNavigation; they are never hand-authored per session.
type NavLink struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	TargetPath string `json:"target_path"`
}

// Session is the single persisted record representing who is currently
// signed in. NavigationLinks are resolved from the user's role when the
// session is minted and never edited afterward.
type Session struct {
	User            User      `json:"user"`
	IsAuthenticated bool      `json:"is_authenticated"`
	ProfileImageRef string    `json:"profile_image_ref"`
	NavigationLinks []NavLink `json:"navigation_links"`
}

// NewSession mints a session for a user. This is the only constructor;
// register, login, and simulated login all funnel through it, so the
// invariant NavigationLinks == ResolveNavigation(user.Role) holds by
// construction.
func NewSession(user User) *Session {
	img := user.AvatarRef
	if img == "" {
		img = defaultProfileImage(user.Role)
	}
	return &Session{
		User:            user,
		IsAuthenticated: true,
		ProfileImageRef: img,
		NavigationLinks: ResolveNavigation(user.Role),
	}
}

// Wellformed reports whether a decoded session satisfies the shape a
// freshly minted session would have. Stores treat anything else as
// corrupt and therefore absent.
func (s *Session) Wellformed() bool {
	if s == nil || !s.IsAuthenticated {
		return false
	}
	if s.User.ID == "" || s.User.Email == "" || !s.User.Role.Valid() {
		return false
	}
	return len(s.NavigationLinks) > 0
}

func defaultProfileImage(role Role) string {
	return "/assets/avatars/" + string(role) + ".png"
}
