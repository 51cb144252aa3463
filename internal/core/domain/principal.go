package domain

// Principal is the identity resolved for a single request. It is either
// anonymous or carries the authenticated user. Principals are derived per
// request and never persisted.
type Principal struct {
	user *User
}

// Anonymous returns the principal for an unauthenticated request.
func Anonymous() Principal {
	return Principal{}
}

// AuthenticatedAs returns the principal for a resolved user.
func AuthenticatedAs(u *User) Principal {
	return Principal{user: u}
}

func (p Principal) IsAuthenticated() bool {
	return p.user != nil
}

func (p Principal) IsAdmin() bool {
	return p.user != nil && p.user.Role == RoleAdmin
}

// User returns the authenticated user, or nil for an anonymous principal.
func (p Principal) User() *User {
	return p.user
}

// UserID returns the authenticated user's id, or "" for an anonymous principal.
func (p Principal) UserID() string {
	if p.user == nil {
		return ""
	}
	return p.user.ID
}
