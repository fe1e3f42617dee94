package main

// Session represents the authenticated principal of the storefront.
// It is either fully absent (nil) or carries all fields including a
// non empty bearer credential. A partially populated record restored
// from the vault is treated as absent and purged.
type Session struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
	AccessToken string   `json:"accessToken"`
}

// Valid reports whether the session carries a usable credential.
func (s *Session) Valid() bool {
	return s != nil && len(s.AccessToken) != 0
}

// HasRole reports whether the session holds the given role name.
func (s *Session) HasRole(role string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RoleAdmin guards the book management commands.
const RoleAdmin = "ADMIN"
