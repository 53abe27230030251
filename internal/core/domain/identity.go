package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Identity is the authenticated user as asserted by the external identity
// provider. The gateway never stores credentials; it only verifies the
// provider's token and reads these claims.
type Identity struct {
	Email      string `json:"email"`
	Name       string `json:"name,omitempty"`
	PictureURL string `json:"picture_url,omitempty"`
	Role       string `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// Valid UI theme preference values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ValidTheme reports whether s is a recognized theme preference.
func ValidTheme(s string) bool {
	return s == ThemeLight || s == ThemeDark
}

// Profile holds the user-editable dashboard fields kept by the collaborator.
type Profile struct {
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
