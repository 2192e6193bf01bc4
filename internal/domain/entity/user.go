package entity

import "time"

const (
	RoleBuyer     = "buyer"
	RoleSeller    = "seller"
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

type User struct {
	Metadata

	Email     string `json:"email,omitempty" firestore:"email,omitempty"`
	Phone     string `json:"phone,omitempty" firestore:"phone,omitempty"`
	FirstName string `json:"first_name,omitempty" firestore:"firstName,omitempty"`
	LastName  string `json:"last_name,omitempty" firestore:"lastName,omitempty"`
	Avatar    string `json:"avatar,omitempty" firestore:"avatar,omitempty"`
	Role      string `json:"role" firestore:"role"`

	PasswordHash string `json:"-" firestore:"password,omitempty"`

	IsEmailVerified bool `json:"is_email_verified" firestore:"isEmailVerified"`
	IsPhoneVerified bool `json:"is_phone_verified" firestore:"isPhoneVerified"`
	IsActive        bool `json:"is_active" firestore:"isActive"`

	// Provider identities linked on first OAuth login.
	GoogleID   string `json:"-" firestore:"googleId,omitempty"`
	FacebookID string `json:"-" firestore:"facebookId,omitempty"`

	// One active refresh token per user; a new login overwrites the old one
	// and implicitly invalidates prior sessions.
	RefreshToken         string     `json:"-" firestore:"refreshToken,omitempty"`
	PasswordResetToken   string     `json:"-" firestore:"passwordResetToken,omitempty"`
	PasswordResetExpires *time.Time `json:"-" firestore:"passwordResetExpires,omitempty"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty" firestore:"lastLoginAt,omitempty"`
}

// PublicProfile strips credentials and bookkeeping for embedding in responses.
type PublicProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Avatar:    u.Avatar,
	}
}
