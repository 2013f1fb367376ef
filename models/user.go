package models

// User is the identity record returned by the auth endpoints. The client never
// inspects it beyond rendering; it is stored verbatim in the local session.
type User struct {
	// ID is the server-assigned user identifier.
	ID string `json:"id"`

	// Email is the login e-mail address.
	Email string `json:"email"`

	// Profile is the public profile attached to the user, when the server
	// embeds it into the auth payload.
	Profile *Profile `json:"profile,omitempty"`
}

// DisplayName returns the profile name when present and falls back to the
// e-mail address otherwise.
func (u User) DisplayName() string {
	if u.Profile != nil && u.Profile.Name != "" {
		return u.Profile.Name
	}
	return u.Email
}

// Credentials is the request body of POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the request body of POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AuthResponse is returned by signup and login. Token is the opaque bearer
// credential to be attached to every subsequent request.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// MeResponse is returned by GET /auth/me.
type MeResponse struct {
	User User `json:"user"`
}

// SignupForm is what the signup page collects. ConfirmPassword never leaves
// the client.
type SignupForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}
