package entity

// ExtensionAuthRequest carries the Google access token obtained by the
// extension via chrome.identity
type ExtensionAuthRequest struct {
	Token string `json:"token"`
}

// UserDTO is the external representation of a user
type UserDTO struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatarUrl"`
	Role        string `json:"role"`
	CreatedAt   string `json:"createdAt,omitempty"`
	LastLoginAt string `json:"lastLoginAt,omitempty"`
}

// ExtensionAuthResponse returns the bearer session token to the extension
type ExtensionAuthResponse struct {
	Success bool    `json:"success"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

// GoogleUserInfo is the userinfo payload returned by Google for both the
// web OAuth flow and the extension access-token verification
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified *bool  `json:"email_verified,omitempty"`
	VerifiedEmail *bool  `json:"verified_email,omitempty"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// GoogleIDFrom prefers the OIDC subject and falls back to the legacy id field
func (u *GoogleUserInfo) GoogleID() string {
	if u.Sub != "" {
		return u.Sub
	}
	return u.ID
}

// Verified reports whether Google marked the email as verified. Absent
// flags count as verified: the v2 userinfo endpoint omits them for some
// account types.
func (u *GoogleUserInfo) Verified() bool {
	if u.EmailVerified != nil && !*u.EmailVerified {
		return false
	}
	if u.VerifiedEmail != nil && !*u.VerifiedEmail {
		return false
	}
	return true
}

// GoogleTokenResponse is the OAuth code-exchange response
type GoogleTokenResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope"`
	TokenType    string `json:"token_type"`
	IDToken      string `json:"id_token"`
}
