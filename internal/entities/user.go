package entities

// User is the authenticated identity mirrored from the auth service.
type User struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Username         string `json:"username,omitempty"`
	SubscriptionTier string `json:"subscription_tier,omitempty"`
	Admin            bool   `json:"is_admin"`
}

// TokenPair holds the access/refresh token pair returned by the auth
// service. The refresh token is the only credential persisted across
// restarts.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Credentials is the login payload sent to the auth service.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
