package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fennwald/tracker-api/internal/errors"
)

// Claims is the subset of access-token claims the dashboard reads. The
// client has no signing secret, so the payload is decoded without
// signature verification; the server remains the authority on token
// validity.
type Claims struct {
	Subject   string
	Email     string
	Admin     bool
	ExpiresAt time.Time
}

// ParseClaims decodes the claims of a raw JWT access token.
func ParseClaims(raw string) (*Claims, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.InvalidArgument("unexpected claims type")
	}

	out := &Claims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if admin, ok := claims["admin"].(bool); ok {
		out.Admin = admin
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
