package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/fennwald/tracker-api/internal/entities"
	"github.com/fennwald/tracker-api/internal/errors"
	"github.com/fennwald/tracker-api/internal/pkg/clock"
	"github.com/fennwald/tracker-api/internal/repositories/credentials"
)

// refreshLeeway is how long before access-token expiry a refresh is
// considered due.
const refreshLeeway = 30 * time.Second

// Gateway coordinates the remote auth service, the session mirror, and
// durable refresh-token storage.
type Gateway struct {
	client  Client
	session *Session
	creds   credentials.Repository
	clock   clock.Clock
}

// Config holds the dependencies for the gateway.
type Config struct {
	Client      Client
	Session     *Session
	Credentials credentials.Repository
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.Session == nil {
		return errors.InvalidArgument("session cannot be nil")
	}
	if cfg.Credentials == nil {
		return errors.InvalidArgument("credentials repository cannot be nil")
	}
	return nil
}

// NewGateway creates a gateway with the provided dependencies.
func NewGateway(cfg *Config) (*Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Gateway{
		client:  cfg.Client,
		session: cfg.Session,
		creds:   cfg.Credentials,
		clock:   c,
	}, nil
}

// Session returns the session mirror the gateway writes to.
func (g *Gateway) Session() *Session {
	return g.session
}

// Login authenticates against the remote service. On success the user
// and token pair are mirrored into the session and the refresh token is
// persisted. On failure nothing is mutated and the caller receives a
// generic unauthenticated error; the original cause is logged, not
// propagated.
func (g *Gateway) Login(ctx context.Context, creds entities.Credentials) error {
	out, err := g.client.Login(ctx, creds)
	if err != nil {
		slog.WarnContext(ctx, "login rejected by auth service", "error", err.Error())
		return errors.Unauthenticated("login failed")
	}

	g.session.Set(out.User, out.Tokens)
	g.persistRefreshToken(ctx, out.Tokens)
	return nil
}

// Register creates an account and establishes a session the same way a
// successful login does.
func (g *Gateway) Register(ctx context.Context, req RegisterRequest) error {
	out, err := g.client.Register(ctx, req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnauthenticated, "registration failed")
	}

	g.session.Set(out.User, out.Tokens)
	g.persistRefreshToken(ctx, out.Tokens)
	return nil
}

// Logout clears the session and removes the persisted refresh token.
// No remote endpoint is called.
func (g *Gateway) Logout(ctx context.Context) {
	g.session.Clear()
	if _, err := g.creds.Delete(ctx, credentials.DeleteInput{}); err != nil {
		slog.WarnContext(ctx, "failed to remove persisted refresh token", "error", err.Error())
	}
}

// Refresh exchanges the persisted refresh token for a new pair and
// mirrors it into the session and storage. Any failure, including a
// missing persisted token, forces a local logout; the failure still
// propagates to the caller.
func (g *Gateway) Refresh(ctx context.Context) error {
	stored, err := g.creds.Get(ctx, credentials.GetInput{})
	if err != nil {
		g.forceLogout(ctx)
		return errors.Wrap(err, "refresh token unavailable")
	}

	pair, err := g.client.Refresh(ctx, stored.RefreshToken)
	if err != nil {
		g.forceLogout(ctx)
		return errors.WrapWithCode(err, errors.CodeUnauthenticated, "token refresh failed")
	}

	g.session.SetTokens(pair)
	g.persistRefreshToken(ctx, pair)
	return nil
}

// NeedsRefresh reports whether the session's access token is missing,
// unreadable, or within the refresh leeway of its expiry.
func (g *Gateway) NeedsRefresh() bool {
	tokens := g.session.Tokens()
	if tokens == nil || tokens.AccessToken == "" {
		return false
	}

	claims, err := ParseClaims(tokens.AccessToken)
	if err != nil {
		return true
	}
	if claims.ExpiresAt.IsZero() {
		return false
	}
	return !g.clock.Now().Add(refreshLeeway).Before(claims.ExpiresAt)
}

func (g *Gateway) forceLogout(ctx context.Context) {
	g.session.Clear()
	if _, err := g.creds.Delete(ctx, credentials.DeleteInput{}); err != nil {
		slog.WarnContext(ctx, "failed to remove persisted refresh token", "error", err.Error())
	}
}

// persistRefreshToken mirrors the refresh token to durable storage. A
// storage failure does not undo an already-established session; it is
// logged and the session simply won't survive a restart.
func (g *Gateway) persistRefreshToken(ctx context.Context, tokens *entities.TokenPair) {
	if tokens == nil || tokens.RefreshToken == "" {
		return
	}
	if _, err := g.creds.Put(ctx, credentials.PutInput{RefreshToken: tokens.RefreshToken}); err != nil {
		slog.WarnContext(ctx, "failed to persist refresh token", "error", err.Error())
	}
}
