// Package auth implements the gateway between the dashboard and the
// remote authentication service: a thin HTTP client, the in-process
// session mirror, and the login/logout/refresh operations that keep the
// two consistent.
package auth

//go:generate mockgen -destination=mock/mock_client.go -package=authmock github.com/fennwald/tracker-api/internal/auth Client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fennwald/tracker-api/internal/entities"
)

// LoginResult carries the identity and token pair returned by the auth
// service on a successful login or registration.
type LoginResult struct {
	User   *entities.User      `json:"user"`
	Tokens *entities.TokenPair `json:"tokens"`
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Client is the remote auth service boundary. Calls are opaque network
// operations with success/failure outcomes only.
type Client interface {
	Login(ctx context.Context, creds entities.Credentials) (*LoginResult, error)
	Register(ctx context.Context, req RegisterRequest) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*entities.TokenPair, error)
	Logout(ctx context.Context, accessToken string) error
}

// HTTPError is an error response from the auth service.
type HTTPError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an HTTPError with the given status.
func IsStatus(err error, status int) bool {
	he, ok := err.(*HTTPError)
	return ok && he.StatusCode == status
}

// HTTPClient is the HTTP implementation of Client.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTP creates an auth client against the given base URL.
func NewHTTP(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Login exchanges credentials for an identity and token pair.
func (c *HTTPClient) Login(ctx context.Context, creds entities.Credentials) (*LoginResult, error) {
	var result LoginResult
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login", "", creds, &result); err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}
	return &result, nil
}

// Register creates an account and returns the same shape as Login.
func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	var result LoginResult
	if err := c.doRequest(ctx, http.MethodPost, "/auth/register", "", req, &result); err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}
	return &result, nil
}

// Refresh exchanges a refresh token for a new token pair.
func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (*entities.TokenPair, error) {
	var pair entities.TokenPair
	body := map[string]string{"refresh_token": refreshToken}
	if err := c.doRequest(ctx, http.MethodPost, "/auth/refresh", "", body, &pair); err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return &pair, nil
}

// Logout invalidates the session server-side.
func (c *HTTPClient) Logout(ctx context.Context, accessToken string) error {
	if err := c.doRequest(ctx, http.MethodPost, "/auth/logout", accessToken, nil, nil); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}
	return nil
}

func (c *HTTPClient) doRequest(ctx context.Context, method, path, bearer string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
