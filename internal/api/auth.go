package api

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the signed-in account as the backend reports it.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Verified bool   `json:"verified"`
}

// Token is the backend's authentication response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// SignupInput is the account-creation payload.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // "fresher" or "senior"
}

// loginInput is the credentials payload for Login.
type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup creates an account and returns its session token. The returned
// token is installed on the client.
func (c *Client) Signup(ctx context.Context, in SignupInput) (*Token, error) {
	var tok Token
	if err := c.do(ctx, http.MethodPost, "/auth/signup", in, &tok); err != nil {
		return nil, err
	}
	c.SetToken(tok.AccessToken)
	return &tok, nil
}

// Login exchanges credentials for a session token and installs it on
// the client.
func (c *Client) Login(ctx context.Context, email, password string) (*Token, error) {
	var tok Token
	in := loginInput{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &tok); err != nil {
		return nil, err
	}
	c.SetToken(tok.AccessToken)
	return &tok, nil
}

// Me returns the account behind the current token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// TokenExpired reports whether a stored JWT has passed its expiry claim.
// The signature is not verified here; the backend still authenticates
// every call. This only avoids starting the UI with a token the backend
// will certainly reject.
func TokenExpired(token string, now time.Time) bool {
	if token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}
