package skillstacker

import (
	"context"
	"strings"
)

// AuthService handles authentication operations.
type AuthService struct {
	client *Client
}

// loginRequest is the JSON login body. The backend accepts a plain JSON
// credential pair; there is no form-encoded variant on this contract.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates with an email and password and returns the issued
// token together with the account. The email is normalized (trimmed and
// lowercased) before it is sent.
//
// Example:
//
//	auth, err := client.Auth.Login(ctx, "ada@example.com", "secret")
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	req := loginRequest{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: password,
	}

	var resp AuthResponse
	if err := s.client.post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns the issued token together with
// the new account, same shape as Login.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var resp AuthResponse
	if err := s.client.post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the account behind the current bearer token.
func (s *AuthService) Me(ctx context.Context) (*User, error) {
	var resp User
	if err := s.client.get(ctx, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
