package auth

import "context"

// AuthService defines admin panel authentication.
type AuthService interface {
	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Me returns the account behind the authenticated request.
	Me(ctx context.Context) (UserResponse, error)
}
