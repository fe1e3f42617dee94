package main

import (
	"context"
	"net/http"
)

// Login exchanges credentials against a server issued session. The
// backend answers with the principal details and the bearer credential
// under the `jwt` field, remapped here to Session.AccessToken.
func (c *BackendClient) Login(ctx context.Context, username, password string) (Session, error) {
	payload := map[string]string{"username": username, "password": password}
	var resp loginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", payload, &resp); err != nil {
		return Session{}, err
	}
	roles := resp.Roles
	if roles == nil {
		roles = []string{}
	}
	return Session{
		ID:          resp.ID,
		Username:    resp.Username,
		Email:       resp.Email,
		Roles:       roles,
		AccessToken: resp.JWT,
	}, nil
}

// Register creates a new account. It does not establish a session.
func (c *BackendClient) Register(ctx context.Context, username, password, email string) error {
	payload := map[string]string{"username": username, "password": password, "email": email}
	return c.doJSON(ctx, http.MethodPost, "/api/users/register", "", payload, nil)
}
