// Package supabaseauth resolves portal access tokens against the Supabase
// auth API.
package supabaseauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"jastip/internal/core/ports"
	"jastip/internal/pkg/errs"
)

const adminRole = "admin"

// Client resolves bearer tokens via GET /auth/v1/user.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewClient creates an auth client for the given Supabase project.
func NewClient(baseURL, anonKey string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if anonKey == "" {
		return nil, errs.NewValueIsRequiredError("anonKey")
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// userResponse is the subset of the Supabase user payload the portal needs.
type userResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
	AppMetadata struct {
		Roles []string `json:"roles"`
	} `json:"app_metadata"`
}

// Resolve validates the access token and returns the caller's identity.
func (c *Client) Resolve(ctx context.Context, accessToken string) (ports.Identity, error) {
	if accessToken == "" {
		return ports.Identity{}, errs.NewValueIsRequiredError("accessToken")
	}

	request, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil,
	)
	if err != nil {
		return ports.Identity{}, fmt.Errorf("build auth request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+accessToken)
	request.Header.Set("apikey", c.anonKey)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return ports.Identity{}, fmt.Errorf("resolve identity: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return ports.Identity{}, fmt.Errorf(
			"resolve identity: status %d: %s", response.StatusCode, string(excerpt),
		)
	}

	var user userResponse
	if err = json.NewDecoder(response.Body).Decode(&user); err != nil {
		return ports.Identity{}, fmt.Errorf("decode auth response: %w", err)
	}
	if user.ID == "" {
		return ports.Identity{}, errs.NewValueIsRequiredError("user id")
	}

	displayName := user.UserMetadata.FullName
	if displayName == "" {
		displayName = user.Email
	}

	return ports.Identity{
		UserID:      user.ID,
		DisplayName: displayName,
		IsAdmin:     slices.Contains(user.AppMetadata.Roles, adminRole),
	}, nil
}
