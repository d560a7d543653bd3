// Package supabase implements the identity.Client interface against the
// Supabase GoTrue admin REST API.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hudsor01/tenantflow/business/sdk/identity"
	"github.com/hudsor01/tenantflow/foundation/logger"
)

// Client provides access to the GoTrue admin endpoints using a service-role
// key.
type Client struct {
	log        *logger.Logger
	baseURL    string
	serviceKey string
	http       *http.Client
}

// New constructs a supabase admin client. The base URL is the project auth
// endpoint, e.g. https://xyz.supabase.co/auth/v1.
func New(log *logger.Logger, baseURL string, serviceKey string) *Client {
	return &Client{
		log:        log,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		serviceKey: serviceKey,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type gotrueUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ListUsers returns one page of provider users.
func (c *Client) ListUsers(ctx context.Context, page int, perPage int) ([]identity.User, error) {
	if perPage > identity.MaxPageSize {
		perPage = identity.MaxPageSize
	}

	q := make(url.Values)
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	var resp struct {
		Users []gotrueUser `json:"users"`
	}

	if err := c.do(ctx, http.MethodGet, "/admin/users?"+q.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]identity.User, len(resp.Users))
	for i, usr := range resp.Users {
		users[i] = identity.User{
			ID:    usr.ID,
			Email: usr.Email,
		}
	}

	return users, nil
}

// InviteUserByEmail sends an invitation email through the provider. The
// metadata travels on the created user and the redirect target lands the
// user on the account-activation page.
func (c *Client) InviteUserByEmail(ctx context.Context, email string, metadata map[string]any, redirectTo string) (identity.User, error) {
	body := struct {
		Email string         `json:"email"`
		Data  map[string]any `json:"data,omitempty"`
	}{
		Email: email,
		Data:  metadata,
	}

	path := "/invite"
	if redirectTo != "" {
		path += "?redirect_to=" + url.QueryEscape(redirectTo)
	}

	var usr gotrueUser
	if err := c.do(ctx, http.MethodPost, path, body, &usr); err != nil {
		return identity.User{}, fmt.Errorf("invite user: %w", err)
	}

	return identity.User{
		ID:    usr.ID,
		Email: usr.Email,
	}, nil
}

// DeleteUser removes a provider user by id.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	if err := c.do(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(userID), nil, nil); err != nil {
		return fmt.Errorf("delete user[%s]: %w", userID, err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method string, path string, body any, v any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1024*1024))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var gtErr struct {
			Message string `json:"msg"`
			Error   string `json:"error_description"`
		}
		_ = json.Unmarshal(data, &gtErr)

		msg := gtErr.Message
		if msg == "" {
			msg = gtErr.Error
		}

		// The provider reports an invite against an existing account with
		// a 422. This is the race-condition backstop for the upfront
		// existence check.
		if resp.StatusCode == http.StatusUnprocessableEntity && strings.Contains(msg, "already") {
			return identity.ErrEmailExists
		}

		if resp.StatusCode == http.StatusNotFound {
			return identity.ErrNotFound
		}

		return fmt.Errorf("provider status %d: %s", resp.StatusCode, msg)
	}

	if v == nil {
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
