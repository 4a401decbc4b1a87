// Package syncclient talks to a dayma sync server over its HTTP API.
package syncclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/HasanAboShally/dayma/internal/core/domain"
)

var (
	ErrNoRemoteSnapshot = errors.New("no snapshot on the server yet")
	ErrSeqConflict      = errors.New("a newer snapshot exists on the server")
	ErrBadCredentials   = errors.New("invalid email or password")
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// RemoteSnapshot mirrors the server's snapshot resource.
type RemoteSnapshot struct {
	ID             string          `json:"id"`
	DeviceID       string          `json:"device_id"`
	Seq            int             `json:"seq"`
	Payload        json.RawMessage `json:"payload"`
	SchemaVersion  int             `json:"schema_version"`
	CurrentStreak  int             `json:"current_streak"`
	LongestStreak  int             `json:"longest_streak"`
	TotalCompleted int             `json:"total_completed"`
	CreatedAt      time.Time       `json:"created_at"`
}

// State decodes the remote payload into a local document.
func (r *RemoteSnapshot) State() *domain.AppState {
	return domain.Import(string(r.Payload))
}

func (c *Client) Register(ctx context.Context, email, password string) error {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})

	resp, err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return c.apiError(resp)
	}
	return nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})

	resp, err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrBadCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return "", c.apiError(resp)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("sync client: failed to decode login response: %w", err)
	}
	return out.Token, nil
}

// Push uploads a document as the next snapshot for this user.
func (c *Client) Push(ctx context.Context, deviceID string, seq int, payload []byte) (*RemoteSnapshot, error) {
	body, err := json.Marshal(map[string]interface{}{
		"device_id": deviceID,
		"seq":       seq,
		"payload":   json.RawMessage(payload),
	})
	if err != nil {
		return nil, fmt.Errorf("sync client: failed to encode push body: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/v1/sync/push", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
	case http.StatusConflict:
		return nil, ErrSeqConflict
	default:
		return nil, c.apiError(resp)
	}

	var out RemoteSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("sync client: failed to decode push response: %w", err)
	}
	return &out, nil
}

// Pull fetches the newest snapshot, or ErrNoRemoteSnapshot when the user has
// never pushed.
func (c *Client) Pull(ctx context.Context) (*RemoteSnapshot, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/sync/pull", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrNoRemoteSnapshot
	default:
		return nil, c.apiError(resp)
	}

	var out RemoteSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("sync client: failed to decode pull response: %w", err)
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("sync client: failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sync client: request failed: %w", err)
	}
	return resp, nil
}

func (c *Client) apiError(resp *http.Response) error {
	var out struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Error == "" {
		return fmt.Errorf("sync client: server returned %s", resp.Status)
	}
	if out.Message != "" {
		return fmt.Errorf("sync client: %s: %s", out.Error, out.Message)
	}
	return fmt.Errorf("sync client: %s", out.Error)
}
