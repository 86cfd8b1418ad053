package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"horatime-api/internal/timezone"
)

const (
	DefaultBaseURL = "http://localhost:8080"
	DefaultTimeout = 5 * time.Second

	userAgent = "horatime-client/1.0"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

// Client talks to a HoraTime API server.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

// Timezone fetches the current time for location. An empty location returns
// an ERROR response without contacting the server. 4xx bodies that decode as a
// response are returned as such with a nil error.
func (c *Client) Timezone(ctx context.Context, location string) (timezone.Response, error) {
	if strings.TrimSpace(location) == "" {
		return timezone.ErrorResponse(timezone.MessageEmptyLocation), nil
	}

	res, err := c.get(ctx, "/api/timezone?location="+url.QueryEscape(location), "application/json")
	if err != nil {
		return timezone.Response{}, err
	}
	defer res.Body.Close()

	var payload timezone.Response
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		if res.StatusCode >= 300 {
			return timezone.Response{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
		}
		return timezone.Response{}, fmt.Errorf("decode timezone response: %w", err)
	}
	if res.StatusCode >= 500 || payload.Status == "" {
		return payload, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}
	return payload, nil
}

// Healthy reports whether the health endpoint answered with a body.
func (c *Client) Healthy(ctx context.Context) bool {
	body, err := c.text(ctx, "/api/timezone/health")
	return err == nil && body != ""
}

func (c *Client) Info(ctx context.Context) (string, error) {
	return c.text(ctx, "/api/timezone/info")
}

func (c *Client) text(ctx context.Context, path string) (string, error) {
	res, err := c.get(ctx, path, "text/plain")
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, path, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)
	return c.http.Do(req)
}
