package hypixel

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

	"github.com/lutefd/skyblock-facade/internal/domain/skyblock"
)

var (
	ErrPlayerNotFound = errors.New("hypixel: player not found")
	ErrNoProfiles     = errors.New("hypixel: player has no skyblock profiles")
	ErrInvalidKey     = errors.New("hypixel: invalid api key")
	ErrUpstream       = errors.New("hypixel: upstream request failed")
)

const DefaultBaseURL = "https://api.hypixel.net"

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(baseURL, userAgent string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPlayer loads the account document and extracts the fields used next
// to profiles.
func (c *Client) FetchPlayer(ctx context.Context, apiKey, playerUUID string) (skyblock.Player, error) {
	body, err := c.get(ctx, apiKey, "/player", playerUUID)
	if err != nil {
		return skyblock.Player{}, err
	}
	return ParsePlayer(body)
}

type profilesResponse struct {
	Success  bool                `json:"success"`
	Profiles *[]skyblock.Profile `json:"profiles"`
}

func (c *Client) FetchProfiles(ctx context.Context, apiKey, playerUUID string) ([]skyblock.Profile, error) {
	body, err := c.get(ctx, apiKey, "/skyblock/profiles", playerUUID)
	if err != nil {
		return nil, err
	}
	return ParseProfiles(body)
}

// ParseProfiles decodes a /skyblock/profiles response. A null or empty
// profile list reports ErrNoProfiles.
func ParseProfiles(body []byte) ([]skyblock.Profile, error) {
	var resp profilesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode profiles: %w", ErrUpstream, err)
	}
	if resp.Profiles == nil || len(*resp.Profiles) == 0 {
		return nil, ErrNoProfiles
	}
	return *resp.Profiles, nil
}

func (c *Client) get(ctx context.Context, apiKey, path, playerUUID string) ([]byte, error) {
	endpoint := c.baseURL + path + "?" + url.Values{"uuid": {playerUUID}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("API-Key", apiKey)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUpstream, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidKey
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("%w: status %d for %s: %s", ErrUpstream, resp.StatusCode, path, strings.TrimSpace(string(b)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrUpstream, path, err)
	}
	return body, nil
}
