// Package rest provides access to the Screeps HTTP API: credential
// sign-in, account info, room terrain and status, and leaderboards.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the official server's API root.
const DefaultBaseURL = "https://screeps.com/api"

// Client provides REST API access to a Screeps server.
type Client struct {
	baseURL    string
	token      string
	username   string
	httpClient *http.Client
}

// NewClient creates a new REST API client.
// baseURL should be the API root, e.g. "https://screeps.com/api".
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetHTTPClient allows setting a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	if client != nil {
		c.httpClient = client
	}
}

// SetToken sets the auth token for authenticated requests. Tokens obtained
// from SignIn are set automatically.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current auth token. The server rotates tokens on each
// authenticated response, so the value changes over time.
func (c *Client) Token() string {
	return c.token
}

// Authentication endpoints

// SignIn authenticates with email (or username) and password and stores the
// returned token on the client for subsequent calls.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	var resp TokenResponse
	req := SignInRequest{Email: email, Password: password}
	if err := c.post(ctx, "/auth/signin", req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("sign-in response carried no token")
	}
	c.token = resp.Token
	return resp.Token, nil
}

// Me returns the authenticated user's account info.
func (c *Client) Me(ctx context.Context) (*MyInfo, error) {
	var resp MyInfo
	if err := c.get(ctx, "/auth/me", &resp); err != nil {
		return nil, err
	}
	c.username = resp.Username
	return &resp, nil
}

// Game endpoints

// RoomTerrain fetches the 50x50 terrain grid for a room. shard may be empty
// on servers without shards.
func (c *Client) RoomTerrain(ctx context.Context, shard, room string) (*RoomTerrain, error) {
	q := url.Values{"room": {room}, "encoded": {"1"}}
	if shard != "" {
		q.Set("shard", shard)
	}
	var resp terrainResponse
	if err := c.get(ctx, "/game/room-terrain?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if len(resp.Terrain) == 0 {
		return nil, fmt.Errorf("terrain response carried no terrain data")
	}
	inner := resp.Terrain[0]
	if len(inner.Terrain) != 2500 {
		return nil, fmt.Errorf("expected a 2500 byte terrain string, got %d bytes", len(inner.Terrain))
	}
	grid := make([][]TerrainType, 50)
	for y := range grid {
		row := make([]TerrainType, 50)
		for x := range row {
			switch inner.Terrain[y*50+x] {
			case '0':
				row[x] = TerrainPlains
			case '1':
				row[x] = TerrainWall
			case '2':
				row[x] = TerrainSwamp
			case '3':
				row[x] = TerrainSwampyWall
			default:
				return nil, fmt.Errorf("unexpected terrain byte %q at (%d,%d)", inner.Terrain[y*50+x], x, y)
			}
		}
		grid[y] = row
	}
	return &RoomTerrain{RoomName: inner.Room, Terrain: grid}, nil
}

// RoomStatus fetches a room's status. A room that does not exist yields a
// RoomStatus with an empty RoomName, not an error.
func (c *Client) RoomStatus(ctx context.Context, shard, room string) (*RoomStatus, error) {
	q := url.Values{"room": {room}}
	if shard != "" {
		q.Set("shard", shard)
	}
	var resp roomStatusResponse
	if err := c.get(ctx, "/game/room-status?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if resp.Room == nil {
		return &RoomStatus{}, nil
	}
	return &RoomStatus{
		RoomName:  resp.Room.ID,
		Status:    resp.Room.Status,
		NoviceEnd: asTimestamp(resp.Room.Novice),
		OpenTime:  asTimestamp(resp.Room.OpenTime),
	}, nil
}

// Leaderboard endpoints

// LeaderboardSeasons lists all completed leaderboard seasons.
func (c *Client) LeaderboardSeasons(ctx context.Context) ([]LeaderboardSeason, error) {
	var resp seasonListResponse
	if err := c.get(ctx, "/leaderboard/seasons", &resp); err != nil {
		return nil, err
	}
	seasons := make([]LeaderboardSeason, 0, len(resp.Seasons))
	for _, s := range resp.Seasons {
		seasons = append(seasons, LeaderboardSeason{
			SeasonID: s.ID,
			Name:     s.Name,
			EndDate:  s.Date,
		})
	}
	return seasons, nil
}

// LeaderboardPage fetches one page of a season's ranking.
// limit: number of rows (max 20). offset: zero-based row offset.
func (c *Client) LeaderboardPage(ctx context.Context, kind LeaderboardType, season string, limit, offset int) (*LeaderboardPage, error) {
	q := url.Values{
		"mode":   {string(kind)},
		"season": {season},
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(offset)},
	}
	var resp leaderboardListResponse
	if err := c.get(ctx, "/leaderboard/list?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	page := &LeaderboardPage{TotalCount: resp.Count}
	for _, row := range resp.List {
		user := RankedUser{
			Rank:     row.Rank,
			Score:    row.Score,
			SeasonID: row.Season,
			UserID:   row.User,
		}
		if info, ok := resp.Users[row.User]; ok {
			user.Username = info.Username
			user.GCLPoints = info.GCL
			user.Badge = info.Badge
		}
		page.Users = append(page.Users, user)
	}
	return page, nil
}

// Helper methods

func (c *Client) post(ctx context.Context, path string, body, dest any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, dest)
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, dest)
}

func (c *Client) do(req *http.Request, dest any) error {
	if c.token != "" {
		req.Header.Set("X-Token", c.token)
		req.Header.Set("X-Username", c.username)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	// The server rotates the token on every authenticated response.
	if refreshed := resp.Header.Get("X-Token"); refreshed != "" {
		c.token = refreshed
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("api error (status %d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("http error: %s (status %d)", string(body), resp.StatusCode)
	}

	if dest != nil {
		if err := json.Unmarshal(body, dest); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	// Every success body carries an ok flag alongside its payload.
	var envelope struct {
		OK int `json:"ok"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.OK != 1 {
		return fmt.Errorf("api response not ok: %d", envelope.OK)
	}

	return nil
}

// asTimestamp reads a millisecond timestamp that the server encodes as
// either a JSON number or a numeric string.
func asTimestamp(v any) int64 {
	switch t := v.(type) {
	case float64:
		return int64(t)
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
