package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignInStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/auth/signin", r.URL.Path)

		var req SignInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)
		assert.Equal(t, "hunter2", req.Password)

		json.NewEncoder(w).Encode(map[string]any{"ok": 1, "token": "tok-1"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	token, err := c.SignIn(context.Background(), "alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, "tok-1", c.Token())
}

func TestSignInNotOk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"ok": 0})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.SignIn(context.Background(), "a", "b")
	require.Error(t, err)
}

func TestMeSendsAuthHeadersAndRotatesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/me", r.URL.Path)
		assert.Equal(t, "tok-1", r.Header.Get("X-Token"))

		w.Header().Set("X-Token", "tok-2")
		json.NewEncoder(w).Encode(map[string]any{
			"ok": 1, "_id": "u1", "username": "alice", "password": true,
			"cpu": 100, "gcl": 12345678, "credits": 9000.5,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("tok-1")

	info, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", info.UserID)
	assert.Equal(t, "alice", info.Username)
	assert.True(t, info.HasPassword)
	assert.Equal(t, 100, info.CPU)
	assert.Equal(t, uint64(12345678), info.GCLPoints)
	assert.Equal(t, 9000.5, info.Credits)

	// The rotated token replaces the old one.
	assert.Equal(t, "tok-2", c.Token())
}

func TestRoomTerrain(t *testing.T) {
	grid := strings.Repeat("0", 2499) + "1"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/game/room-terrain", r.URL.Path)
		assert.Equal(t, "E0N0", r.URL.Query().Get("room"))
		assert.Equal(t, "shard0", r.URL.Query().Get("shard"))
		assert.Equal(t, "1", r.URL.Query().Get("encoded"))

		json.NewEncoder(w).Encode(map[string]any{
			"ok": 1,
			"terrain": []map[string]any{
				{"room": "E0N0", "terrain": grid},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	terrain, err := c.RoomTerrain(context.Background(), "shard0", "E0N0")
	require.NoError(t, err)
	assert.Equal(t, "E0N0", terrain.RoomName)
	require.Len(t, terrain.Terrain, 50)
	assert.Equal(t, TerrainPlains, terrain.Terrain[0][0])
	assert.Equal(t, TerrainWall, terrain.Terrain[49][49])
}

func TestRoomTerrainWrongLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"ok":      1,
			"terrain": []map[string]any{{"room": "E0N0", "terrain": "000"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.RoomTerrain(context.Background(), "", "E0N0")
	require.Error(t, err)
}

func TestRoomStatusNonexistent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"ok": 1})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	status, err := c.RoomStatus(context.Background(), "", "Z99X99")
	require.NoError(t, err)
	assert.Empty(t, status.RoomName)
}

func TestRoomStatusNoviceTimestampFormats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"ok": 1,
			"room": map[string]any{
				"_id": "E4S61", "status": "normal",
				"novice":   1500000000000,
				"openTime": "1490000000000",
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	status, err := c.RoomStatus(context.Background(), "shard0", "E4S61")
	require.NoError(t, err)
	assert.Equal(t, "E4S61", status.RoomName)
	assert.Equal(t, "normal", status.Status)
	assert.Equal(t, int64(1500000000000), status.NoviceEnd)
	assert.Equal(t, int64(1490000000000), status.OpenTime)
}

func TestLeaderboard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/leaderboard/seasons":
			json.NewEncoder(w).Encode(map[string]any{
				"ok": 1,
				"seasons": []map[string]any{
					{"_id": "2026-08", "name": "August 2026", "date": "2026-08-31T00:00:00.000Z"},
				},
			})
		case "/leaderboard/list":
			assert.Equal(t, "world", r.URL.Query().Get("mode"))
			assert.Equal(t, "2026-08", r.URL.Query().Get("season"))
			json.NewEncoder(w).Encode(map[string]any{
				"ok": 1, "count": 12000,
				"list": []map[string]any{
					{"rank": 0, "score": 999999, "season": "2026-08", "user": "u1"},
				},
				"users": map[string]any{
					"u1": map[string]any{"_id": "u1", "username": "alice", "gcl": 55555},
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	seasons, err := c.LeaderboardSeasons(context.Background())
	require.NoError(t, err)
	require.Len(t, seasons, 1)
	assert.Equal(t, "2026-08", seasons[0].SeasonID)

	page, err := c.LeaderboardPage(context.Background(), LeaderboardGlobalControl, seasons[0].SeasonID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(12000), page.TotalCount)
	require.Len(t, page.Users, 1)
	assert.Equal(t, "alice", page.Users[0].Username)
	assert.Equal(t, uint64(999999), page.Users[0].Score)
	assert.Equal(t, uint64(55555), page.Users[0].GCLPoints)
}

func TestErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"error": "unauthorized"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Me(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}
