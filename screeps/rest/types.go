package rest

// Authentication types

// SignInRequest is the request body for credential sign-in. Email accepts
// either the account email or the username.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse contains the auth token returned after a successful sign-in.
type TokenResponse struct {
	OK    int    `json:"ok"`
	Token string `json:"token"`
}

// Badge describes a user's profile badge.
type Badge struct {
	Type   any    `json:"type"`
	Color1 any    `json:"color1"`
	Color2 any    `json:"color2"`
	Color3 any    `json:"color3"`
	Param  int    `json:"param"`
	Flip   bool   `json:"flip"`
}

// MyInfo is the authenticated user's account summary.
type MyInfo struct {
	OK          int     `json:"ok"`
	UserID      string  `json:"_id"`
	Username    string  `json:"username"`
	HasPassword bool    `json:"password"`
	CPU         int     `json:"cpu"`
	GCLPoints   uint64  `json:"gcl"`
	Credits     float64 `json:"credits"`
	Badge       Badge   `json:"badge"`
}

// Terrain types

// TerrainType is the terrain of one room square.
type TerrainType int

const (
	TerrainPlains TerrainType = iota
	TerrainSwamp
	TerrainWall
	TerrainSwampyWall
)

func (t TerrainType) String() string {
	switch t {
	case TerrainPlains:
		return "plains"
	case TerrainSwamp:
		return "swamp"
	case TerrainWall:
		return "wall"
	case TerrainSwampyWall:
		return "swampy wall"
	default:
		return "unknown"
	}
}

// RoomTerrain is a room's 50x50 terrain grid, indexed [y][x].
type RoomTerrain struct {
	RoomName string
	Terrain  [][]TerrainType
}

type terrainResponse struct {
	OK      int `json:"ok"`
	Terrain []struct {
		Room    string `json:"room"`
		Terrain string `json:"terrain"`
	} `json:"terrain"`
}

// Room status types

// RoomStatus describes whether a room exists and its novice-area timing.
type RoomStatus struct {
	// RoomName is empty when the room does not exist.
	RoomName string
	Status   string
	// NoviceEnd and OpenTime are millisecond timestamps, zero when unset.
	NoviceEnd int64
	OpenTime  int64
}

type roomStatusResponse struct {
	OK   int `json:"ok"`
	Room *struct {
		ID     string `json:"_id"`
		Status string `json:"status"`
		// The server returns these as either a number or a numeric
		// string depending on the room's history.
		Novice   any `json:"novice"`
		OpenTime any `json:"openTime"`
	} `json:"room"`
}

// Leaderboard types

// LeaderboardType selects which season ranking to query.
type LeaderboardType string

const (
	// LeaderboardGlobalControl ranks by global control points earned.
	LeaderboardGlobalControl LeaderboardType = "world"
	// LeaderboardPowerProcessed ranks by power processed.
	LeaderboardPowerProcessed LeaderboardType = "power"
)

// LeaderboardSeason is one completed ranking season.
type LeaderboardSeason struct {
	SeasonID string
	Name     string
	EndDate  string
}

type seasonListResponse struct {
	OK      int `json:"ok"`
	Seasons []struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
		Date string `json:"date"`
	} `json:"seasons"`
}

// RankedUser is one row of a leaderboard page.
type RankedUser struct {
	// Rank is zero-based: the top user has rank 0.
	Rank      uint32
	Score     uint64
	SeasonID  string
	UserID    string
	Username  string
	GCLPoints uint64
	Badge     Badge
}

// LeaderboardPage is one page of a season's ranking.
type LeaderboardPage struct {
	TotalCount uint64
	Users      []RankedUser
}

type leaderboardListResponse struct {
	OK    int    `json:"ok"`
	Count uint64 `json:"count"`
	List  []struct {
		Rank   uint32 `json:"rank"`
		Score  uint64 `json:"score"`
		Season string `json:"season"`
		User   string `json:"user"`
	} `json:"list"`
	Users map[string]struct {
		ID       string `json:"_id"`
		Username string `json:"username"`
		GCL      uint64 `json:"gcl"`
		Badge    Badge  `json:"badge"`
	} `json:"users"`
}

type errorResponse struct {
	Error string `json:"error"`
}
