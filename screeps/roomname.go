package screeps

import (
	"fmt"
	"strconv"
	"strings"
)

// RoomName is a parsed room coordinate pair.
//
// X of 0 represents E0 and positive values E(x); -1 represents W0 and
// negative values W(-x-1). Y works the same way with N and S.
type RoomName struct {
	X int
	Y int
}

// ParseRoomName parses a name in the game's `(E|W)[0-9]+(N|S)[0-9]+` format.
func ParseRoomName(name string) (RoomName, error) {
	orig := name
	fail := func() (RoomName, error) {
		return RoomName{}, NewError(ErrorDecode, fmt.Sprintf("malformed room name %q", orig))
	}

	if name == "" {
		return fail()
	}
	east := name[0] == 'E' || name[0] == 'e'
	if !east && name[0] != 'W' && name[0] != 'w' {
		return fail()
	}
	name = name[1:]

	split := strings.IndexAny(name, "NSns")
	if split < 1 {
		return fail()
	}
	north := name[split] == 'N' || name[split] == 'n'

	xPos, err := strconv.Atoi(name[:split])
	if err != nil || xPos < 0 {
		return fail()
	}
	yPos, err := strconv.Atoi(name[split+1:])
	if err != nil || yPos < 0 {
		return fail()
	}

	return RoomNameFromPos(east, north, xPos, yPos), nil
}

// RoomNameFromPos builds a RoomName from quadrant flags and positions.
func RoomNameFromPos(east, north bool, xPos, yPos int) RoomName {
	n := RoomName{X: xPos, Y: yPos}
	if !east {
		n.X = -xPos - 1
	}
	if !north {
		n.Y = -yPos - 1
	}
	return n
}

// String formats the room name the way the game expects. Parsing the result
// yields an equal RoomName.
func (n RoomName) String() string {
	var b strings.Builder
	if n.X >= 0 {
		fmt.Fprintf(&b, "E%d", n.X)
	} else {
		fmt.Fprintf(&b, "W%d", -n.X-1)
	}
	if n.Y >= 0 {
		fmt.Fprintf(&b, "N%d", n.Y)
	} else {
		fmt.Fprintf(&b, "S%d", -n.Y-1)
	}
	return b.String()
}

// Add offsets the room name by an (x, y) coordinate pair.
func (n RoomName) Add(x, y int) RoomName {
	return RoomName{X: n.X + x, Y: n.Y + y}
}

// Sub returns the coordinate difference between two room names.
func (n RoomName) Sub(other RoomName) (x, y int) {
	return n.X - other.X, n.Y - other.Y
}
