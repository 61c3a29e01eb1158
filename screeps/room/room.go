package room

import (
	"strconv"
	"strings"
)

// FlagColor is one of the ten flag colors.
type FlagColor int

const (
	ColorRed FlagColor = iota + 1
	ColorPurple
	ColorBlue
	ColorCyan
	ColorGreen
	ColorYellow
	ColorOrange
	ColorBrown
	ColorGrey
	ColorWhite
)

func (c FlagColor) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorPurple:
		return "purple"
	case ColorBlue:
		return "blue"
	case ColorCyan:
		return "cyan"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorOrange:
		return "orange"
	case ColorBrown:
		return "brown"
	case ColorGrey:
		return "grey"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}

// Flag is one of the viewing user's flags in the room.
type Flag struct {
	Name           string
	PrimaryColor   FlagColor
	SecondaryColor FlagColor
	X              int
	Y              int
}

// User is a player referenced by the room's objects.
type User struct {
	ID       string
	Username string
	Badge    map[string]any
}

// Snapshot is the typed view of one room document.
type Snapshot struct {
	GameTime int
	Mode     string
	// Objects maps object id to its decoded form.
	Objects map[string]Object
	Users   map[string]User
	// Flags is nil when the document carried no flag data and empty when
	// it carried an empty string.
	Flags  []Flag
	Visual string
}

// Decode builds a typed Snapshot from a merged room document. Malformed
// entries are recorded in the Report; they never fail the whole room.
func Decode(doc map[string]any) (*Snapshot, *Report) {
	report := &Report{}
	snap := &Snapshot{Objects: make(map[string]Object)}

	if v, ok := doc["gameTime"]; ok {
		if n, ok := asInt(v); ok {
			snap.GameTime = n
		} else {
			report.ignore("", "gameTime", ReasonTypeMismatch)
		}
	}
	if v, ok := doc["info"]; ok {
		if m, ok := v.(map[string]any); ok {
			if mode, ok := m["mode"].(string); ok {
				snap.Mode = mode
			}
		} else {
			report.ignore("", "info", ReasonTypeMismatch)
		}
	}
	if v, ok := doc["visual"]; ok {
		if s, ok := v.(string); ok {
			snap.Visual = s
		} else {
			report.ignore("", "visual", ReasonTypeMismatch)
		}
	}

	if v, ok := doc["objects"]; ok {
		m, ok := v.(map[string]any)
		if !ok {
			report.ignore("", "objects", ReasonTypeMismatch)
		} else {
			for id, raw := range m {
				fields, ok := raw.(map[string]any)
				if !ok {
					report.drop(id, "object is not a JSON object")
					continue
				}
				obj, ok := decodeObject(id, fields, report)
				if ok {
					snap.Objects[id] = obj
				}
			}
		}
	}

	if v, ok := doc["users"]; ok {
		m, ok := v.(map[string]any)
		if !ok {
			report.ignore("", "users", ReasonTypeMismatch)
		} else {
			snap.Users = make(map[string]User, len(m))
			for id, raw := range m {
				fields, ok := raw.(map[string]any)
				if !ok {
					report.drop(id, "user is not a JSON object")
					continue
				}
				u := User{ID: id}
				if name, ok := fields["username"].(string); ok {
					u.Username = name
				}
				if badge, ok := fields["badge"].(map[string]any); ok {
					u.Badge = cloneMap(badge)
				}
				snap.Users[id] = u
			}
		}
	}

	if v, ok := doc["flags"]; ok {
		s, ok := v.(string)
		if !ok {
			report.ignore("", "flags", ReasonTypeMismatch)
		} else {
			snap.Flags = parseFlags(s, report)
		}
	}

	return snap, report
}

// parseFlags parses the packed flag string: flags are separated by "|",
// fields within a flag by "~", in the order name, primary color,
// secondary color, x, y.
func parseFlags(s string, report *Report) []Flag {
	flags := []Flag{}
	if s == "" {
		return flags
	}
	for _, entry := range strings.Split(s, "|") {
		parts := strings.Split(entry, "~")
		if len(parts) != 5 {
			report.drop(entry, "flag entry does not have 5 fields")
			continue
		}
		nums := make([]int, 4)
		bad := false
		for i, part := range parts[1:] {
			n, err := strconv.Atoi(part)
			if err != nil {
				report.drop(parts[0], "flag field is not a number")
				bad = true
				break
			}
			nums[i] = n
		}
		if bad {
			continue
		}
		flags = append(flags, Flag{
			Name:           parts[0],
			PrimaryColor:   FlagColor(nums[0]),
			SecondaryColor: FlagColor(nums[1]),
			X:              nums[2],
			Y:              nums[3],
		})
	}
	return flags
}
