package room

// ObjectKind is the wire value of an object's "type" field.
type ObjectKind string

const (
	KindSpawn            ObjectKind = "spawn"
	KindExtension        ObjectKind = "extension"
	KindExtractor        ObjectKind = "extractor"
	KindWall             ObjectKind = "constructedWall"
	KindRoad             ObjectKind = "road"
	KindRampart          ObjectKind = "rampart"
	KindKeeperLair       ObjectKind = "keeperLair"
	KindController       ObjectKind = "controller"
	KindPortal           ObjectKind = "portal"
	KindLink             ObjectKind = "link"
	KindStorage          ObjectKind = "storage"
	KindTower            ObjectKind = "tower"
	KindObserver         ObjectKind = "observer"
	KindPowerBank        ObjectKind = "powerBank"
	KindPowerSpawn       ObjectKind = "powerSpawn"
	KindLab              ObjectKind = "lab"
	KindTerminal         ObjectKind = "terminal"
	KindContainer        ObjectKind = "container"
	KindNuker            ObjectKind = "nuker"
	KindCreep            ObjectKind = "creep"
	KindSource           ObjectKind = "source"
	KindMineral          ObjectKind = "mineral"
	KindResource         ObjectKind = "energy"
	KindTombstone        ObjectKind = "tombstone"
	KindConstructionSite ObjectKind = "constructionSite"
)

// Object is a decoded room object. Concrete types carry the fields of their
// wire variant; anything the variant does not declare lands in Overflow.
type Object interface {
	// ObjectID returns the object's unique id, taken from its key in the
	// room document's objects map.
	ObjectID() string
	// Kind returns the wire type tag.
	Kind() ObjectKind
	// Position returns the object's x,y within its room.
	Position() (x, y int)
	// RoomName returns the room the object sits in.
	RoomName() string
	// Overflow returns fields present on the wire that the variant does
	// not declare. Nil when every field was recognized.
	Overflow() map[string]any
}

// ObjectInfo holds the identity fields every room object carries.
type ObjectInfo struct {
	ID    string
	Room  string
	X     int
	Y     int
	Extra map[string]any
}

func (o ObjectInfo) ObjectID() string         { return o.ID }
func (o ObjectInfo) Position() (int, int)     { return o.X, o.Y }
func (o ObjectInfo) RoomName() string         { return o.Room }
func (o ObjectInfo) Overflow() map[string]any { return o.Extra }

// Structure holds the hit-point fields shared by damageable structures.
type Structure struct {
	Hits    int
	HitsMax int
}

// OwnedStructure extends Structure with ownership fields.
type OwnedStructure struct {
	Structure
	User               string
	Disabled           bool
	NotifyWhenAttacked bool
}

// Store maps resource codes to held amounts. Codes with zero or absent
// amounts are omitted.
type Store map[string]int

// Energy returns the stored energy amount.
func (s Store) Energy() int { return s["energy"] }

// Total returns the sum of all stored resources.
func (s Store) Total() int {
	total := 0
	for _, amount := range s {
		total += amount
	}
	return total
}

// resourceCodes lists every resource key a store-bearing object can carry
// as a top-level field on the wire.
var resourceCodes = []string{
	"energy", "power", "ops",
	"H", "O", "U", "L", "K", "Z", "X", "G",
	"OH", "ZK", "UL",
	"UH", "UO", "KH", "KO", "LH", "LO", "ZH", "ZO", "GH", "GO",
	"UH2O", "UHO2", "KH2O", "KHO2", "LH2O", "LHO2", "ZH2O", "ZHO2",
	"GH2O", "GHO2",
	"XUH2O", "XUHO2", "XKH2O", "XKHO2", "XLH2O", "XLHO2", "XZH2O",
	"XZHO2", "XGH2O", "XGHO2",
}

// UnknownObject preserves an object whose type tag the decoder does not
// recognize. All fields beyond the identity ones stay in Overflow.
type UnknownObject struct {
	ObjectInfo
	Type ObjectKind
}

func (o *UnknownObject) Kind() ObjectKind { return o.Type }

type decodeFunc func(r *fieldReader) Object

var decoders = map[ObjectKind]decodeFunc{
	KindSpawn:            decodeSpawn,
	KindExtension:        decodeExtension,
	KindExtractor:        decodeExtractor,
	KindWall:             decodeWall,
	KindRoad:             decodeRoad,
	KindRampart:          decodeRampart,
	KindKeeperLair:       decodeKeeperLair,
	KindController:       decodeController,
	KindPortal:           decodePortal,
	KindLink:             decodeLink,
	KindStorage:          decodeStorage,
	KindTower:            decodeTower,
	KindObserver:         decodeObserver,
	KindPowerBank:        decodePowerBank,
	KindPowerSpawn:       decodePowerSpawn,
	KindLab:              decodeLab,
	KindTerminal:         decodeTerminal,
	KindContainer:        decodeContainer,
	KindNuker:            decodeNuker,
	KindCreep:            decodeCreep,
	KindSource:           decodeSource,
	KindMineral:          decodeMineral,
	KindResource:         decodeResource,
	KindTombstone:        decodeTombstone,
	KindConstructionSite: decodeConstructionSite,
}

// decodeObject turns one entry of the room document's objects map into a
// typed Object. Only a missing or malformed type tag drops the object; any
// other oddity is reported and decoding continues.
func decodeObject(id string, fields map[string]any, report *Report) (Object, bool) {
	r := newFieldReader(id, fields, report)
	v, ok := r.take("type")
	if !ok {
		report.drop(id, "object has no type field")
		return nil, false
	}
	tag, ok := v.(string)
	if !ok {
		report.drop(id, "object type field is not a string")
		return nil, false
	}
	kind := ObjectKind(tag)
	decode, ok := decoders[kind]
	if !ok {
		obj := &UnknownObject{Type: kind}
		obj.ObjectInfo = r.base()
		return obj, true
	}
	return decode(r), true
}
