package room

// Spawn is an owned structure that produces creeps.
type Spawn struct {
	ObjectInfo
	OwnedStructure
	Name     string
	Store    Store
	Spawning *SpawningInfo
}

// SpawningInfo describes a creep currently being assembled by a spawn.
type SpawningInfo struct {
	Name      string
	NeedTime  int
	SpawnTime int
}

func (o *Spawn) Kind() ObjectKind { return KindSpawn }

func decodeSpawn(r *fieldReader) Object {
	o := &Spawn{
		OwnedStructure: r.owned(),
		Name:           r.stringOr("name", ""),
		Store:          r.store(),
	}
	if m := r.optObject("spawning"); m != nil {
		sub := newFieldReader(r.id, m, r.report)
		o.Spawning = &SpawningInfo{
			Name:      sub.stringOr("name", ""),
			NeedTime:  sub.optInt("needTime", 0),
			SpawnTime: sub.optInt("spawnTime", 0),
		}
	}
	o.ObjectInfo = r.base()
	return o
}

// Extension is an owned structure that extends spawn energy capacity.
type Extension struct {
	ObjectInfo
	OwnedStructure
	Store Store
}

func (o *Extension) Kind() ObjectKind { return KindExtension }

func decodeExtension(r *fieldReader) Object {
	o := &Extension{
		OwnedStructure: r.owned(),
		Store:          r.store(),
	}
	o.ObjectInfo = r.base()
	return o
}

// Extractor is an owned structure that harvests its room's mineral.
type Extractor struct {
	ObjectInfo
	OwnedStructure
	CooldownTime int
}

func (o *Extractor) Kind() ObjectKind { return KindExtractor }

func decodeExtractor(r *fieldReader) Object {
	o := &Extractor{
		OwnedStructure: r.owned(),
		CooldownTime:   r.optInt("cooldownTime", 0),
	}
	o.ObjectInfo = r.base()
	return o
}

// Wall is an unowned blocking structure.
type Wall struct {
	ObjectInfo
	Structure
}

func (o *Wall) Kind() ObjectKind { return KindWall }

func decodeWall(r *fieldReader) Object {
	o := &Wall{Structure: r.structure()}
	o.ObjectInfo = r.base()
	return o
}

// Road is an unowned structure that reduces creep movement cost.
type Road struct {
	ObjectInfo
	Structure
	NextDecayTime int
}

func (o *Road) Kind() ObjectKind { return KindRoad }

func decodeRoad(r *fieldReader) Object {
	o := &Road{
		Structure:     r.structure(),
		NextDecayTime: r.optInt("nextDecayTime", 0),
	}
	o.ObjectInfo = r.base()
	return o
}

// Rampart is an owned defensive structure creeps can stand on.
type Rampart struct {
	ObjectInfo
	OwnedStructure
	NextDecayTime int
	IsPublic      bool
}

func (o *Rampart) Kind() ObjectKind { return KindRampart }

func decodeRampart(r *fieldReader) Object {
	o := &Rampart{
		OwnedStructure: r.owned(),
		NextDecayTime:  r.optInt("nextDecayTime", 0),
		IsPublic:       r.optBool("isPublic", false),
	}
	o.ObjectInfo = r.base()
	return o
}

// KeeperLair spawns source keeper creeps in keeper rooms.
type KeeperLair struct {
	ObjectInfo
	NextSpawnTime int
}

func (o *KeeperLair) Kind() ObjectKind { return KindKeeperLair }

func decodeKeeperLair(r *fieldReader) Object {
	o := &KeeperLair{NextSpawnTime: r.optInt("nextSpawnTime", 0)}
	o.ObjectInfo = r.base()
	return o
}

// Controller governs room ownership and structure limits.
type Controller struct {
	ObjectInfo
	Structure
	User               string
	Level              int
	Progress           int
	DowngradeTime      int
	SafeMode           int
	SafeModeAvailable  int
	SafeModeCooldown   int
	UpgradeBlocked     int
	ReservationUser    string
	ReservationEndTime int
}

func (o *Controller) Kind() ObjectKind { return KindController }

func decodeController(r *fieldReader) Object {
	o := &Controller{
		Structure:         r.structure(),
		User:              r.optString("user", ""),
		Level:             r.intOr("level", 0),
		Progress:          r.optInt("progress", 0),
		DowngradeTime:     r.optInt("downgradeTime", 0),
		SafeMode:          r.optInt("safeMode", 0),
		SafeModeAvailable: r.optInt("safeModeAvailable", 0),
		SafeModeCooldown:  r.optInt("safeModeCooldown", 0),
		UpgradeBlocked:    r.optInt("upgradeBlocked", 0),
	}
	if m := r.optObject("reservation"); m != nil {
		sub := newFieldReader(r.id, m, r.report)
		o.ReservationUser = sub.stringOr("user", "")
		o.ReservationEndTime = sub.optInt("endTime", 0)
	}
	o.ObjectInfo = r.base()
	return o
}

// Portal teleports creeps to a destination room.
type Portal struct {
	ObjectInfo
	DestinationRoom  string
	DestinationX     int
	DestinationY     int
	DestinationShard string
	UnstableDate     int
	DecayTime        int
}

func (o *Portal) Kind() ObjectKind { return KindPortal }

func decodePortal(r *fieldReader) Object {
	o := &Portal{
		UnstableDate: r.optInt("unstableDate", 0),
		DecayTime:    r.optInt("decayTime", 0),
	}
	if m := r.optObject("destination"); m != nil {
		sub := newFieldReader(r.id, m, r.report)
		o.DestinationRoom = sub.stringOr("room", "")
		o.DestinationX = sub.optInt("x", 0)
		o.DestinationY = sub.optInt("y", 0)
		o.DestinationShard = sub.optString("shard", "")
	}
	o.ObjectInfo = r.base()
	return o
}

// Link is an owned structure that transfers energy at range.
type Link struct {
	ObjectInfo
	OwnedStructure
	Store        Store
	CooldownTime int
}

func (o *Link) Kind() ObjectKind { return KindLink }

func decodeLink(r *fieldReader) Object {
	o := &Link{
		OwnedStructure: r.owned(),
		Store:          r.store(),
		CooldownTime:   r.optInt("cooldown", 0),
	}
	o.ObjectInfo = r.base()
	return o
}

// Storage is an owned bulk resource store.
type Storage struct {
	ObjectInfo
	OwnedStructure
	Store    Store
	Capacity int
}

func (o *Storage) Kind() ObjectKind { return KindStorage }

func decodeStorage(r *fieldReader) Object {
	o := &Storage{
		OwnedStructure: r.owned(),
		Store:          r.store(),
		Capacity:       r.optInt("energyCapacity", 0),
	}
	o.ObjectInfo = r.base()
	return o
}

// Tower is an owned structure that attacks, heals and repairs at range.
type Tower struct {
	ObjectInfo
	OwnedStructure
	Store Store
}

func (o *Tower) Kind() ObjectKind { return KindTower }

func decodeTower(r *fieldReader) Object {
	o := &Tower{
		OwnedStructure: r.owned(),
		Store:          r.store(),
	}
	o.ObjectInfo = r.base()
	return o
}

// Observer is an owned structure that grants vision of remote rooms.
type Observer struct {
	ObjectInfo
	OwnedStructure
	ObserveRoom string
}

func (o *Observer) Kind() ObjectKind { return KindObserver }

func decodeObserver(r *fieldReader) Object {
	o := &Observer{
		OwnedStructure: r.owned(),
		ObserveRoom:    r.optString("observeRoom", ""),
	}
	o.ObjectInfo = r.base()
	return o
}

// PowerBank is an unowned structure holding power to be raided.
type PowerBank struct {
	ObjectInfo
	Structure
	Power     int
	DecayTime int
}

func (o *PowerBank) Kind() ObjectKind { return KindPowerBank }

func decodePowerBank(r *fieldReader) Object {
	o := &PowerBank{
		Structure: r.structure(),
		Power:     r.optInt("power", 0),
		DecayTime: r.optInt("decayTime", 0),
	}
	o.ObjectInfo = r.base()
	return o
}

// PowerSpawn is an owned structure that processes power.
type PowerSpawn struct {
	ObjectInfo
	OwnedStructure
	Store Store
}

func (o *PowerSpawn) Kind() ObjectKind { return KindPowerSpawn }

func decodePowerSpawn(r *fieldReader) Object {
	o := &PowerSpawn{
		OwnedStructure: r.owned(),
		Store:          r.store(),
	}
	o.ObjectInfo = r.base()
	return o
}

// Lab is an owned structure that runs reactions and boosts creeps.
type Lab struct {
	ObjectInfo
	OwnedStructure
	Store        Store
	MineralType  string
	CooldownTime int
}

func (o *Lab) Kind() ObjectKind { return KindLab }

func decodeLab(r *fieldReader) Object {
	o := &Lab{
		OwnedStructure: r.owned(),
		Store:          r.store(),
		MineralType:    r.optString("mineralType", ""),
		CooldownTime:   r.optInt("cooldownTime", 0),
	}
	o.ObjectInfo = r.base()
	return o
}

// Terminal is an owned structure that trades resources across rooms.
type Terminal struct {
	ObjectInfo
	OwnedStructure
	Store        Store
	Capacity     int
	CooldownTime int
}

func (o *Terminal) Kind() ObjectKind { return KindTerminal }

func decodeTerminal(r *fieldReader) Object {
	o := &Terminal{
		OwnedStructure: r.owned(),
		Store:          r.store(),
		Capacity:       r.optInt("energyCapacity", 0),
		CooldownTime:   r.optInt("cooldownTime", 0),
	}
	o.ObjectInfo = r.base()
	return o
}

// Container is an unowned decaying resource store.
type Container struct {
	ObjectInfo
	Structure
	Store         Store
	NextDecayTime int
}

func (o *Container) Kind() ObjectKind { return KindContainer }

func decodeContainer(r *fieldReader) Object {
	o := &Container{
		Structure:     r.structure(),
		Store:         r.store(),
		NextDecayTime: r.optInt("nextDecayTime", 0),
	}
	o.ObjectInfo = r.base()
	return o
}

// Nuker is an owned structure that launches nukes at other rooms.
type Nuker struct {
	ObjectInfo
	OwnedStructure
	Store        Store
	CooldownTime int
}

func (o *Nuker) Kind() ObjectKind { return KindNuker }

func decodeNuker(r *fieldReader) Object {
	o := &Nuker{
		OwnedStructure: r.owned(),
		Store:          r.store(),
		CooldownTime:   r.optInt("cooldownTime", 0),
	}
	o.ObjectInfo = r.base()
	return o
}
