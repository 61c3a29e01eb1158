package room

// Source is a harvestable energy deposit.
type Source struct {
	ObjectInfo
	Energy              int
	EnergyCapacity      int
	TicksToRegeneration int
	InvaderHarvested    int
}

func (o *Source) Kind() ObjectKind { return KindSource }

func decodeSource(r *fieldReader) Object {
	o := &Source{
		Energy:              r.optInt("energy", 0),
		EnergyCapacity:      r.optInt("energyCapacity", 0),
		TicksToRegeneration: r.optInt("nextRegenerationTime", 0),
		InvaderHarvested:    r.optInt("invaderHarvested", 0),
	}
	o.ObjectInfo = r.base()
	return o
}

// Mineral is a harvestable mineral deposit.
type Mineral struct {
	ObjectInfo
	MineralType         string
	MineralAmount       int
	Density             int
	TicksToRegeneration int
}

func (o *Mineral) Kind() ObjectKind { return KindMineral }

func decodeMineral(r *fieldReader) Object {
	o := &Mineral{
		MineralType:         r.stringOr("mineralType", ""),
		MineralAmount:       r.optInt("mineralAmount", 0),
		Density:             r.optInt("density", 0),
		TicksToRegeneration: r.optInt("nextRegenerationTime", 0),
	}
	o.ObjectInfo = r.base()
	return o
}

// Resource is a loose pile of a dropped resource.
type Resource struct {
	ObjectInfo
	ResourceType string
	Amount       int
}

func (o *Resource) Kind() ObjectKind { return KindResource }

func decodeResource(r *fieldReader) Object {
	o := &Resource{
		ResourceType: r.optString("resourceType", "energy"),
	}
	o.Amount = r.optInt(o.ResourceType, 0)
	o.ObjectInfo = r.base()
	return o
}

// Tombstone marks where a creep died and holds what it carried.
type Tombstone struct {
	ObjectInfo
	User        string
	CreepID     string
	CreepName   string
	DeathTime   int
	DecayTime   int
	CreepTicks  int
	CreepSaying string
	Store       Store
}

func (o *Tombstone) Kind() ObjectKind { return KindTombstone }

func decodeTombstone(r *fieldReader) Object {
	o := &Tombstone{
		User:        r.stringOr("user", ""),
		CreepID:     r.optString("creepId", ""),
		CreepName:   r.optString("creepName", ""),
		DeathTime:   r.optInt("deathTime", 0),
		DecayTime:   r.optInt("decayTime", 0),
		CreepTicks:  r.optInt("creepTicksToLive", 0),
		CreepSaying: r.optString("creepSaying", ""),
		Store:       r.store(),
	}
	o.ObjectInfo = r.base()
	return o
}

// ConstructionSite is a structure being built.
type ConstructionSite struct {
	ObjectInfo
	User          string
	StructureType string
	Progress      int
	ProgressTotal int
}

func (o *ConstructionSite) Kind() ObjectKind { return KindConstructionSite }

func decodeConstructionSite(r *fieldReader) Object {
	o := &ConstructionSite{
		User:          r.stringOr("user", ""),
		StructureType: r.stringOr("structureType", ""),
		Progress:      r.optInt("progress", 0),
		ProgressTotal: r.optInt("progressTotal", 0),
	}
	o.ObjectInfo = r.base()
	return o
}
