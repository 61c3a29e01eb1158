package room

// CreepPart is one segment of a creep's body.
type CreepPart struct {
	Type  string
	Hits  int
	Boost string
}

// Creep is a mobile unit owned by a player or by the invader/keeper AI.
type Creep struct {
	ObjectInfo
	Name               string
	User               string
	Body               []CreepPart
	Store              Store
	Hits               int
	HitsMax            int
	Fatigue            int
	TicksToLive        int
	Spawning           bool
	NotifyWhenAttacked bool
	ActionLog          map[string]any
}

func (o *Creep) Kind() ObjectKind { return KindCreep }

func decodeCreep(r *fieldReader) Object {
	o := &Creep{
		Name:               r.stringOr("name", ""),
		User:               r.stringOr("user", ""),
		Store:              r.store(),
		Hits:               r.optInt("hits", 0),
		HitsMax:            r.optInt("hitsMax", 0),
		Fatigue:            r.optInt("fatigue", 0),
		TicksToLive:        r.optInt("ageTime", 0),
		Spawning:           r.optBool("spawning", false),
		NotifyWhenAttacked: r.optBool("notifyWhenAttacked", false),
		ActionLog:          cloneMap(r.optObject("actionLog")),
	}
	for _, part := range r.optList("body") {
		m, ok := part.(map[string]any)
		if !ok {
			r.report.ignore(r.id, "body", ReasonTypeMismatch)
			continue
		}
		sub := newFieldReader(r.id, m, r.report)
		o.Body = append(o.Body, CreepPart{
			Type:  sub.stringOr("type", ""),
			Hits:  sub.optInt("hits", 0),
			Boost: sub.optString("boost", ""),
		})
	}
	o.ObjectInfo = r.base()
	return o
}
