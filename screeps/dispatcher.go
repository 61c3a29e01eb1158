package screeps

// RoomUpdateEvent is a merged detailed update for one room channel. Decode
// the document with the room package when a typed snapshot is wanted.
type RoomUpdateEvent struct {
	Shard    string
	Room     string
	Document map[string]any
}

// MapViewEvent is one tick's map-overview update for a room.
type MapViewEvent struct {
	Shard  string
	Room   string
	Update MapViewUpdate
}

// ConsoleEvent is one tick's console output for a user.
type ConsoleEvent struct {
	UserID string
	Update ConsoleUpdate
}

// CPUEvent is one tick's CPU/memory usage for a user.
type CPUEvent struct {
	UserID string
	Update CPUUpdate
}

// Dispatcher routes session events to registered callbacks. Channels with a
// documented stable schema (room, roomMap2, console, cpu) get typed
// callbacks; everything else arrives through OnChannel as opaque JSON.
type Dispatcher struct {
	onRoomUpdate func(RoomUpdateEvent)
	onMapView    func(MapViewEvent)
	onConsole    func(ConsoleEvent)
	onCPU        func(CPUEvent)
	onServerTime func(uint64)
	onAuth       func(AuthEvent)
	onRateLimit  func(RateLimitEvent)
	onChannel    func(ChannelEvent)
	onState      func(StateEvent)
	onError      func(error)
}

func (d *Dispatcher) SetOnRoomUpdate(fn func(RoomUpdateEvent)) { d.onRoomUpdate = fn }
func (d *Dispatcher) SetOnMapView(fn func(MapViewEvent))       { d.onMapView = fn }
func (d *Dispatcher) SetOnConsole(fn func(ConsoleEvent))       { d.onConsole = fn }
func (d *Dispatcher) SetOnCPU(fn func(CPUEvent))               { d.onCPU = fn }
func (d *Dispatcher) SetOnServerTime(fn func(uint64))          { d.onServerTime = fn }
func (d *Dispatcher) SetOnAuth(fn func(AuthEvent))             { d.onAuth = fn }
func (d *Dispatcher) SetOnRateLimit(fn func(RateLimitEvent))   { d.onRateLimit = fn }
func (d *Dispatcher) SetOnChannel(fn func(ChannelEvent))       { d.onChannel = fn }
func (d *Dispatcher) SetOnState(fn func(StateEvent))           { d.onState = fn }
func (d *Dispatcher) SetOnError(fn func(error))                { d.onError = fn }

// Dispatch fans one session event out to the registered callbacks.
func (d *Dispatcher) Dispatch(ev Event) {
	switch ev := ev.(type) {
	case ServerTimeEvent:
		if d.onServerTime != nil {
			d.onServerTime(ev.Time)
		}
	case AuthEvent:
		if d.onAuth != nil {
			d.onAuth(ev)
		}
	case RateLimitEvent:
		if d.onRateLimit != nil {
			d.onRateLimit(ev)
		}
	case StateEvent:
		if d.onState != nil {
			d.onState(ev)
		}
	case ChannelEvent:
		d.dispatchChannel(ev)
	}
}

func (d *Dispatcher) dispatchChannel(ev ChannelEvent) {
	if d.onChannel != nil {
		d.onChannel(ev)
	}

	if shard, room, ok := splitRoomChannel(ev.Channel, roomDetailPrefix); ok {
		if d.onRoomUpdate != nil {
			d.onRoomUpdate(RoomUpdateEvent{Shard: shard, Room: room, Document: ev.Document})
		}
		return
	}

	if shard, room, ok := splitRoomChannel(ev.Channel, roomMapPrefix); ok {
		if d.onMapView == nil {
			return
		}
		update, err := ParseMapViewUpdate(ev.Delta)
		if err != nil {
			d.fireError(err)
			return
		}
		d.onMapView(MapViewEvent{Shard: shard, Room: room, Update: update})
		return
	}

	userID, sub, ok := splitUserChannel(ev.Channel)
	if !ok {
		return
	}
	switch sub {
	case "console":
		if d.onConsole == nil {
			return
		}
		update, err := ParseConsoleUpdate(ev.Delta)
		if err != nil {
			d.fireError(err)
			return
		}
		d.onConsole(ConsoleEvent{UserID: userID, Update: update})
	case "cpu":
		if d.onCPU == nil {
			return
		}
		update, err := ParseCPUUpdate(ev.Delta)
		if err != nil {
			d.fireError(err)
			return
		}
		d.onCPU(CPUEvent{UserID: userID, Update: update})
	}
}

func (d *Dispatcher) fireError(err error) {
	if d.onError != nil && err != nil {
		d.onError(err)
	}
}
