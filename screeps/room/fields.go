package room

// fieldReader walks one object's JSON fields, tracking which keys a variant
// schema consumed so the leftovers can be swept into the overflow map.
type fieldReader struct {
	id     string
	fields map[string]any
	taken  map[string]bool
	report *Report
}

func newFieldReader(id string, fields map[string]any, report *Report) *fieldReader {
	return &fieldReader{
		id:     id,
		fields: fields,
		taken:  make(map[string]bool, len(fields)),
		report: report,
	}
}

// take consumes a key. The second result is false when the key is absent.
func (r *fieldReader) take(key string) (any, bool) {
	v, ok := r.fields[key]
	if ok {
		r.taken[key] = true
	}
	return v, ok
}

func (r *fieldReader) stringOr(key, def string) string {
	v, ok := r.take(key)
	if !ok {
		r.report.ignore(r.id, key, ReasonDefaulted)
		return def
	}
	s, ok := v.(string)
	if !ok {
		r.report.ignore(r.id, key, ReasonTypeMismatch)
		return def
	}
	return s
}

// optString is stringOr without the defaulted report entry, for fields whose
// absence is ordinary.
func (r *fieldReader) optString(key, def string) string {
	v, ok := r.take(key)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		r.report.ignore(r.id, key, ReasonTypeMismatch)
		return def
	}
	return s
}

func (r *fieldReader) intOr(key string, def int) int {
	v, ok := r.take(key)
	if !ok {
		r.report.ignore(r.id, key, ReasonDefaulted)
		return def
	}
	n, ok := asInt(v)
	if !ok {
		r.report.ignore(r.id, key, ReasonTypeMismatch)
		return def
	}
	return n
}

func (r *fieldReader) optInt(key string, def int) int {
	v, ok := r.take(key)
	if !ok {
		return def
	}
	n, ok := asInt(v)
	if !ok {
		r.report.ignore(r.id, key, ReasonTypeMismatch)
		return def
	}
	return n
}

func (r *fieldReader) optBool(key string, def bool) bool {
	v, ok := r.take(key)
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		r.report.ignore(r.id, key, ReasonTypeMismatch)
		return def
	}
	return b
}

func (r *fieldReader) optObject(key string) map[string]any {
	v, ok := r.take(key)
	if !ok {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		r.report.ignore(r.id, key, ReasonTypeMismatch)
		return nil
	}
	return m
}

func (r *fieldReader) optList(key string) []any {
	v, ok := r.take(key)
	if !ok {
		return nil
	}
	l, ok := v.([]any)
	if !ok {
		r.report.ignore(r.id, key, ReasonTypeMismatch)
		return nil
	}
	return l
}

// store sweeps every recognized resource-code key into a Store map.
func (r *fieldReader) store() Store {
	var store Store
	for _, code := range resourceCodes {
		v, ok := r.take(code)
		if !ok {
			continue
		}
		n, ok := asInt(v)
		if !ok {
			r.report.ignore(r.id, code, ReasonTypeMismatch)
			continue
		}
		if store == nil {
			store = make(Store)
		}
		store[code] = n
	}
	return store
}

// structure consumes the fields shared by every damageable structure.
func (r *fieldReader) structure() Structure {
	return Structure{
		Hits:    r.optInt("hits", 0),
		HitsMax: r.optInt("hitsMax", 0),
	}
}

// owned consumes the fields shared by every player-owned structure.
func (r *fieldReader) owned() OwnedStructure {
	return OwnedStructure{
		Structure:          r.structure(),
		User:               r.stringOr("user", ""),
		Disabled:           r.optBool("off", false),
		NotifyWhenAttacked: r.optBool("notifyWhenAttacked", false),
	}
}

// base consumes the identity fields and sweeps everything not yet taken
// into the overflow map, one report entry per unknown field. Call last.
func (r *fieldReader) base() ObjectInfo {
	info := ObjectInfo{
		ID:   r.id,
		Room: r.stringOr("room", ""),
		X:    r.intOr("x", 0),
		Y:    r.intOr("y", 0),
	}
	r.take("_id") // the map key is authoritative
	for key, value := range r.fields {
		if r.taken[key] {
			continue
		}
		if info.Extra == nil {
			info.Extra = make(map[string]any)
		}
		info.Extra[key] = cloneValue(value)
		r.report.ignore(r.id, key, ReasonUnknownField)
	}
	return info
}

// cloneValue deep-copies a decoded JSON value. Entities are recomputed
// value types: nothing they hold may point back into the source document,
// which later merges mutate in place.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for key, val := range t {
			m[key] = cloneValue(val)
		}
		return m
	case []any:
		l := make([]any, len(t))
		for i, val := range t {
			l[i] = cloneValue(val)
		}
		return l
	default:
		return v
	}
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return cloneValue(m).(map[string]any)
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}
