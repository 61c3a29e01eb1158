package screeps

// Merge applies one partial update document onto a prior state document and
// returns the result. The receiver document is mutated in place and returned
// for convenience; pass nil to start from an empty document.
//
// The rule, applied key by key from the root:
//
//   - a null value removes the key,
//   - an object value merges recursively into an existing object value,
//   - anything else replaces the prior value wholesale.
//
// The first payload after a subscribe is a full snapshot applied against an
// empty document, so no special first-message branch exists. The merge never
// consults a schema; shape disagreements resolve as replacement.
func Merge(doc map[string]any, delta map[string]any) map[string]any {
	if doc == nil {
		doc = make(map[string]any, len(delta))
	}
	for key, value := range delta {
		if value == nil {
			delete(doc, key)
			continue
		}
		if deltaObj, ok := value.(map[string]any); ok {
			if prevObj, ok := doc[key].(map[string]any); ok {
				doc[key] = Merge(prevObj, deltaObj)
				continue
			}
			// No prior object at this key: deep-copy so later merges never
			// alias the caller's delta.
			doc[key] = Merge(nil, deltaObj)
			continue
		}
		doc[key] = value
	}
	return doc
}

// cloneDocument deep-copies a state document, arrays included. Merge
// deep-copies objects but leaves list values shared with the delta, which is
// fine inside the session (deltas are freshly unmarshaled) but not for copies
// handed to callers.
func cloneDocument(doc map[string]any) map[string]any {
	if doc == nil {
		return nil
	}
	return cloneDocValue(doc).(map[string]any)
}

func cloneDocValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for key, val := range t {
			m[key] = cloneDocValue(val)
		}
		return m
	case []any:
		l := make([]any, len(t))
		for i, val := range t {
			l[i] = cloneDocValue(val)
		}
		return l
	default:
		return v
	}
}
