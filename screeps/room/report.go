// Package room decodes materialized room-channel documents into typed game
// objects.
//
// The server's schema evolves without notice, so decoding is lenient:
// fields a variant's schema does not declare are kept verbatim in
// the object's overflow map, per-field type mismatches degrade to defaults,
// and a single malformed object never fails the room. Everything ignored or
// defaulted is recorded in a Report so schema drift stays visible.
package room

import "fmt"

// Reasons recorded in ignored-field entries.
const (
	ReasonUnknownField = "unknown field"
	ReasonTypeMismatch = "type mismatch"
	ReasonDefaulted    = "missing required field defaulted"
)

// IgnoredField is one field the decoder could not apply as declared.
type IgnoredField struct {
	ObjectID string
	Field    string
	Reason   string
}

// DecodeError describes one object dropped from a snapshot. It is scoped to
// that object and never fails the room.
type DecodeError struct {
	ObjectID string
	Reason   string
}

// Error implements the error interface.
func (e DecodeError) Error() string {
	return fmt.Sprintf("object %s: %s", e.ObjectID, e.Reason)
}

// Report is the side artifact of one decode call: everything that was
// ignored, defaulted, or dropped. Inspecting reports in aggregate is how
// operators detect server-side schema drift.
type Report struct {
	Ignored []IgnoredField
	Dropped []DecodeError
}

// Empty reports whether the decode had nothing to complain about.
func (r *Report) Empty() bool {
	return len(r.Ignored) == 0 && len(r.Dropped) == 0
}

func (r *Report) ignore(objectID, field, reason string) {
	r.Ignored = append(r.Ignored, IgnoredField{ObjectID: objectID, Field: field, Reason: reason})
}

func (r *Report) drop(objectID, reason string) {
	r.Dropped = append(r.Dropped, DecodeError{ObjectID: objectID, Reason: reason})
}
