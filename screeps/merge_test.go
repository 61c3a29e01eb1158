package screeps

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonDoc(t *testing.T, raw string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestMergeIntoNil(t *testing.T) {
	delta := jsonDoc(t, `{"a":1,"b":{"c":2}}`)
	doc := Merge(nil, delta)
	assert.Equal(t, jsonDoc(t, `{"a":1,"b":{"c":2}}`), doc)
}

func TestMergeNullDeletes(t *testing.T) {
	doc := jsonDoc(t, `{"a":1,"b":2}`)
	doc = Merge(doc, jsonDoc(t, `{"a":null}`))
	assert.Equal(t, jsonDoc(t, `{"b":2}`), doc)

	// Deleting an absent key is a no-op.
	doc = Merge(doc, jsonDoc(t, `{"missing":null}`))
	assert.Equal(t, jsonDoc(t, `{"b":2}`), doc)
}

func TestMergeRecursesIntoObjects(t *testing.T) {
	doc := jsonDoc(t, `{"obj":{"keep":1,"drop":2,"change":3}}`)
	doc = Merge(doc, jsonDoc(t, `{"obj":{"drop":null,"change":4,"add":5}}`))
	assert.Equal(t, jsonDoc(t, `{"obj":{"keep":1,"change":4,"add":5}}`), doc)
}

func TestMergeReplacesNonObjects(t *testing.T) {
	doc := jsonDoc(t, `{"a":{"deep":1},"b":[1,2,3]}`)
	// Object replaced by scalar, array replaced wholesale.
	doc = Merge(doc, jsonDoc(t, `{"a":7,"b":[9]}`))
	assert.Equal(t, jsonDoc(t, `{"a":7,"b":[9]}`), doc)

	// Scalar replaced by object.
	doc = Merge(doc, jsonDoc(t, `{"a":{"x":1}}`))
	assert.Equal(t, jsonDoc(t, `{"a":{"x":1},"b":[9]}`), doc)
}

func TestMergeDoesNotAliasDelta(t *testing.T) {
	delta := jsonDoc(t, `{"obj":{"x":1}}`)
	doc := Merge(nil, delta)
	delta["obj"].(map[string]any)["x"] = float64(99)
	assert.Equal(t, float64(1), doc["obj"].(map[string]any)["x"])
}

func TestMergeSequence(t *testing.T) {
	var doc map[string]any
	doc = Merge(doc, jsonDoc(t, `{"objects":{"c1":{"hits":100}},"gameTime":1}`))
	doc = Merge(doc, jsonDoc(t, `{"objects":{"c1":{"hits":90}},"gameTime":2}`))
	doc = Merge(doc, jsonDoc(t, `{"objects":{"c1":null},"gameTime":3}`))
	assert.Equal(t, jsonDoc(t, `{"objects":{},"gameTime":3}`), doc)
}

func TestMergeSequenceMatchesComposedDelta(t *testing.T) {
	// Applying deltas one by one matches applying their hand-composed
	// equivalent to the same base.
	base := `{"objects":{"c1":{"hits":100,"x":5},"s1":{"energy":300}},"gameTime":1}`
	d1 := jsonDoc(t, `{"objects":{"c1":{"hits":90},"s1":null},"gameTime":2}`)
	d2 := jsonDoc(t, `{"objects":{"c1":{"fatigue":4,"x":6}},"gameTime":3}`)
	composed := jsonDoc(t, `{"objects":{"c1":{"hits":90,"fatigue":4,"x":6},"s1":null},"gameTime":3}`)

	stepwise := Merge(Merge(jsonDoc(t, base), d1), d2)
	atOnce := Merge(jsonDoc(t, base), composed)
	assert.Equal(t, atOnce, stepwise)
	assert.Equal(t, jsonDoc(t, `{"objects":{"c1":{"hits":90,"fatigue":4,"x":6}},"gameTime":3}`), stepwise)
}
