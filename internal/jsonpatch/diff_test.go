package jsonpatch

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func paths(ops []Op) []string {
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		out = append(out, op.Op+" "+op.Path)
	}
	return out
}

func TestDiff_Identical(t *testing.T) {
	a := decode(t, `{"x":1,"y":[1,2],"z":null}`)
	assert.Empty(t, Diff(a, a, ""))
}

func TestDiff_ObjectChanges(t *testing.T) {
	a := decode(t, `{"keep":1,"change":2,"drop":3}`)
	b := decode(t, `{"keep":1,"change":9,"added":4}`)

	fwd, bwd := DiffBoth(a, b, "")

	assert.ElementsMatch(t, []string{"remove /drop", "replace /change", "add /added"}, paths(fwd))
	assert.ElementsMatch(t, []string{"add /drop", "replace /change", "remove /added"}, paths(bwd))
}

func TestDiff_NullTransitions(t *testing.T) {
	a := decode(t, `{"triage":null}`)
	b := decode(t, `{"triage":{"country":"GB"}}`)

	fwd := Diff(a, b, "")
	require.Len(t, fwd, 1)
	assert.Equal(t, "replace", fwd[0].Op)
	assert.Equal(t, "/triage", fwd[0].Path)
	require.NotNil(t, fwd[0].Value)

	// Replacing with null still serializes a value field.
	bwd := Diff(b, a, "")
	require.Len(t, bwd, 1)
	encoded, err := json.Marshal(bwd[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"op":"replace","path":"/triage","value":null}`, string(encoded))
}

func TestDiff_Arrays(t *testing.T) {
	a := decode(t, `[1,2,3]`)
	b := decode(t, `[1,9]`)

	fwd, bwd := DiffBoth(a, b, "")
	assert.Equal(t, []string{"replace /1", "remove /2"}, paths(fwd))
	assert.Equal(t, []string{"replace /1", "add /2"}, paths(bwd))
}

func TestDiff_ArrayGrowth_RemovalsDescend(t *testing.T) {
	a := decode(t, `[1]`)
	b := decode(t, `[1,2,3]`)

	fwd, bwd := DiffBoth(a, b, "")
	assert.Equal(t, []string{"add /1", "add /2"}, paths(fwd))
	// Backward removals must run from the highest index down.
	assert.Equal(t, []string{"remove /2", "remove /1"}, paths(bwd))
}

func TestDiff_TypeMismatch(t *testing.T) {
	a := decode(t, `{"v":[1]}`)
	b := decode(t, `{"v":{"x":1}}`)

	fwd := Diff(a, b, "")
	require.Len(t, fwd, 1)
	assert.Equal(t, "replace /v", paths(fwd)[0])
}

func TestDiff_PointerEscaping(t *testing.T) {
	a := decode(t, `{}`)
	b := decode(t, `{"a/b~c":1}`)

	fwd := Diff(a, b, "")
	require.Len(t, fwd, 1)
	assert.Equal(t, "/a~1b~0c", fwd[0].Path)
}

func TestDiff_Nested(t *testing.T) {
	a := decode(t, `{"outer":{"inner":{"v":1}}}`)
	b := decode(t, `{"outer":{"inner":{"v":2}}}`)

	fwd := Diff(a, b, "")
	require.Len(t, fwd, 1)
	assert.Equal(t, "replace /outer/inner/v", paths(fwd)[0])
}
