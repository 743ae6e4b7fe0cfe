package objpath_test

import (
	"testing"

	"github.com/aretw0/toolbelt/pkg/objpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() map[string]any {
	return map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": "value"},
		},
		"server": map[string]any{
			"port":    "8080",
			"debug":   "true",
			"ratio":   0.75,
			"tags":    []any{"x", map[string]any{"id": 7}},
			"timeout": nil,
		},
		"yaml": map[any]any{"legacy": 1},
		"n":    3,
	}
}

func TestResolve(t *testing.T) {
	doc := fixture()

	assert.Equal(t, "value", objpath.Resolve(doc, "a.b.c", nil))
	assert.Equal(t, "default", objpath.Resolve(map[string]any{}, "x.y", "default"))

	tests := []struct {
		name string
		path string
		want any
	}{
		{"missing leaf", "a.b.z", "def"},
		{"missing middle", "a.z.c", "def"},
		{"through scalar", "n.x", "def"},
		{"nil value", "server.timeout", "def"},
		{"slice index", "server.tags.0", "x"},
		{"slice nested", "server.tags.1.id", 7},
		{"slice out of range", "server.tags.5", "def"},
		{"slice bad index", "server.tags.first", "def"},
		{"yaml style map", "yaml.legacy", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, objpath.Resolve(doc, tt.path, "def"))
		})
	}

	assert.Equal(t, doc, objpath.Resolve(doc, "", nil))
	assert.Equal(t, "def", objpath.Resolve(nil, "a", "def"))
}

func TestLookup(t *testing.T) {
	doc := fixture()

	v, err := objpath.Lookup(doc, "server.timeout")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = objpath.Lookup(doc, "a.z.c")
	require.ErrorIs(t, err, objpath.ErrNotFound)

	var pe *objpath.PathError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "a.z.c", pe.Path)
	assert.Equal(t, "z", pe.Segment)

	_, err = objpath.Lookup(doc, "a.b.c.d")
	assert.ErrorIs(t, err, objpath.ErrNotContainer)
	assert.Contains(t, err.Error(), `at "d"`)
}

func TestTypedGetters(t *testing.T) {
	doc := fixture()

	assert.Equal(t, 8080, objpath.Int(doc, "server.port", 0))
	assert.Equal(t, "8080", objpath.String(doc, "server.port", ""))
	assert.Equal(t, true, objpath.Bool(doc, "server.debug", false))
	assert.Equal(t, 0.75, objpath.Float(doc, "server.ratio", 0))

	assert.Equal(t, 42, objpath.Int(doc, "server.missing", 42))
	assert.Equal(t, 42, objpath.Int(doc, "a.b.c", 42), "non numeric string falls back")
	assert.Equal(t, "none", objpath.String(doc, "server.timeout", "none"))
}

func TestDecode(t *testing.T) {
	type server struct {
		Port  int
		Debug bool
		Ratio float64
		Tags  []any
	}

	var s server
	require.NoError(t, objpath.Decode(fixture(), "server", &s))
	assert.Equal(t, 8080, s.Port)
	assert.True(t, s.Debug)
	assert.Equal(t, 0.75, s.Ratio)
	assert.Len(t, s.Tags, 2)

	type leaf struct {
		Value string `mapstructure:"c"`
	}
	var l leaf
	require.NoError(t, objpath.Decode(fixture(), "a.b", &l))
	assert.Equal(t, "value", l.Value)

	err := objpath.Decode(fixture(), "nope", &l)
	assert.ErrorIs(t, err, objpath.ErrNotFound)

	var n struct{ Port int }
	err = objpath.Decode(map[string]any{"x": map[string]any{"port": "eighty"}}, "x", &n)
	assert.Error(t, err)
}
