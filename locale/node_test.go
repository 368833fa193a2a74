package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeMetrics(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		leaves   int
		depth    int
		keyPaths []string
	}{
		{
			name:     "flat",
			input:    `{"a": "x", "b": "y"}`,
			leaves:   2,
			depth:    1,
			keyPaths: []string{"a", "b"},
		},
		{
			name:     "nested and flat",
			input:    `{"a": {"b": "x"}, "c": "y"}`,
			leaves:   2,
			depth:    2,
			keyPaths: []string{"a.b", "c"},
		},
		{
			name:     "deep",
			input:    `{"l1": {"l2": {"l3": {"l4": "x"}}, "s": null}}`,
			leaves:   2,
			depth:    4,
			keyPaths: []string{"l1.l2.l3.l4", "l1.s"},
		},
		{
			name:     "empty nested object has no paths",
			input:    `{"empty": {}, "k": 1}`,
			leaves:   1,
			depth:    2,
			keyPaths: []string{"k"},
		},
		{
			name:     "empty document",
			input:    `{}`,
			leaves:   0,
			depth:    1,
			keyPaths: nil,
		},
		{
			name:     "arrays are leaves",
			input:    `{"list": [{"a": "b"}], "x": {"y": [1, 2]}}`,
			leaves:   2,
			depth:    2,
			keyPaths: []string{"list", "x.y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse([]byte(tt.input))
			require.NoError(t, err)

			assert.Equal(t, tt.leaves, root.LeafCount())
			assert.Equal(t, tt.depth, root.Depth())
			assert.Equal(t, tt.keyPaths, root.KeyPaths())
		})
	}
}

func TestKeyPathsDoNotShareBackingArrays(t *testing.T) {
	root := NewObject(
		Field{Key: "a", Value: NewObject(
			Field{Key: "b", Value: NewLeaf(0)},
			Field{Key: "c", Value: NewObject(
				Field{Key: "d", Value: NewLeaf(0)},
			)},
			Field{Key: "e", Value: NewLeaf(0)},
		)},
	)

	assert.Equal(t, []string{"a.b", "a.c.d", "a.e"}, root.KeyPaths())
}

func TestGetOnLeaf(t *testing.T) {
	assert.Nil(t, NewLeaf(0).Get("x"))
	assert.Nil(t, NewObject().Get("x"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "leaf", Leaf.String())
	assert.Equal(t, "object", Object.String())
}
