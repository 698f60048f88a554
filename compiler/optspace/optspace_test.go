package optspace

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type info struct {
	License string `yaml:"license,omitempty"`
}

type options struct {
	Name     *string `yaml:"name,omitempty"`
	Burnable *bool   `yaml:"burnable,omitempty"`
	Access   *string `yaml:"access,omitempty"`
	Info     *info   `yaml:"info,omitempty"`
}

func TestAlternatives(t *testing.T) {
	bp := Blueprint{
		{Name: "burnable", Values: []any{true, false}},
		{Name: "access", Values: []any{"ownable", "roles", "none"}},
	}

	t.Run("count is the product of cardinalities", func(t *testing.T) {
		assert.Equal(t, 6, bp.Count())
		assert.Len(t, slices.Collect(Alternatives(bp)), 6)
	})

	t.Run("innermost dimension varies fastest", func(t *testing.T) {
		var got [][2]any
		for c := range Alternatives(bp) {
			b, _ := c.Get("burnable")
			a, _ := c.Get("access")
			got = append(got, [2]any{b, a})
		}
		assert.Equal(t, [][2]any{
			{true, "ownable"}, {true, "roles"}, {true, "none"},
			{false, "ownable"}, {false, "roles"}, {false, "none"},
		}, got)
	})

	t.Run("stops when the consumer stops", func(t *testing.T) {
		n := 0
		for range Alternatives(bp) {
			n++
			if n == 2 {
				break
			}
		}
		assert.Equal(t, 2, n)
	})

	t.Run("empty blueprint yields one empty combination", func(t *testing.T) {
		all := slices.Collect(Alternatives(Blueprint{}))
		require.Len(t, all, 1)
		assert.Empty(t, all[0])
	})

	t.Run("empty dimension yields nothing", func(t *testing.T) {
		empty := append(Blueprint{{Name: "name"}}, bp...)
		assert.Zero(t, empty.Count())
		assert.Empty(t, slices.Collect(Alternatives(empty)))
	})
}

func TestDecode(t *testing.T) {
	t.Run("assigns by yaml name", func(t *testing.T) {
		var o options
		err := Decode(Combination{
			{Name: "name", Value: nil},
			{Name: "burnable", Value: false},
			{Name: "access", Value: "roles"},
			{Name: "info", Value: map[string]any{"license": "WTFPL"}},
		}, &o)
		require.NoError(t, err)
		assert.Nil(t, o.Name)
		require.NotNil(t, o.Burnable)
		assert.False(t, *o.Burnable)
		require.NotNil(t, o.Access)
		assert.Equal(t, "roles", *o.Access)
		require.NotNil(t, o.Info)
		assert.Equal(t, "WTFPL", o.Info.License)
	})

	t.Run("fields round trip set values", func(t *testing.T) {
		var o options
		require.NoError(t, Decode(Combination{{Name: "burnable", Value: true}}, &o))
		m, err := Fields(o)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"burnable": true}, m)
	})

	t.Run("type mismatch fails", func(t *testing.T) {
		var o options
		err := Decode(Combination{{Name: "burnable", Value: "maybe"}}, &o)
		assert.Error(t, err)
	})
}
