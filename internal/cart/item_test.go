package cart_test

import (
	"encoding/json"
	"guitarcart/internal/cart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestItemID_JSON(t *testing.T) {
	t.Run("numeric id encodes as a number", func(t *testing.T) {
		data, err := json.Marshal(cart.IntID(7))

		require.NoError(t, err)
		assert.Equal(t, "7", string(data))
	})

	t.Run("string id encodes as a string", func(t *testing.T) {
		data, err := json.Marshal(cart.StringID("7"))

		require.NoError(t, err)
		assert.Equal(t, `"7"`, string(data))
	})

	t.Run("decodes numbers and strings into distinct ids", func(t *testing.T) {
		var a, b cart.ItemID
		require.NoError(t, json.Unmarshal([]byte("7"), &a))
		require.NoError(t, json.Unmarshal([]byte(`"7"`), &b))

		assert.Equal(t, cart.IntID(7), a)
		assert.Equal(t, cart.StringID("7"), b)
		assert.NotEqual(t, a, b)
	})

	t.Run("integral floats canonicalise to integers", func(t *testing.T) {
		var id cart.ItemID
		require.NoError(t, json.Unmarshal([]byte("7.0"), &id))

		assert.Equal(t, cart.IntID(7), id)
	})

	t.Run("rejects other JSON kinds", func(t *testing.T) {
		for _, raw := range []string{"true", "null", "{}", "[1]"} {
			var id cart.ItemID
			assert.ErrorIs(t, json.Unmarshal([]byte(raw), &id), cart.ErrInvalidID, raw)
		}
	})
}

func TestItemID_YAML(t *testing.T) {
	var items []cart.Item
	src := "- id: 1\n  name: Lukather\n- id: \"sku-2\"\n  name: SRV\n"

	require.NoError(t, yaml.Unmarshal([]byte(src), &items))

	require.Len(t, items, 2)
	assert.Equal(t, cart.IntID(1), items[0].ID)
	assert.Equal(t, cart.StringID("sku-2"), items[1].ID)

	out, err := yaml.Marshal(items)
	require.NoError(t, err)
	var again []cart.Item
	require.NoError(t, yaml.Unmarshal(out, &again))
	assert.Equal(t, items, again)
}

func TestParseID(t *testing.T) {
	assert.Equal(t, cart.IntID(12), cart.ParseID("12"))
	assert.Equal(t, cart.IntID(-3), cart.ParseID(" -3 "))
	assert.Equal(t, cart.StringID("abc"), cart.ParseID("abc"))
	assert.True(t, cart.ItemID{}.IsZero())
	assert.False(t, cart.StringID("").IsNumeric())
}
