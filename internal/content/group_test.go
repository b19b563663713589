package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealhub/remote-config/internal/content"
)

func entry(screen, key, value string, typ content.Type) content.Entry {
	return content.Entry{
		App:    "customer",
		Screen: screen,
		Key:    key,
		Value:  value,
		Type:   typ,
		Status: content.StatusPublished,
	}
}

func TestDecodeValue(t *testing.T) {
	t.Run("json entry decodes", func(t *testing.T) {
		v, decoded := content.DecodeValue(entry("home", "banner", `{"a":1}`, content.TypeJSON))
		assert.True(t, decoded)
		assert.Equal(t, map[string]any{"a": float64(1)}, v)
	})

	t.Run("malformed json falls back to the raw string", func(t *testing.T) {
		v, decoded := content.DecodeValue(entry("home", "banner", `{bad`, content.TypeJSON))
		assert.False(t, decoded)
		assert.Equal(t, `{bad`, v)
	})

	t.Run("text passes through verbatim", func(t *testing.T) {
		v, decoded := content.DecodeValue(entry("home", "title", `{"a":1}`, content.TypeText))
		assert.False(t, decoded)
		assert.Equal(t, `{"a":1}`, v)
	})

	t.Run("image passes through verbatim", func(t *testing.T) {
		v, decoded := content.DecodeValue(entry("home", "hero", "https://cdn.example.com/hero.png", content.TypeImage))
		assert.False(t, decoded)
		assert.Equal(t, "https://cdn.example.com/hero.png", v)
	})
}

func TestGroupByScreen(t *testing.T) {
	entries := []content.Entry{
		entry("home", "title", "Hello", content.TypeText),
		entry("home", "banner", `{"headline":"50% off"}`, content.TypeJSON),
		entry("checkout", "cta", "Order now", content.TypeText),
	}

	grouped := content.GroupByScreen(entries)
	require.Len(t, grouped, 2)
	assert.Equal(t, "Hello", grouped["home"]["title"])
	assert.Equal(t, map[string]any{"headline": "50% off"}, grouped["home"]["banner"])
	assert.Equal(t, "Order now", grouped["checkout"]["cta"])
}

func TestGroupByScreenSkipsEntriesMissingIdentity(t *testing.T) {
	entries := []content.Entry{
		entry("", "title", "orphaned", content.TypeText),
		entry("home", "", "orphaned", content.TypeText),
		entry("home", "title", "kept", content.TypeText),
	}

	grouped := content.GroupByScreen(entries)
	require.Len(t, grouped, 1)
	require.Len(t, grouped["home"], 1)
	assert.Equal(t, "kept", grouped["home"]["title"])
}

func TestGroupByScreenEmptyInput(t *testing.T) {
	assert.Empty(t, content.GroupByScreen(nil))
	assert.Empty(t, content.GroupByScreen([]content.Entry{}))
}
