package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tischda/osshortcuts/keycode"
	"github.com/tischda/osshortcuts/shortcut"
)

func TestVirtualKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  keycode.Key
		want vkInfo
	}{
		{keycode.KeyA, vkInfo{vk: 'A'}},
		{keycode.KeyZ, vkInfo{vk: 'Z'}},
		{keycode.Key1, vkInfo{vk: '1'}},
		{keycode.Key0, vkInfo{vk: '0'}},
		{keycode.KeyF1, vkInfo{vk: 0x70}},
		{keycode.KeyF12, vkInfo{vk: 0x7B}},
		{keycode.KeyLeft, vkInfo{vk: 0x25, extended: true}},
		{keycode.KeyGrave, vkInfo{vk: 0xC0}},
	}
	for _, tt := range tests {
		got, ok := virtualKey(tt.key)
		require.True(t, ok, tt.key.String())
		assert.Equal(t, tt.want, got, tt.key.String())
	}

	_, ok := virtualKey(keycode.KeyMediaEject)
	assert.False(t, ok)
}

func TestStrokes(t *testing.T) {
	t.Parallel()

	t.Run("modifiers first on press", func(t *testing.T) {
		t.Parallel()

		c := keycode.S(keycode.C(keycode.K(keycode.KeyTab)))
		got, err := strokes(c, false)
		require.NoError(t, err)
		assert.Equal(t, []stroke{
			{vk: 0xA2},
			{vk: 0xA0},
			{vk: 0x09},
		}, got)
	})

	t.Run("reverse order on release", func(t *testing.T) {
		t.Parallel()

		c := keycode.G(keycode.C(keycode.K(keycode.KeyRight)))
		got, err := strokes(c, true)
		require.NoError(t, err)
		assert.Equal(t, []stroke{
			{vk: 0x27, up: true, extended: true},
			{vk: 0x5B, up: true, extended: true},
			{vk: 0xA2, up: true},
		}, got)
	})

	t.Run("bare modifier", func(t *testing.T) {
		t.Parallel()

		got, err := strokes(keycode.K(keycode.KeyLAlt), false)
		require.NoError(t, err)
		assert.Equal(t, []stroke{{vk: 0xA4}}, got)
	})

	t.Run("unmapped key", func(t *testing.T) {
		t.Parallel()

		_, err := strokes(keycode.A(keycode.G(keycode.K(keycode.KeyMediaEject))), false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no virtual key")
	})

	t.Run("every windows combination is injectable", func(t *testing.T) {
		t.Parallel()

		for _, e := range shortcut.All() {
			if e.Win.IsNoOp() {
				continue
			}
			_, err := strokes(e.Win, false)
			assert.NoError(t, err, e.Name)
		}
	})
}
