package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tischda/osshortcuts/dispatch"
	"github.com/tischda/osshortcuts/shortcut"
)

func TestWriteC(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, writeC(&buf, dispatch.DefaultLayout(dispatch.UserRange)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "// Code generated by osshortcuts gen. DO NOT EDIT."))
	assert.Contains(t, out, "#define OS_SELECT_KEYCODES")
	assert.Contains(t, out, "  sc_word_left = 0,\n")
	assert.Contains(t, out, "static const uint16_t shortcut_codes[48][2] = {")
	assert.Contains(t, out, "  [sc_copy_selection] = { 0x0806, 0x0106 }, // GUI+C / Ctrl+C\n")
	assert.Contains(t, out, "  [sc_next_app] = { 0x002B, 0x0000 }, // Tab / NoOp\n")
	assert.Contains(t, out, "CU_SELECT_WINDOWS = 0x7E01, CU_WORD_LEFT = 0x7E02")

	// The keycode block lists every shortcut once, in table order, and the
	// last one carries no trailing comma.
	block := out[strings.Index(out, "#define OS_SHORTCUT_KEYCODES"):]
	block = block[:strings.Index(block, "\n\n")]
	assert.Equal(t, shortcut.Count, strings.Count(block, "CU_"))
	assert.True(t, strings.HasSuffix(block, "CU_SYSTEM_SLEEP"))
	assert.Less(t, strings.Index(block, "CU_WORD_LEFT"), strings.Index(block, "CU_WORD_RIGHT"))
}

func TestExportDoc(t *testing.T) {
	t.Parallel()

	doc := newExportDoc(dispatch.DefaultLayout(0x6000))
	require.Len(t, doc.Shortcuts, shortcut.Count)
	assert.Equal(t, exportLayout{SelectMacOS: 0x6000, SelectWindows: 0x6001, Base: 0x6002, Count: shortcut.Count}, doc.Layout)

	redo := doc.Shortcuts[shortcut.RedoAction]
	assert.Equal(t, "redo_action", redo.Name)
	assert.Equal(t, "CU_REDO_ACTION", redo.Keycode)
	assert.Equal(t, uint16(0x6002)+uint16(shortcut.RedoAction), redo.Code)
	assert.Equal(t, "Shift+GUI+Z", redo.MacOS)
	assert.Equal(t, "Ctrl+Y", redo.Windows)

	t.Run("toml", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, toml.NewEncoder(&buf).Encode(doc))
		var back exportDoc
		_, err := toml.Decode(buf.String(), &back)
		require.NoError(t, err)
		assert.Equal(t, doc, back)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, writeYAML(&buf, doc))
		assert.Contains(t, buf.String(), "  select_macos: 24576\n")
		var back exportDoc
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
		assert.Equal(t, doc, back)
	})
}

func TestGenCommand(t *testing.T) {
	t.Parallel()

	t.Run("yaml at a custom start", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		root := newRootCmd(&stdout, &stderr)
		root.SetArgs([]string{"gen", "--format", "YAML", "--start", "0x5000"})
		require.NoError(t, root.Execute())

		var doc exportDoc
		require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &doc))
		assert.Equal(t, uint16(0x5002), doc.Layout.Base)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		root := newRootCmd(&stdout, &stderr)
		root.SetArgs([]string{"gen", "--format", "json"})
		err := root.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown format")
	})

	t.Run("start too high", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		root := newRootCmd(&stdout, &stderr)
		root.SetArgs([]string{"gen", "--start", "65500"})
		err := root.Execute()
		require.ErrorIs(t, err, dispatch.ErrLayoutOverflow)
	})
}
