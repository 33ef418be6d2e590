package dispatch

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tischda/osshortcuts/keycode"
	"github.com/tischda/osshortcuts/shortcut"
)

type call struct {
	register bool
	combo    keycode.Combo
}

type recordingHost struct {
	calls []call
}

func (h *recordingHost) Register(c keycode.Combo)   { h.calls = append(h.calls, call{true, c}) }
func (h *recordingHost) Unregister(c keycode.Combo) { h.calls = append(h.calls, call{false, c}) }

var testLayout = DefaultLayout(UserRange)

func newTestDispatcher(t *testing.T, opts ...Option) (*Dispatcher, *recordingHost) {
	t.Helper()

	host := &recordingHost{}
	opts = append([]Option{WithLogger(hclog.NewNullLogger())}, opts...)
	d, err := New(host, testLayout, opts...)
	require.NoError(t, err)
	return d, host
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("starts on the default platform", func(t *testing.T) {
		t.Parallel()

		d, _ := newTestDispatcher(t)
		assert.Equal(t, shortcut.DefaultPlatform, d.Platform())
		assert.Equal(t, testLayout, d.Layout())
	})

	t.Run("rejects invalid layouts", func(t *testing.T) {
		t.Parallel()

		_, err := New(&recordingHost{}, Layout{Base: 0xFFF0, SelectMacOS: 1, SelectWindows: 2})
		assert.ErrorIs(t, err, ErrLayoutOverflow)
	})

	t.Run("instances do not share state", func(t *testing.T) {
		t.Parallel()

		a, _ := newTestDispatcher(t, WithPlatform(shortcut.MacOS))
		b, _ := newTestDispatcher(t, WithPlatform(shortcut.MacOS))
		a.SetPlatform(shortcut.Windows)
		assert.Equal(t, shortcut.Windows, a.Platform())
		assert.Equal(t, shortcut.MacOS, b.Platform())
	})
}

func TestOnInputEvent(t *testing.T) {
	t.Parallel()

	t.Run("ignores keycodes outside the shortcut block", func(t *testing.T) {
		t.Parallel()

		d, host := newTestDispatcher(t)
		base := testLayout.Base
		for _, kc := range []Keycode{base - 1, base + Keycode(shortcut.Count), 0, 0x0004, 0xFFFF} {
			assert.False(t, d.OnInputEvent(kc, true), "0x%04X", uint16(kc))
			assert.False(t, d.OnInputEvent(kc, false), "0x%04X", uint16(kc))
		}
		assert.Empty(t, host.calls)
	})

	t.Run("first and last shortcut are handled", func(t *testing.T) {
		t.Parallel()

		d, host := newTestDispatcher(t, WithPlatform(shortcut.MacOS))
		assert.True(t, d.OnInputEvent(testLayout.Base, true))
		assert.True(t, d.OnInputEvent(testLayout.Base+Keycode(shortcut.Count-1), true))
		require.Len(t, host.calls, 2)
		assert.Equal(t, shortcut.Lookup(shortcut.WordLeft, shortcut.MacOS), host.calls[0].combo)
		assert.Equal(t, shortcut.Lookup(shortcut.SystemSleep, shortcut.MacOS), host.calls[1].combo)
	})

	t.Run("press then release registers then unregisters the same combo", func(t *testing.T) {
		t.Parallel()

		for _, p := range []shortcut.Platform{shortcut.MacOS, shortcut.Windows} {
			for _, e := range shortcut.All() {
				if e.Combo(p).IsNoOp() {
					continue
				}
				d, host := newTestDispatcher(t, WithPlatform(p))
				kc := testLayout.Keycode(e.ID)
				require.True(t, d.OnInputEvent(kc, true))
				require.True(t, d.OnInputEvent(kc, false))
				assert.Equal(t, []call{{true, e.Combo(p)}, {false, e.Combo(p)}}, host.calls, "%s on %s", e.Name, p)
			}
		}
	})

	t.Run("no-op shortcuts are handled without host calls", func(t *testing.T) {
		t.Parallel()

		d, host := newTestDispatcher(t, WithPlatform(shortcut.Windows))
		kc := testLayout.Keycode(shortcut.NextApp)
		assert.True(t, d.OnInputEvent(kc, true))
		assert.True(t, d.OnInputEvent(kc, false))
		assert.Empty(t, host.calls)

		d.SetPlatform(shortcut.MacOS)
		assert.True(t, d.OnInputEvent(kc, true))
		assert.Equal(t, []call{{true, keycode.K(keycode.KeyTab)}}, host.calls)
	})

	t.Run("unsupported platform never reaches the host", func(t *testing.T) {
		t.Parallel()

		d, host := newTestDispatcher(t)
		d.SetPlatform(shortcut.Platform(9))
		assert.True(t, d.OnInputEvent(testLayout.Keycode(shortcut.CopySelection), true))
		assert.Empty(t, host.calls)
	})
}

func TestPlatformSwitch(t *testing.T) {
	t.Parallel()

	d, host := newTestDispatcher(t, WithPlatform(shortcut.MacOS))
	copyKey := testLayout.Keycode(shortcut.CopySelection)

	require.True(t, d.OnPlatformSelectEvent(testLayout.SelectWindows))
	require.True(t, d.OnInputEvent(copyKey, true))
	require.True(t, d.OnInputEvent(copyKey, false))

	require.True(t, d.OnPlatformSelectEvent(testLayout.SelectMacOS))
	require.True(t, d.OnInputEvent(copyKey, true))

	ctrlC := keycode.C(keycode.K(keycode.KeyC))
	cmdC := keycode.G(keycode.K(keycode.KeyC))
	assert.Equal(t, []call{{true, ctrlC}, {false, ctrlC}, {true, cmdC}}, host.calls)
}

func TestOnPlatformSelectEvent(t *testing.T) {
	t.Parallel()

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		d, _ := newTestDispatcher(t, WithPlatform(shortcut.MacOS))
		assert.True(t, d.OnPlatformSelectEvent(testLayout.SelectMacOS))
		assert.True(t, d.OnPlatformSelectEvent(testLayout.SelectMacOS))
		assert.Equal(t, shortcut.MacOS, d.Platform())
	})

	t.Run("ignores other keycodes", func(t *testing.T) {
		t.Parallel()

		d, host := newTestDispatcher(t, WithPlatform(shortcut.Windows))
		assert.False(t, d.OnPlatformSelectEvent(testLayout.Base))
		assert.False(t, d.OnPlatformSelectEvent(0x0004))
		assert.Equal(t, shortcut.Windows, d.Platform())
		assert.Empty(t, host.calls)
	})
}

func TestProcess(t *testing.T) {
	t.Parallel()

	d, host := newTestDispatcher(t, WithPlatform(shortcut.MacOS))
	assert.True(t, d.Process(testLayout.SelectWindows, true))
	assert.True(t, d.Process(testLayout.SelectWindows, false))
	assert.True(t, d.Process(testLayout.Keycode(shortcut.UndoAction), true))
	assert.False(t, d.Process(0x0004, true))
	assert.Equal(t, []call{{true, keycode.C(keycode.K(keycode.KeyZ))}}, host.calls)
}

func TestRenderStatus(t *testing.T) {
	t.Parallel()

	d, _ := newTestDispatcher(t)
	d.SetPlatform(shortcut.MacOS)
	assert.Equal(t, "MACOS", d.RenderStatus())
	d.SetPlatform(shortcut.Windows)
	assert.Equal(t, "WINDOWS", d.RenderStatus())
	d.SetPlatform(shortcut.Platform(42))
	assert.Equal(t, StatusUnknown, d.RenderStatus())
}
