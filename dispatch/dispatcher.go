// Package dispatch turns host keycodes into platform-specific key
// combinations. A Dispatcher owns the currently selected platform; the host
// feeds it every input event and provides the primitive that actually presses
// and releases keys.
//
// A Dispatcher is not safe for concurrent use. Hosts call it from their single
// event-processing loop, so a platform change is always applied before the
// next event is dispatched.
package dispatch

import (
	"github.com/hashicorp/go-hclog"

	"github.com/tischda/osshortcuts/keycode"
	"github.com/tischda/osshortcuts/shortcut"
)

// Host injects key combinations. How modifiers and the base key are ordered
// on press and release is up to the host.
type Host interface {
	Register(c keycode.Combo)
	Unregister(c keycode.Combo)
}

// Status labels returned by RenderStatus.
const (
	StatusMacOS   = "MACOS"
	StatusWindows = "WINDOWS"
	StatusUnknown = "?OS?"
)

// Dispatcher routes input events to the shortcut table.
type Dispatcher struct {
	host     Host
	layout   Layout
	platform shortcut.Platform
	logger   hclog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPlatform overrides the compiled-in default platform.
func WithPlatform(p shortcut.Platform) Option {
	return func(d *Dispatcher) { d.platform = p }
}

// WithLogger sets the logger. Events are logged at trace level.
func WithLogger(l hclog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// New returns a Dispatcher that injects through host. The platform starts
// at shortcut.DefaultPlatform and is never persisted.
func New(host Host, layout Layout, opts ...Option) (*Dispatcher, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	d := &Dispatcher{
		host:     host,
		layout:   layout,
		platform: shortcut.DefaultPlatform,
		logger:   hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Layout returns the keycode layout d was built with.
func (d *Dispatcher) Layout() Layout { return d.layout }

// Platform returns the selected platform.
func (d *Dispatcher) Platform() shortcut.Platform { return d.platform }

// SetPlatform selects p for all following lookups. The value is stored as
// given; an unsupported value only shows up in RenderStatus and makes every
// shortcut a no-op.
func (d *Dispatcher) SetPlatform(p shortcut.Platform) {
	d.platform = p
}

// OnInputEvent handles kc if it falls inside the shortcut block and reports
// whether it did. A press registers the shortcut's combination on the host, a
// release unregisters it. Shortcuts without a combination on the current
// platform are handled without touching the host.
func (d *Dispatcher) OnInputEvent(kc Keycode, pressed bool) bool {
	id, ok := d.layout.Shortcut(kc)
	if !ok {
		return false
	}
	c := shortcut.Lookup(id, d.platform)
	if c.IsNoOp() {
		d.logger.Trace("no combination", "shortcut", id, "platform", d.platform)
		return true
	}
	if pressed {
		d.logger.Trace("register", "shortcut", id, "combo", c)
		d.host.Register(c)
	} else {
		d.logger.Trace("unregister", "shortcut", id, "combo", c)
		d.host.Unregister(c)
	}
	return true
}

// OnPlatformSelectEvent switches platform when kc is one of the two selector
// keycodes. It fires on both press and release.
func (d *Dispatcher) OnPlatformSelectEvent(kc Keycode) bool {
	switch kc {
	case d.layout.SelectMacOS:
		d.choose(shortcut.MacOS)
	case d.layout.SelectWindows:
		d.choose(shortcut.Windows)
	default:
		return false
	}
	return true
}

func (d *Dispatcher) choose(p shortcut.Platform) {
	if d.platform != p {
		d.logger.Debug("platform selected", "platform", p)
	}
	d.platform = p
}

// Process runs one event through platform selection and then shortcut
// dispatch, and reports whether either consumed it.
func (d *Dispatcher) Process(kc Keycode, pressed bool) bool {
	if d.OnPlatformSelectEvent(kc) {
		return true
	}
	return d.OnInputEvent(kc, pressed)
}

// RenderStatus returns the status label of the selected platform.
func (d *Dispatcher) RenderStatus() string {
	switch d.platform {
	case shortcut.MacOS:
		return StatusMacOS
	case shortcut.Windows:
		return StatusWindows
	}
	return StatusUnknown
}
