package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tischda/osshortcuts/dispatch"
	"github.com/tischda/osshortcuts/shortcut"
)

// ScriptFile is the TOML document read by the replay command.
type ScriptFile struct {
	Platform string        `toml:"platform"`
	Layout   LayoutConfig  `toml:"layout"`
	Events   []EventConfig `toml:"events"`
}

// LayoutConfig places the reserved keycodes. Either start (the first free
// user keycode, selectors first) or base with both selectors may be given.
type LayoutConfig struct {
	Start         *uint16 `toml:"start"`
	Base          *uint16 `toml:"base"`
	SelectMacOS   *uint16 `toml:"select_macos"`
	SelectWindows *uint16 `toml:"select_windows"`
}

// EventConfig is one input event. Exactly one of Shortcut, Keycode and
// Select must be set. Action is tap (default), press or release.
type EventConfig struct {
	Shortcut string  `toml:"shortcut"`
	Keycode  *uint16 `toml:"keycode"`
	Select   string  `toml:"select"`
	Action   string  `toml:"action"`
}

// Script is a decoded, validated ScriptFile.
type Script struct {
	Platform *shortcut.Platform
	Layout   dispatch.Layout
	Steps    []Step
}

// Step is a single key edge fed to the dispatcher.
type Step struct {
	Keycode dispatch.Keycode
	Pressed bool
	Label   string
}

var errBadEvent = errors.New("invalid event")

// loadScript reads a TOML replay script and resolves its events to keycodes.
//
// Parameters:
//   - path: Path to the TOML script.
//
// Returns:
//   - *Script: Layout, optional starting platform and the key edges in order.
//   - error: Non-nil if the file cannot be decoded or an event is invalid.
func loadScript(path string) (*Script, error) {
	var file ScriptFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	return file.resolve()
}

func (f *ScriptFile) resolve() (*Script, error) {
	s := &Script{}
	if f.Platform != "" {
		p, err := shortcut.ParsePlatform(f.Platform)
		if err != nil {
			return nil, fmt.Errorf("platform: %w", err)
		}
		s.Platform = &p
	}

	layout, err := f.Layout.layout()
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	s.Layout = layout

	for i, ev := range f.Events {
		steps, err := ev.steps(layout)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i+1, err)
		}
		s.Steps = append(s.Steps, steps...)
	}
	return s, nil
}

func (c LayoutConfig) layout() (dispatch.Layout, error) {
	var l dispatch.Layout
	switch {
	case c.Base != nil:
		if c.Start != nil {
			return l, errors.New("start and base are mutually exclusive")
		}
		if c.SelectMacOS == nil || c.SelectWindows == nil {
			return l, errors.New("base requires select_macos and select_windows")
		}
		l = dispatch.Layout{
			Base:          dispatch.Keycode(*c.Base),
			SelectMacOS:   dispatch.Keycode(*c.SelectMacOS),
			SelectWindows: dispatch.Keycode(*c.SelectWindows),
		}
	case c.SelectMacOS != nil || c.SelectWindows != nil:
		return l, errors.New("select_macos and select_windows require base")
	case c.Start != nil:
		return dispatch.LayoutAt(dispatch.Keycode(*c.Start))
	default:
		l = dispatch.DefaultLayout(dispatch.UserRange)
	}
	return l, l.Validate()
}

func (e EventConfig) steps(l dispatch.Layout) ([]Step, error) {
	set := 0
	for _, b := range []bool{e.Shortcut != "", e.Keycode != nil, e.Select != ""} {
		if b {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: need exactly one of shortcut, keycode, select", errBadEvent)
	}

	var kc dispatch.Keycode
	var label string
	switch {
	case e.Shortcut != "":
		id, err := shortcut.ParseID(e.Shortcut)
		if err != nil {
			return nil, err
		}
		kc, label = l.Keycode(id), id.String()
	case e.Keycode != nil:
		kc, label = dispatch.Keycode(*e.Keycode), fmt.Sprintf("0x%04X", *e.Keycode)
	default:
		p, err := shortcut.ParsePlatform(e.Select)
		if err != nil {
			return nil, err
		}
		kc = l.SelectMacOS
		if p == shortcut.Windows {
			kc = l.SelectWindows
		}
		label = "select_" + p.String()
	}

	switch strings.ToLower(e.Action) {
	case "", "tap":
		return []Step{{kc, true, label}, {kc, false, label}}, nil
	case "press":
		return []Step{{kc, true, label}}, nil
	case "release":
		return []Step{{kc, false, label}}, nil
	}
	return nil, fmt.Errorf("%w: unknown action %q", errBadEvent, e.Action)
}
