// Package shortcut holds the catalogue of platform-dependent shortcuts: one
// logical operation per ID, and for each the key combination that performs
// it on macOS and on Windows.
package shortcut

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tischda/osshortcuts/keycode"
)

// ID identifies a logical shortcut. IDs are contiguous from 0 to Count-1 and
// double as offsets into the host's shortcut keycode block.
type ID int

const (
	// Navigation
	WordLeft ID = iota
	WordRight
	StartOfLine
	EndOfLine
	StartOfPara
	EndOfPara
	StartOfDoc
	EndOfDoc
	DelWordLeft
	DelWordRight

	// Forward and backward
	NextSearch
	PrevSearch
	BrowserBack
	BrowserFwd
	BrowserReload

	// Copy/paste/undo
	SelectAll
	CutSelection
	CopySelection
	PasteClipboard
	UndoAction
	RedoAction

	// App switcher
	AppswitchStart
	AppswitchRight
	AppswitchLeft

	// Window/tab navigation
	NextWindow
	PrevWindow
	TabRight
	TabLeft
	TabRightAlt
	TabLeftAlt

	// Zooming
	AppZoomIn
	AppZoomOut
	AppZoomReset
	ScrZoomIn
	ScrZoomOut
	ScrZoomReset

	// Screenshots
	ShotScreen
	ShotRegion

	// Window manager
	ExposeAll
	NextScreen
	PrevScreen
	Fullscreen
	ExposeWindows
	NextApp
	PrevApp
	RevealDesktop

	// System control
	ScreenLock
	SystemSleep

	// Count is the number of shortcuts.
	Count int = iota
)

// Entry is one row of the shortcut table.
type Entry struct {
	ID   ID
	Name string
	Mac  keycode.Combo
	Win  keycode.Combo
}

// Combo returns the combination for platform p, or NoOp for an unknown platform.
func (e Entry) Combo(p Platform) keycode.Combo {
	switch p {
	case MacOS:
		return e.Mac
	case Windows:
		return e.Win
	}
	return keycode.NoOp
}

// ErrUnknownShortcut is returned when a shortcut name is not in the catalogue.
var ErrUnknownShortcut = errors.New("unknown shortcut")

var (
	key = keycode.K
	ctl = keycode.C
	sft = keycode.S
	alt = keycode.A
	gui = keycode.G
)

// table is the single source of truth: shortcut names, IDs and host keycode
// offsets are all derived from it.
var table = [...]Entry{
	WordLeft:     {Name: "word_left", Mac: alt(key(keycode.KeyLeft)), Win: ctl(key(keycode.KeyLeft))},
	WordRight:    {Name: "word_right", Mac: alt(key(keycode.KeyRight)), Win: ctl(key(keycode.KeyRight))},
	StartOfLine:  {Name: "start_of_line", Mac: gui(key(keycode.KeyLeft)), Win: key(keycode.KeyHome)},
	EndOfLine:    {Name: "end_of_line", Mac: gui(key(keycode.KeyRight)), Win: key(keycode.KeyEnd)},
	StartOfPara:  {Name: "start_of_para", Mac: alt(key(keycode.KeyUp)), Win: ctl(key(keycode.KeyUp))},
	EndOfPara:    {Name: "end_of_para", Mac: alt(key(keycode.KeyDown)), Win: ctl(key(keycode.KeyDown))},
	StartOfDoc:   {Name: "start_of_doc", Mac: gui(key(keycode.KeyUp)), Win: ctl(key(keycode.KeyHome))},
	EndOfDoc:     {Name: "end_of_doc", Mac: gui(key(keycode.KeyDown)), Win: ctl(key(keycode.KeyEnd))},
	DelWordLeft:  {Name: "del_word_left", Mac: alt(key(keycode.KeyBackspace)), Win: ctl(key(keycode.KeyBackspace))},
	DelWordRight: {Name: "del_word_right", Mac: alt(key(keycode.KeyDelete)), Win: ctl(key(keycode.KeyDelete))},

	NextSearch:    {Name: "next_search", Mac: gui(key(keycode.KeyG)), Win: key(keycode.KeyF3)},
	PrevSearch:    {Name: "prev_search", Mac: sft(gui(key(keycode.KeyG))), Win: sft(key(keycode.KeyF3))},
	BrowserBack:   {Name: "browser_back", Mac: gui(key(keycode.KeyLBracket)), Win: alt(key(keycode.KeyLeft))},
	BrowserFwd:    {Name: "browser_fwd", Mac: gui(key(keycode.KeyRBracket)), Win: alt(key(keycode.KeyRight))},
	BrowserReload: {Name: "browser_reload", Mac: gui(key(keycode.KeyR)), Win: ctl(key(keycode.KeyR))},

	SelectAll:      {Name: "select_all", Mac: gui(key(keycode.KeyA)), Win: ctl(key(keycode.KeyA))},
	CutSelection:   {Name: "cut_selection", Mac: gui(key(keycode.KeyX)), Win: ctl(key(keycode.KeyX))},
	CopySelection:  {Name: "copy_selection", Mac: gui(key(keycode.KeyC)), Win: ctl(key(keycode.KeyC))},
	PasteClipboard: {Name: "paste_clipboard", Mac: gui(key(keycode.KeyV)), Win: ctl(key(keycode.KeyV))},
	UndoAction:     {Name: "undo_action", Mac: gui(key(keycode.KeyZ)), Win: ctl(key(keycode.KeyZ))},
	RedoAction:     {Name: "redo_action", Mac: sft(gui(key(keycode.KeyZ))), Win: ctl(key(keycode.KeyY))},

	// Start holds the switcher modifier down; right/left step through apps.
	AppswitchStart: {Name: "appswitch_start", Mac: key(keycode.KeyLGUI), Win: key(keycode.KeyLAlt)},
	AppswitchRight: {Name: "appswitch_right", Mac: key(keycode.KeyTab), Win: key(keycode.KeyTab)},
	AppswitchLeft:  {Name: "appswitch_left", Mac: sft(key(keycode.KeyTab)), Win: sft(key(keycode.KeyTab))},

	NextWindow:  {Name: "next_window", Mac: gui(key(keycode.KeyGrave)), Win: alt(key(keycode.KeyEscape))},
	PrevWindow:  {Name: "prev_window", Mac: sft(gui(key(keycode.KeyGrave))), Win: sft(alt(key(keycode.KeyEscape)))},
	TabRight:    {Name: "tab_right", Mac: ctl(key(keycode.KeyTab)), Win: ctl(key(keycode.KeyTab))},
	TabLeft:     {Name: "tab_left", Mac: sft(ctl(key(keycode.KeyTab))), Win: sft(ctl(key(keycode.KeyTab)))},
	TabRightAlt: {Name: "tab_right_alt", Mac: alt(gui(key(keycode.KeyRight))), Win: ctl(key(keycode.KeyTab))},
	TabLeftAlt:  {Name: "tab_left_alt", Mac: alt(gui(key(keycode.KeyLeft))), Win: sft(ctl(key(keycode.KeyTab)))},

	AppZoomIn:    {Name: "app_zoom_in", Mac: gui(key(keycode.KeyEqual)), Win: ctl(key(keycode.KeyEqual))},
	AppZoomOut:   {Name: "app_zoom_out", Mac: gui(key(keycode.KeyMinus)), Win: ctl(key(keycode.KeyMinus))},
	AppZoomReset: {Name: "app_zoom_reset", Mac: gui(key(keycode.Key0)), Win: ctl(key(keycode.Key0))},
	// macOS screen zoom must be enabled under Accessibility.
	ScrZoomIn:  {Name: "scr_zoom_in", Mac: alt(gui(key(keycode.KeyEqual))), Win: gui(key(keycode.KeyEqual))},
	ScrZoomOut: {Name: "scr_zoom_out", Mac: alt(gui(key(keycode.KeyMinus))), Win: gui(key(keycode.KeyMinus))},
	// Windows has no zoom reset; zooming out is the closest.
	ScrZoomReset: {Name: "scr_zoom_reset", Mac: alt(gui(key(keycode.Key8))), Win: gui(key(keycode.KeyMinus))},

	ShotScreen: {Name: "shot_screen", Mac: sft(gui(key(keycode.Key3))), Win: gui(key(keycode.KeyPrintScreen))},
	ShotRegion: {Name: "shot_region", Mac: sft(gui(key(keycode.Key4))), Win: gui(sft(key(keycode.KeyS)))},

	ExposeAll:     {Name: "expose_all", Mac: ctl(key(keycode.KeyUp)), Win: gui(key(keycode.KeyTab))},
	NextScreen:    {Name: "next_screen", Mac: ctl(key(keycode.KeyRight)), Win: gui(ctl(key(keycode.KeyRight)))},
	PrevScreen:    {Name: "prev_screen", Mac: ctl(key(keycode.KeyLeft)), Win: gui(ctl(key(keycode.KeyLeft)))},
	Fullscreen:    {Name: "fullscreen", Mac: gui(ctl(key(keycode.KeyF))), Win: key(keycode.KeyF11)},
	ExposeWindows: {Name: "expose_windows", Mac: ctl(key(keycode.KeyDown)), Win: gui(alt(key(keycode.KeyTab)))},
	// Next/prev app only exist inside macOS Mission Control.
	NextApp:       {Name: "next_app", Mac: key(keycode.KeyTab), Win: keycode.NoOp},
	PrevApp:       {Name: "prev_app", Mac: sft(key(keycode.KeyTab)), Win: keycode.NoOp},
	RevealDesktop: {Name: "reveal_desktop", Mac: key(keycode.KeyF11), Win: gui(key(keycode.KeyD))},

	ScreenLock:  {Name: "screen_lock", Mac: ctl(gui(key(keycode.KeyQ))), Win: gui(key(keycode.KeyL))},
	SystemSleep: {Name: "system_sleep", Mac: alt(gui(key(keycode.KeyMediaEject))), Win: key(keycode.KeySystemSleep)},
}

// The table and the ID enumeration must have the same length. Either array
// size goes negative and fails the build when they drift.
var (
	_ [len(table) - Count]struct{}
	_ [Count - len(table)]struct{}
)

var byName = func() map[string]ID {
	m := make(map[string]ID, Count)
	for i := range table {
		table[i].ID = ID(i)
		m[table[i].Name] = ID(i)
	}
	return m
}()

// Lookup returns the combination for shortcut id on platform p. An id outside
// [0, Count) panics; callers bounds-check first. An unknown platform yields
// NoOp rather than reading outside the table.
func Lookup(id ID, p Platform) keycode.Combo {
	return table[id].Combo(p)
}

// Get returns the table row for id. It panics if id is not Valid.
func Get(id ID) Entry { return table[id] }

// All returns a copy of the table in ID order.
func All() []Entry {
	out := make([]Entry, len(table))
	copy(out, table[:])
	return out
}

// Valid reports whether id is inside the catalogue.
func (id ID) Valid() bool { return id >= 0 && int(id) < Count }

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("shortcut(%d)", int(id))
	}
	return table[id].Name
}

// Keycode returns the host keycode identifier of id, e.g. "CU_COPY_SELECTION".
func (id ID) Keycode() string {
	return "CU_" + strings.ToUpper(id.String())
}

// ByName finds a shortcut by name. Dashes and case are ignored, so
// "copy-selection" and "COPY_SELECTION" both find CopySelection.
func ByName(name string) (ID, bool) {
	n := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	n = strings.TrimPrefix(n, "cu_")
	id, ok := byName[n]
	return id, ok
}

// ParseID is ByName returning ErrUnknownShortcut on a miss.
func ParseID(name string) (ID, error) {
	id, ok := ByName(name)
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownShortcut)
	}
	return id, nil
}

// Find returns every shortcut that sends c on platform p, in ID order.
func Find(c keycode.Combo, p Platform) []ID {
	var ids []ID
	for i := range table {
		if table[i].Combo(p) == c {
			ids = append(ids, ID(i))
		}
	}
	return ids
}
