package keycode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownKey is returned by Parse for a token that names no key or modifier.
	ErrUnknownKey = errors.New("unknown key")
	// ErrNoKey is returned by Parse when only modifiers are given.
	ErrNoKey = errors.New("no base key")
)

// keyNames holds the canonical label of each named key.
var keyNames = map[Key]string{
	KeyEnter:       "Enter",
	KeyEscape:      "Esc",
	KeyBackspace:   "Backspace",
	KeyTab:         "Tab",
	KeySpace:       "Space",
	KeyMinus:       "Minus",
	KeyEqual:       "Equal",
	KeyLBracket:    "LBracket",
	KeyRBracket:    "RBracket",
	KeyGrave:       "Grave",
	KeyPrintScreen: "PrintScreen",
	KeyHome:        "Home",
	KeyPageUp:      "PageUp",
	KeyDelete:      "Delete",
	KeyEnd:         "End",
	KeyPageDown:    "PageDown",
	KeyRight:       "Right",
	KeyLeft:        "Left",
	KeyDown:        "Down",
	KeyUp:          "Up",
	KeySystemSleep: "Sleep",
	KeyMediaEject:  "Eject",
	KeyLCtrl:       "LCtrl",
	KeyLShift:      "LShift",
	KeyLAlt:        "LAlt",
	KeyLGUI:        "LGUI",
}

// keyAliases maps lower-case names accepted by Parse to keys, on top of the
// lower-cased canonical names.
var keyAliases = map[string]Key{
	"return":    KeyEnter,
	"escape":    KeyEscape,
	"bspc":      KeyBackspace,
	"del":       KeyDelete,
	"pgup":      KeyPageUp,
	"pgdn":      KeyPageDown,
	"pagedn":    KeyPageDown,
	"-":         KeyMinus,
	"=":         KeyEqual,
	"[":         KeyLBracket,
	"]":         KeyRBracket,
	"`":         KeyGrave,
	"lbrc":      KeyLBracket,
	"rbrc":      KeyRBracket,
	"pscr":      KeyPrintScreen,
	"slep":      KeySystemSleep,
	"ejct":      KeyMediaEject,
	"lctl":      KeyLCtrl,
	"lsft":      KeyLShift,
	"lopt":      KeyLAlt,
	"lcmd":      KeyLGUI,
	"lwin":      KeyLGUI,
	"printscrn": KeyPrintScreen,
}

var modNames = map[string]Mod{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"shift":   ModShift,
	"alt":     ModAlt,
	"opt":     ModAlt,
	"option":  ModAlt,
	"gui":     ModGUI,
	"cmd":     ModGUI,
	"command": ModGUI,
	"win":     ModGUI,
	"super":   ModGUI,
	"meta":    ModGUI,
}

// String returns the label of k, e.g. "A", "F3", "PageUp".
func (k Key) String() string {
	switch {
	case k == KeyNo:
		return "No"
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case k >= Key1 && k <= Key9:
		return string(rune('1' + k - Key1))
	case k == Key0:
		return "0"
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("0x%02X", uint8(k))
}

// String renders c as "Ctrl+Shift+Tab". Modifiers always come in the order
// Ctrl, Shift, Alt, GUI.
func (c Combo) String() string {
	if c.IsNoOp() {
		return "NoOp"
	}
	var b strings.Builder
	for _, m := range []struct {
		mod  Mod
		name string
	}{{ModCtrl, "Ctrl"}, {ModShift, "Shift"}, {ModAlt, "Alt"}, {ModGUI, "GUI"}} {
		if c.Mods.Has(m.mod) {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	b.WriteString(c.Key.String())
	return b.String()
}

// Parse converts a '+' separated chord such as "cmd+shift+g" into a Combo.
// Names are case-insensitive. "noop" parses to NoOp.
func Parse(s string) (Combo, error) {
	if strings.EqualFold(strings.TrimSpace(s), "noop") {
		return NoOp, nil
	}
	var c Combo
	for _, p := range strings.Split(s, "+") {
		p = strings.TrimSpace(strings.ToLower(p))
		if p == "" {
			// "ctrl++" names the plus key, which is not in the catalogue.
			return NoOp, fmt.Errorf("parse %q: %w", s, ErrUnknownKey)
		}
		if m, ok := modNames[p]; ok && c.Key == KeyNo {
			c.Mods |= m
			continue
		}
		if c.Key != KeyNo {
			return NoOp, fmt.Errorf("parse %q: more than one base key", s)
		}
		k, err := ParseKey(p)
		if err != nil {
			return NoOp, fmt.Errorf("parse %q: %w", s, err)
		}
		c.Key = k
	}
	if c.Key == KeyNo {
		return NoOp, fmt.Errorf("parse %q: %w", s, ErrNoKey)
	}
	return c, nil
}

// ParseKey maps a single key name to its Key.
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) == 1 {
		if s >= "a" && s <= "z" {
			return KeyA + Key(s[0]-'a'), nil
		}
		if s >= "1" && s <= "9" {
			return Key1 + Key(s[0]-'1'), nil
		}
		if s == "0" {
			return Key0, nil
		}
	}
	if len(s) >= 2 && s[0] == 'f' {
		var n int
		if _, err := fmt.Sscanf(s, "f%d", &n); err == nil && n >= 1 && n <= 12 && s == fmt.Sprintf("f%d", n) {
			return KeyF1 + Key(n-1), nil
		}
	}
	if k, ok := keyAliases[s]; ok {
		return k, nil
	}
	for k, name := range keyNames {
		if strings.ToLower(name) == s {
			return k, nil
		}
	}
	return KeyNo, fmt.Errorf("%q: %w", s, ErrUnknownKey)
}
