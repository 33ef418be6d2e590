// Package keycode models a physical key chord: one base key plus a set of
// modifiers. Keys are HID keyboard usage ids, modifiers use the bit layout of
// the HID report modifier byte.
package keycode

// Key is a HID keyboard usage id.
type Key uint8

// KeyNo means "no key". A Combo with this base key sends nothing.
const KeyNo Key = 0x00

const (
	KeyA Key = 0x04 + iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyMinus
	KeyEqual
	KeyLBracket
	KeyRBracket
)

const (
	KeyGrave Key = 0x35

	KeyF1 Key = 0x3A + iota - 1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyPrintScreen
)

const (
	KeyHome     Key = 0x4A
	KeyPageUp   Key = 0x4B
	KeyDelete   Key = 0x4C
	KeyEnd      Key = 0x4D
	KeyPageDown Key = 0x4E
	KeyRight    Key = 0x4F
	KeyLeft     Key = 0x50
	KeyDown     Key = 0x51
	KeyUp       Key = 0x52

	// System and media usages, numbered as the firmware's basic keycode range.
	KeySystemSleep Key = 0xA6
	KeyMediaEject  Key = 0xB0

	KeyLCtrl  Key = 0xE0
	KeyLShift Key = 0xE1
	KeyLAlt   Key = 0xE2
	KeyLGUI   Key = 0xE3
)

// Mod is a set of modifier flags.
type Mod uint8

const (
	ModCtrl  Mod = 0x01
	ModShift Mod = 0x02
	ModAlt   Mod = 0x04
	ModGUI   Mod = 0x08

	modMask = ModCtrl | ModShift | ModAlt | ModGUI
)

// Has reports whether every flag of m2 is set in m.
func (m Mod) Has(m2 Mod) bool { return m&m2 == m2 }

// Combo is a base key pressed together with a set of modifiers.
type Combo struct {
	Key  Key
	Mods Mod
}

// NoOp is the sentinel combination for a shortcut that has no equivalent on
// a platform.
var NoOp = Combo{}

// IsNoOp reports whether c sends nothing.
func (c Combo) IsNoOp() bool { return c.Key == KeyNo }

// K returns the bare key k.
func K(k Key) Combo { return Combo{Key: k} }

// C adds Ctrl to c.
func C(c Combo) Combo { return c.With(ModCtrl) }

// S adds Shift to c.
func S(c Combo) Combo { return c.With(ModShift) }

// A adds Alt (Option on macOS) to c.
func A(c Combo) Combo { return c.With(ModAlt) }

// G adds GUI (Cmd on macOS, Win on Windows) to c.
func G(c Combo) Combo { return c.With(ModGUI) }

// With returns c with the modifiers m added.
func (c Combo) With(m Mod) Combo {
	c.Mods |= m & modMask
	return c
}

// Encode packs c into the firmware's 16-bit keycode form: the base key in the
// low byte and the modifier flags in the high nibble (0x0100 Ctrl, 0x0200
// Shift, 0x0400 Alt, 0x0800 GUI). NoOp encodes to 0.
func (c Combo) Encode() uint16 {
	if c.IsNoOp() {
		return 0
	}
	return uint16(c.Mods&modMask)<<8 | uint16(c.Key)
}

// Decode is the inverse of Encode. Bits above the modifier nibble are ignored.
func Decode(v uint16) Combo {
	c := Combo{Key: Key(v & 0xFF), Mods: Mod(v>>8) & modMask}
	if c.IsNoOp() {
		return NoOp
	}
	return c
}
