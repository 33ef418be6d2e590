package main

import "github.com/tischda/osshortcuts/keycode"

// stroke is one Windows virtual-key edge.
type stroke struct {
	vk       uint16
	up       bool
	extended bool
}

type vkInfo struct {
	vk       uint16
	extended bool
}

var vkNamed = map[keycode.Key]vkInfo{
	keycode.KeyEnter:       {0x0D, false},
	keycode.KeyEscape:      {0x1B, false},
	keycode.KeyBackspace:   {0x08, false},
	keycode.KeyTab:         {0x09, false},
	keycode.KeySpace:       {0x20, false},
	keycode.KeyMinus:       {0xBD, false}, // VK_OEM_MINUS
	keycode.KeyEqual:       {0xBB, false}, // VK_OEM_PLUS
	keycode.KeyLBracket:    {0xDB, false}, // VK_OEM_4
	keycode.KeyRBracket:    {0xDD, false}, // VK_OEM_6
	keycode.KeyGrave:       {0xC0, false}, // VK_OEM_3
	keycode.KeyPrintScreen: {0x2C, true},
	keycode.KeyHome:        {0x24, true},
	keycode.KeyPageUp:      {0x21, true},
	keycode.KeyDelete:      {0x2E, true},
	keycode.KeyEnd:         {0x23, true},
	keycode.KeyPageDown:    {0x22, true},
	keycode.KeyRight:       {0x27, true},
	keycode.KeyLeft:        {0x25, true},
	keycode.KeyDown:        {0x28, true},
	keycode.KeyUp:          {0x26, true},
	keycode.KeySystemSleep: {0x5F, false},
	keycode.KeyLCtrl:       {0xA2, false},
	keycode.KeyLShift:      {0xA0, false},
	keycode.KeyLAlt:        {0xA4, false},
	keycode.KeyLGUI:        {0x5B, true},
}

// modifierKeys is the press order of modifiers; release runs it backwards.
var modifierKeys = []struct {
	mod keycode.Mod
	key keycode.Key
}{
	{keycode.ModCtrl, keycode.KeyLCtrl},
	{keycode.ModShift, keycode.KeyLShift},
	{keycode.ModAlt, keycode.KeyLAlt},
	{keycode.ModGUI, keycode.KeyLGUI},
}

// virtualKey maps a HID key to a Windows virtual-key code. ok is false for
// keys Windows has no virtual key for, such as media eject.
func virtualKey(k keycode.Key) (vkInfo, bool) {
	switch {
	case k >= keycode.KeyA && k <= keycode.KeyZ:
		return vkInfo{vk: 'A' + uint16(k-keycode.KeyA)}, true
	case k >= keycode.Key1 && k <= keycode.Key9:
		return vkInfo{vk: '1' + uint16(k-keycode.Key1)}, true
	case k == keycode.Key0:
		return vkInfo{vk: '0'}, true
	case k >= keycode.KeyF1 && k <= keycode.KeyF12:
		return vkInfo{vk: 0x70 + uint16(k-keycode.KeyF1)}, true
	}
	info, ok := vkNamed[k]
	return info, ok
}

// strokes expands a combination into virtual-key edges: modifiers then the
// base key on press, the reverse on release.
func strokes(c keycode.Combo, up bool) ([]stroke, error) {
	base, ok := virtualKey(c.Key)
	if !ok {
		return nil, &unmappedKeyError{key: c.Key}
	}
	var keys []vkInfo
	for _, m := range modifierKeys {
		if c.Mods.Has(m.mod) {
			info, _ := virtualKey(m.key)
			keys = append(keys, info)
		}
	}
	keys = append(keys, base)

	out := make([]stroke, 0, len(keys))
	if up {
		for i := len(keys) - 1; i >= 0; i-- {
			out = append(out, stroke{vk: keys[i].vk, up: true, extended: keys[i].extended})
		}
		return out, nil
	}
	for _, k := range keys {
		out = append(out, stroke{vk: k.vk, extended: k.extended})
	}
	return out, nil
}

type unmappedKeyError struct {
	key keycode.Key
}

func (e *unmappedKeyError) Error() string {
	return "no virtual key for " + e.key.String()
}
