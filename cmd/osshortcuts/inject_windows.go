//go:build windows

package main

import (
	"fmt"
	"unsafe"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sys/windows"

	"github.com/tischda/osshortcuts/dispatch"
	"github.com/tischda/osshortcuts/keycode"
)

var (
	user32       = windows.NewLazySystemDLL("user32.dll")
	sendInputW32 = user32.NewProc("SendInput")
)

const (
	INPUT_KEYBOARD        = 1
	KEYEVENTF_EXTENDEDKEY = 0x0001
	KEYEVENTF_KEYUP       = 0x0002
)

type KEYBDINPUT struct {
	Vk        uint16
	Scan      uint16
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// INPUT is the keyboard arm of the Win32 INPUT union, padded to the size of
// the largest arm (MOUSEINPUT).
type INPUT struct {
	Type    uint32
	Ki      KEYBDINPUT
	padding uint64
}

// sendInputHost presses and releases combinations on the local desktop.
type sendInputHost struct {
	logger hclog.Logger
}

// newInjectHost returns a host that injects through SendInput.
func newInjectHost(logger hclog.Logger) (dispatch.Host, error) {
	if err := sendInputW32.Find(); err != nil {
		return nil, fmt.Errorf("SendInput: %w", err)
	}
	return &sendInputHost{logger: logger}, nil
}

func (h *sendInputHost) Register(c keycode.Combo)   { h.send(c, false) }
func (h *sendInputHost) Unregister(c keycode.Combo) { h.send(c, true) }

// send injects the virtual-key edges of c in one SendInput call so that no
// physical input interleaves with them.
//
// Parameters:
//   - c: Combination to press or release.
//   - up: True to release, false to press.
func (h *sendInputHost) send(c keycode.Combo, up bool) {
	ss, err := strokes(c, up)
	if err != nil {
		h.logger.Warn("cannot inject", "combo", c.String(), "error", err)
		return
	}
	inputs := make([]INPUT, 0, len(ss))
	for _, s := range ss {
		var flags uint32
		if s.up {
			flags |= KEYEVENTF_KEYUP
		}
		if s.extended {
			flags |= KEYEVENTF_EXTENDEDKEY
		}
		inputs = append(inputs, INPUT{Type: INPUT_KEYBOARD, Ki: KEYBDINPUT{Vk: s.vk, Flags: flags}})
	}
	n, _, err := sendInputW32.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)
	if int(n) != len(inputs) {
		h.logger.Error("SendInput failed", "combo", c.String(), "sent", n, "error", err)
	}
}
