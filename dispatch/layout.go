package dispatch

import (
	"errors"
	"fmt"
	"math"

	"github.com/tischda/osshortcuts/shortcut"
)

// Keycode is a code from the host firmware's 16-bit keycode space.
type Keycode uint16

// UserRange is the first keycode the host leaves free for user keycodes.
const UserRange Keycode = 0x7E00

var (
	// ErrLayoutOverflow means the shortcut block runs past the keycode space.
	ErrLayoutOverflow = errors.New("shortcut block overflows keycode space")
	// ErrLayoutOverlap means two reserved keycodes collide.
	ErrLayoutOverlap = errors.New("reserved keycodes overlap")
)

// Layout places the reserved keycodes in the host keycode space: one block of
// shortcut.Count codes starting at Base, plus one code per platform selector.
type Layout struct {
	Base          Keycode
	SelectMacOS   Keycode
	SelectWindows Keycode
}

// DefaultLayout reserves codes from start in the order the firmware declares
// its custom keycodes: the two platform selectors, then the shortcut block.
func DefaultLayout(start Keycode) Layout {
	return Layout{
		SelectMacOS:   start,
		SelectWindows: start + 1,
		Base:          start + 2,
	}
}

// LayoutAt is DefaultLayout for an arbitrary start, rejecting a start too close
// to the end of the keycode space to hold every reserved code.
func LayoutAt(start Keycode) (Layout, error) {
	if int(start)+2+shortcut.Count-1 > math.MaxUint16 {
		return Layout{}, fmt.Errorf("start 0x%04X: %w", uint16(start), ErrLayoutOverflow)
	}
	l := DefaultLayout(start)
	return l, l.Validate()
}

// Validate checks that the shortcut block fits and that no reserved codes
// collide.
func (l Layout) Validate() error {
	if int(l.Base)+shortcut.Count-1 > math.MaxUint16 {
		return fmt.Errorf("base 0x%04X: %w", uint16(l.Base), ErrLayoutOverflow)
	}
	if l.SelectMacOS == l.SelectWindows {
		return fmt.Errorf("selectors both 0x%04X: %w", uint16(l.SelectMacOS), ErrLayoutOverlap)
	}
	for _, kc := range []Keycode{l.SelectMacOS, l.SelectWindows} {
		if _, ok := l.Shortcut(kc); ok {
			return fmt.Errorf("selector 0x%04X inside shortcut block: %w", uint16(kc), ErrLayoutOverlap)
		}
	}
	return nil
}

// Keycode returns the host keycode for shortcut id.
func (l Layout) Keycode(id shortcut.ID) Keycode {
	return l.Base + Keycode(id)
}

// Shortcut maps a host keycode back to its shortcut. ok is false for any code
// outside the shortcut block.
func (l Layout) Shortcut(kc Keycode) (id shortcut.ID, ok bool) {
	if kc < l.Base {
		return 0, false
	}
	offset := int(kc - l.Base)
	if offset >= shortcut.Count {
		return 0, false
	}
	return shortcut.ID(offset), true
}

// End returns the first keycode after the shortcut block.
func (l Layout) End() int {
	return int(l.Base) + shortcut.Count
}
