package main

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/tischda/osshortcuts/dispatch"
	"github.com/tischda/osshortcuts/keycode"
)

// logHost logs every combination it is asked to inject and forwards it to
// next, if any.
type logHost struct {
	logger hclog.Logger
	next   dispatch.Host
	held   map[keycode.Combo]int
}

func newLogHost(logger hclog.Logger, next dispatch.Host) *logHost {
	return &logHost{logger: logger, next: next, held: make(map[keycode.Combo]int)}
}

func (h *logHost) Register(c keycode.Combo) {
	h.held[c]++
	h.logger.Info("register", "combo", c.String(), "code", hexCode(c))
	if h.next != nil {
		h.next.Register(c)
	}
}

func (h *logHost) Unregister(c keycode.Combo) {
	if h.held[c] == 0 {
		h.logger.Warn("unregister without register", "combo", c.String())
	} else {
		h.held[c]--
	}
	h.logger.Info("unregister", "combo", c.String(), "code", hexCode(c))
	if h.next != nil {
		h.next.Unregister(c)
	}
}

// stuck returns the combinations still held down.
func (h *logHost) stuck() []keycode.Combo {
	var out []keycode.Combo
	for c, n := range h.held {
		for i := 0; i < n; i++ {
			out = append(out, c)
		}
	}
	return out
}

func hexCode(c keycode.Combo) string {
	return fmt.Sprintf("0x%04X", c.Encode())
}
