//go:build !windows

package main

import (
	"errors"

	"github.com/hashicorp/go-hclog"

	"github.com/tischda/osshortcuts/dispatch"
)

var errInjectUnsupported = errors.New("key injection is only supported on windows")

func newInjectHost(hclog.Logger) (dispatch.Host, error) {
	return nil, errInjectUnsupported
}
