//go:build !windows

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayInjectUnsupported(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs([]string{"replay", writeTemp(t, ""), "--inject"})
	err := root.Execute()
	require.ErrorIs(t, err, errInjectUnsupported)
	assert.Empty(t, stdout.String())
}
