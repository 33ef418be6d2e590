package shortcut

import (
	"errors"
	"fmt"
	"strings"
)

// Platform selects the column of the shortcut table.
type Platform uint8

const (
	MacOS Platform = iota
	Windows

	// NumPlatforms is the number of table columns.
	NumPlatforms = 2
)

// ErrUnknownPlatform is returned by ParsePlatform for an unsupported name.
var ErrUnknownPlatform = errors.New("unknown platform")

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool { return p < NumPlatforms }

func (p Platform) String() string {
	switch p {
	case MacOS:
		return "macos"
	case Windows:
		return "windows"
	}
	return fmt.Sprintf("platform(%d)", uint8(p))
}

// ParsePlatform accepts "mac", "macos", "osx", "win" and "windows" in any case.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mac", "macos", "osx":
		return MacOS, nil
	case "win", "windows":
		return Windows, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownPlatform)
}
