//go:build winshortcuts

package shortcut

// DefaultPlatform is the platform selected at startup.
const DefaultPlatform = Windows
