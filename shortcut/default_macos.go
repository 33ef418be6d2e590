//go:build !winshortcuts

package shortcut

// DefaultPlatform is the platform selected at startup. Build with
// -tags winshortcuts to default to Windows.
const DefaultPlatform = MacOS
