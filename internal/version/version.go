// Package version exposes the build version, set at link time via
// -ldflags "-X .../internal/version.Version=vX.Y.Z".
package version

// Version is the application version string.
var Version = "dev"
