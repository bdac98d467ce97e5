package version

// Version is overridden at link time with -ldflags "-X .../version.Version=v1.2.3".
var Version = "v0.1.0-dev"

// String returns the banner printed by `toklex version`.
func String() string { return "toklex " + Version }
