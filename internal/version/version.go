package version

// AppVersion is the arcctl release version, overridable at build time via
// -ldflags "-X arcctl/internal/version.AppVersion=...".
var AppVersion = "0.1.0"
