//go:build darwin

// Package darwin provides macOS platform support using the Accessibility API.
// All functionality requires CGo (Objective-C frameworks).
// When CGo is disabled, the package compiles as a no-op stub and
// platform.NewProvider reports platform.ErrUnsupported.
package darwin
