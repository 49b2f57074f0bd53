//go:build darwin

package main

// Registers the macOS provider (a no-op when built without cgo).
import _ "github.com/mj1618/axpost/internal/platform/darwin"
