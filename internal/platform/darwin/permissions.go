//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include <ApplicationServices/ApplicationServices.h>

static int is_trusted() {
    return AXIsProcessTrusted();
}

// Shows the System Settings prompt when the process is not yet trusted.
static int request_trust() {
    CFMutableDictionaryRef opts = CFDictionaryCreateMutable(NULL, 0, NULL, NULL);
    CFDictionarySetValue(opts, kAXTrustedCheckOptionPrompt, kCFBooleanTrue);
    Boolean trusted = AXIsProcessTrustedWithOptions(opts);
    CFRelease(opts);
    return trusted ? 1 : 0;
}
*/
import "C"

// DarwinPermissionChecker implements the platform.PermissionChecker interface for macOS.
type DarwinPermissionChecker struct{}

// NewPermissionChecker creates a new macOS permission checker.
func NewPermissionChecker() *DarwinPermissionChecker {
	return &DarwinPermissionChecker{}
}

func (c *DarwinPermissionChecker) IsTrusted() bool {
	return IsAccessibilityTrusted()
}

// IsAccessibilityTrusted returns true if the process has accessibility permission.
func IsAccessibilityTrusted() bool {
	return C.is_trusted() != 0
}

// RequestAccessibilityPermission asks macOS to prompt for accessibility trust.
// It returns immediately; the grant takes effect after the user responds.
func RequestAccessibilityPermission() {
	C.request_trust()
}
