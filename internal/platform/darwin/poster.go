//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdint.h>

// AXUIElementPostKeyboardEvent is deprecated but remains the only way to
// address a keyboard event to a specific accessibility element.
static int32_t ax_post_keyboard_event(uintptr_t target, uint16_t keyChar, uint16_t virtualKey, int keyDown) {
#pragma clang diagnostic push
#pragma clang diagnostic ignored "-Wdeprecated-declarations"
    return AXUIElementPostKeyboardEvent((AXUIElementRef)target, (CGCharCode)keyChar, (CGKeyCode)virtualKey, keyDown ? 1 : 0);
#pragma clang diagnostic pop
}
*/
import "C"

import "github.com/mj1618/axpost/internal/platform"

// postKeyboardEvent is the native primitive. Tests replace it to observe forwarding.
var postKeyboardEvent = func(target platform.Element, charCode platform.CharCode, virtualKey platform.KeyCode, keyDown bool) platform.AXError {
	down := C.int(0)
	if keyDown {
		down = 1
	}
	return platform.AXError(C.ax_post_keyboard_event(C.uintptr_t(target), C.uint16_t(charCode), C.uint16_t(virtualKey), down))
}

// DarwinKeyboardPoster implements the platform.KeyboardPoster interface for macOS.
type DarwinKeyboardPoster struct{}

// NewKeyboardPoster creates a new macOS keyboard poster.
func NewKeyboardPoster() *DarwinKeyboardPoster {
	return &DarwinKeyboardPoster{}
}

// PostKeyboardEvent makes exactly one call to AXUIElementPostKeyboardEvent
// and returns its status unchanged. target is neither retained nor released.
func (p *DarwinKeyboardPoster) PostKeyboardEvent(target platform.Element, charCode platform.CharCode, virtualKey platform.KeyCode, keyDown bool) platform.AXError {
	return postKeyboardEvent(target, charCode, virtualKey, keyDown)
}
