//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdint.h>

static uintptr_t ax_create_application(pid_t pid) {
    return (uintptr_t)AXUIElementCreateApplication(pid);
}

static uintptr_t ax_create_system_wide(void) {
    return (uintptr_t)AXUIElementCreateSystemWide();
}

static void ax_release(uintptr_t el) {
    if (el) CFRelease((CFTypeRef)el);
}
*/
import "C"

import (
	"fmt"

	"github.com/mj1618/axpost/internal/platform"
)

// DarwinElementSource implements the platform.ElementSource interface for macOS.
type DarwinElementSource struct{}

// NewElementSource creates a new macOS element source.
func NewElementSource() *DarwinElementSource {
	return &DarwinElementSource{}
}

func (s *DarwinElementSource) ApplicationElement(pid int) (platform.Element, error) {
	if pid <= 0 {
		return 0, fmt.Errorf("invalid pid %d", pid)
	}
	el := platform.Element(C.ax_create_application(C.pid_t(pid)))
	if el == 0 {
		return 0, fmt.Errorf("failed to create accessibility element for pid %d", pid)
	}
	return el, nil
}

func (s *DarwinElementSource) SystemWideElement() (platform.Element, error) {
	el := platform.Element(C.ax_create_system_wide())
	if el == 0 {
		return 0, fmt.Errorf("failed to create system-wide accessibility element")
	}
	return el, nil
}

func (s *DarwinElementSource) Release(el platform.Element) {
	C.ax_release(C.uintptr_t(el))
}
