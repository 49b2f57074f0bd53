//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>
#include <stdlib.h>

static pid_t ns_frontmost_pid(void) {
    @autoreleasepool {
        NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
        return app ? app.processIdentifier : -1;
    }
}

// Case-insensitive match on the localized application name.
static pid_t ns_pid_for_app(const char *name) {
    @autoreleasepool {
        NSString *target = [NSString stringWithUTF8String:name];
        if (!target) return -1;
        for (NSRunningApplication *app in [[NSWorkspace sharedWorkspace] runningApplications]) {
            NSString *n = app.localizedName;
            if (n && [n caseInsensitiveCompare:target] == NSOrderedSame) {
                return app.processIdentifier;
            }
        }
        return -1;
    }
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// DarwinAppResolver implements the platform.AppResolver interface for macOS.
type DarwinAppResolver struct{}

// NewAppResolver creates a new macOS app resolver.
func NewAppResolver() *DarwinAppResolver {
	return &DarwinAppResolver{}
}

func (r *DarwinAppResolver) FrontmostPID() (int, error) {
	pid := int(C.ns_frontmost_pid())
	if pid <= 0 {
		return 0, fmt.Errorf("no frontmost application")
	}
	return pid, nil
}

func (r *DarwinAppResolver) PIDForApp(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("application name is empty")
	}
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	pid := int(C.ns_pid_for_app(cName))
	if pid <= 0 {
		return 0, fmt.Errorf("application %q is not running", name)
	}
	return pid, nil
}
