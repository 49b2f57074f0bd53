//go:build darwin && cgo

package darwin

import (
	"testing"

	"github.com/mj1618/axpost/internal/platform"
)

func TestInit_RegistersDarwinProvider(t *testing.T) {
	p, err := platform.NewProvider()
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if _, ok := p.Poster.(*DarwinKeyboardPoster); !ok {
		t.Errorf("Poster = %T, want *DarwinKeyboardPoster", p.Poster)
	}
	if _, ok := p.Elements.(*DarwinElementSource); !ok {
		t.Errorf("Elements = %T, want *DarwinElementSource", p.Elements)
	}
	if _, ok := p.Apps.(*DarwinAppResolver); !ok {
		t.Errorf("Apps = %T, want *DarwinAppResolver", p.Apps)
	}
	if _, ok := p.Permissions.(*DarwinPermissionChecker); !ok {
		t.Errorf("Permissions = %T, want *DarwinPermissionChecker", p.Permissions)
	}
	if platform.RequestPermissionsFunc == nil {
		t.Error("RequestPermissionsFunc not registered")
	}
}

func TestInit_EachProviderIsFresh(t *testing.T) {
	a, err := platform.NewProvider()
	if err != nil {
		t.Fatal(err)
	}
	b, err := platform.NewProvider()
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("NewProvider should return a new provider per call")
	}
}
