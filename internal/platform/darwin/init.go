//go:build darwin && cgo

package darwin

import "github.com/mj1618/axpost/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Poster:      NewKeyboardPoster(),
			Elements:    NewElementSource(),
			Apps:        NewAppResolver(),
			Permissions: NewPermissionChecker(),
		}, nil
	}
	platform.RequestPermissionsFunc = RequestAccessibilityPermission
}
