package cmd

import (
	"fmt"
	"testing"

	"github.com/mj1618/axpost/internal/platform"
)

type postCall struct {
	target     platform.Element
	charCode   platform.CharCode
	virtualKey platform.KeyCode
	keyDown    bool
	// live reports whether the caller still held the handle during the post.
	live bool
}

// fakeElements hands out fake handles and tracks which are still held.
type fakeElements struct {
	live     map[platform.Element]int
	released []platform.Element
	err      error
}

func newFakeElements() *fakeElements {
	return &fakeElements{live: make(map[platform.Element]int)}
}

func (f *fakeElements) ApplicationElement(pid int) (platform.Element, error) {
	if f.err != nil {
		return 0, f.err
	}
	el := platform.Element(0x10000 + pid)
	f.live[el]++
	return el, nil
}

func (f *fakeElements) SystemWideElement() (platform.Element, error) {
	if f.err != nil {
		return 0, f.err
	}
	el := platform.Element(0xAAAA)
	f.live[el]++
	return el, nil
}

func (f *fakeElements) Release(el platform.Element) {
	f.released = append(f.released, el)
	if f.live[el] > 0 {
		f.live[el]--
		if f.live[el] == 0 {
			delete(f.live, el)
		}
	}
}

type fakeApps struct {
	front  int
	byName map[string]int
}

func (f *fakeApps) FrontmostPID() (int, error) {
	if f.front == 0 {
		return 0, fmt.Errorf("no frontmost application")
	}
	return f.front, nil
}

func (f *fakeApps) PIDForApp(name string) (int, error) {
	if pid, ok := f.byName[name]; ok {
		return pid, nil
	}
	return 0, fmt.Errorf("application %q is not running", name)
}

type fakePermissions bool

func (f fakePermissions) IsTrusted() bool { return bool(f) }

// fakeBackend is a provider whose poster records every call and returns a fixed status.
type fakeBackend struct {
	provider *platform.Provider
	elements *fakeElements
	calls    []postCall
	status   platform.AXError
}

func newFakeBackend(status platform.AXError) *fakeBackend {
	b := &fakeBackend{elements: newFakeElements(), status: status}
	b.provider = &platform.Provider{
		Poster: platform.KeyboardPosterFunc(func(target platform.Element, charCode platform.CharCode, virtualKey platform.KeyCode, keyDown bool) platform.AXError {
			b.calls = append(b.calls, postCall{
				target:     target,
				charCode:   charCode,
				virtualKey: virtualKey,
				keyDown:    keyDown,
				live:       b.elements.live[target] > 0,
			})
			return b.status
		}),
		Elements:    b.elements,
		Apps:        &fakeApps{front: 100, byName: map[string]int{"TextEdit": 200, "Safari": 300}},
		Permissions: fakePermissions(true),
	}
	return b
}

// install registers the backend as the platform provider for the test.
func (b *fakeBackend) install(t *testing.T) {
	t.Helper()
	orig := platform.NewProviderFunc
	platform.NewProviderFunc = func() (*platform.Provider, error) { return b.provider, nil }
	t.Cleanup(func() { platform.NewProviderFunc = orig })
}
