package platform

// KeyboardPoster posts synthetic keyboard events to accessibility elements.
//
// Implementations forward their arguments unchanged to a single native call
// and return its status unchanged. They never retain or release target.
type KeyboardPoster interface {
	PostKeyboardEvent(target Element, charCode CharCode, virtualKey KeyCode, keyDown bool) AXError
}

// KeyboardPosterFunc adapts an ordinary function to the KeyboardPoster interface.
type KeyboardPosterFunc func(target Element, charCode CharCode, virtualKey KeyCode, keyDown bool) AXError

// PostKeyboardEvent calls f(target, charCode, virtualKey, keyDown).
func (f KeyboardPosterFunc) PostKeyboardEvent(target Element, charCode CharCode, virtualKey KeyCode, keyDown bool) AXError {
	return f(target, charCode, virtualKey, keyDown)
}

// ElementSource creates accessibility element handles.
// Every handle it returns is owned by the caller and must be passed to Release.
type ElementSource interface {
	// ApplicationElement returns the top-level element for the process with the given PID.
	ApplicationElement(pid int) (Element, error)

	// SystemWideElement returns the system-wide accessibility element.
	SystemWideElement() (Element, error)

	// Release drops the caller's reference. Releasing the zero Element is a no-op.
	Release(el Element)
}

// AppResolver maps user-facing application selectors to process IDs.
type AppResolver interface {
	FrontmostPID() (int, error)
	PIDForApp(name string) (int, error)
}

// PermissionChecker reports whether this process is trusted for accessibility.
type PermissionChecker interface {
	IsTrusted() bool
}
