package platform

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Element is an opaque accessibility element handle (an AXUIElementRef on macOS).
// The zero value is the null handle.
type Element uintptr

// CharCode is the character a synthetic key event represents (CGCharCode).
type CharCode uint16

// KeyCode is a virtual key code identifying a physical key position (CGKeyCode).
type KeyCode uint16

// AXError is a status code from the accessibility error domain.
type AXError int32

const (
	AXErrorSuccess                           AXError = 0
	AXErrorFailure                           AXError = -25200
	AXErrorIllegalArgument                   AXError = -25201
	AXErrorInvalidUIElement                  AXError = -25202
	AXErrorInvalidUIElementObserver          AXError = -25203
	AXErrorCannotComplete                    AXError = -25204
	AXErrorAttributeUnsupported              AXError = -25205
	AXErrorActionUnsupported                 AXError = -25206
	AXErrorNotificationUnsupported           AXError = -25207
	AXErrorNotImplemented                    AXError = -25208
	AXErrorNotificationAlreadyRegistered     AXError = -25209
	AXErrorNotificationNotRegistered         AXError = -25210
	AXErrorAPIDisabled                       AXError = -25211
	AXErrorNoValue                           AXError = -25212
	AXErrorParameterizedAttributeUnsupported AXError = -25213
	AXErrorNotEnoughPrecision                AXError = -25214
)

var axErrorNames = map[AXError]string{
	AXErrorSuccess:                           "success",
	AXErrorFailure:                           "failure",
	AXErrorIllegalArgument:                   "illegal argument",
	AXErrorInvalidUIElement:                  "invalid UI element",
	AXErrorInvalidUIElementObserver:          "invalid UI element observer",
	AXErrorCannotComplete:                    "cannot complete",
	AXErrorAttributeUnsupported:              "attribute unsupported",
	AXErrorActionUnsupported:                 "action unsupported",
	AXErrorNotificationUnsupported:           "notification unsupported",
	AXErrorNotImplemented:                    "not implemented",
	AXErrorNotificationAlreadyRegistered:     "notification already registered",
	AXErrorNotificationNotRegistered:         "notification not registered",
	AXErrorAPIDisabled:                       "API disabled",
	AXErrorNoValue:                           "no value",
	AXErrorParameterizedAttributeUnsupported: "parameterized attribute unsupported",
	AXErrorNotEnoughPrecision:                "not enough precision",
}

func (e AXError) String() string {
	if name, ok := axErrorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("AXError(%d)", int32(e))
}

// OK reports whether the status is AXErrorSuccess.
func (e AXError) OK() bool {
	return e == AXErrorSuccess
}

// Err returns nil for AXErrorSuccess and a *StatusError otherwise.
func (e AXError) Err() error {
	if e.OK() {
		return nil
	}
	return &StatusError{Status: e}
}

// StatusError wraps a non-success accessibility status.
type StatusError struct {
	Status AXError
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("accessibility status %d (%s)", int32(e.Status), e.Status)
	if e.Status == AXErrorAPIDisabled {
		msg += "\n\nGrant permission at: System Settings > Privacy & Security > Accessibility"
	}
	return msg
}

// ParseKeyTransition converts "down" or "up" to the key-down flag.
func ParseKeyTransition(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "down":
		return true, nil
	case "up":
		return false, nil
	default:
		return false, fmt.Errorf("unknown key state: %q (expected down or up)", s)
	}
}

// ParseCharCode converts a single character to its CharCode.
// An empty string yields 0, which lets the system derive the character from the key code.
func ParseCharCode(s string) (CharCode, error) {
	if s == "" {
		return 0, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("invalid character %q: expected exactly one character", s)
	}
	if r > 0xFFFF {
		return 0, fmt.Errorf("invalid character %q: outside the basic multilingual plane", s)
	}
	return CharCode(r), nil
}

// ParseKeyCode accepts a key name (see KeyNames) or a numeric code.
// Numbers may be decimal or 0x-prefixed hex.
func ParseKeyCode(s string) (KeyCode, error) {
	name := strings.TrimSpace(s)
	if code, ok := LookupKeyCode(name); ok {
		return code, nil
	}
	n, err := strconv.ParseUint(name, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("unknown key: %q", s)
	}
	return KeyCode(n), nil
}
