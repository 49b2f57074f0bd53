package platform

import (
	"sort"
	"strings"
)

// macOS virtual key codes from Carbon Events.h (ANSI layout positions).
var keyCodeMap = map[string]KeyCode{
	"a": 0x00, "b": 0x0B, "c": 0x08, "d": 0x02, "e": 0x0E, "f": 0x03,
	"g": 0x05, "h": 0x04, "i": 0x22, "j": 0x26, "k": 0x28, "l": 0x25,
	"m": 0x2E, "n": 0x2D, "o": 0x1F, "p": 0x23, "q": 0x0C, "r": 0x0F,
	"s": 0x01, "t": 0x11, "u": 0x20, "v": 0x09, "w": 0x0D, "x": 0x07,
	"y": 0x10, "z": 0x06,
	"0": 0x1D, "1": 0x12, "2": 0x13, "3": 0x14, "4": 0x15,
	"5": 0x17, "6": 0x16, "7": 0x1A, "8": 0x1C, "9": 0x19,
	"minus": 0x1B, "equal": 0x18, "leftbracket": 0x21, "rightbracket": 0x1E,
	"quote": 0x27, "semicolon": 0x29, "backslash": 0x2A, "comma": 0x2B,
	"slash": 0x2C, "period": 0x2F, "grave": 0x32,
	"return": 0x24, "enter": 0x24, "tab": 0x30, "space": 0x31,
	"delete": 0x33, "backspace": 0x33, "forwarddelete": 0x75,
	"escape": 0x35, "esc": 0x35, "help": 0x72,
	"up": 0x7E, "down": 0x7D, "left": 0x7B, "right": 0x7C,
	"home": 0x73, "end": 0x77, "pageup": 0x74, "pagedown": 0x79,
	"cmd": 0x37, "command": 0x37, "shift": 0x38, "capslock": 0x39,
	"alt": 0x3A, "opt": 0x3A, "option": 0x3A, "ctrl": 0x3B, "control": 0x3B,
	"rightshift": 0x3C, "rightoption": 0x3D, "rightcontrol": 0x3E, "fn": 0x3F,
	"volumeup": 0x48, "volumedown": 0x49, "mute": 0x4A,
	"f1": 0x7A, "f2": 0x78, "f3": 0x63, "f4": 0x76, "f5": 0x60,
	"f6": 0x61, "f7": 0x62, "f8": 0x64, "f9": 0x65, "f10": 0x6D,
	"f11": 0x67, "f12": 0x6F, "f13": 0x69, "f14": 0x6B, "f15": 0x71,
	"f16": 0x6A, "f17": 0x40, "f18": 0x4F, "f19": 0x50, "f20": 0x5A,
}

// LookupKeyCode returns the virtual key code for a key name (case-insensitive).
func LookupKeyCode(name string) (KeyCode, bool) {
	code, ok := keyCodeMap[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// KeyNames returns all known key names in sorted order.
func KeyNames() []string {
	names := make([]string, 0, len(keyCodeMap))
	for name := range keyCodeMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
