package cmd

import (
	"encoding/json"
	"fmt"
	"math"
)

// Helpers for reading loosely typed tool arguments (JSON numbers arrive as float64).
// An absent or null argument yields the zero value; a present argument of the
// wrong type is an error, never a silent default.

// StringParam returns params[key] as a string, or "" when absent.
func StringParam(params map[string]interface{}, key string) (string, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return "", nil
	}
	v, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %T", key, raw)
	}
	return v, nil
}

// OptionalIntParam returns params[key] as an int, or nil when absent.
// Fractional numbers are rejected rather than truncated.
func OptionalIntParam(params map[string]interface{}, key string) (*int, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return nil, nil
	}
	var n int
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("%s must be an integer, got %v", key, v)
		}
		n = int(v)
	case int:
		n = v
	case int64:
		n = int(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer, got %s", key, v)
		}
		n = int(i)
	default:
		return nil, fmt.Errorf("%s must be a number, got %T", key, raw)
	}
	return &n, nil
}

// BoolParam returns params[key] as a bool, or false when absent.
func BoolParam(params map[string]interface{}, key string) (bool, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return false, nil
	}
	v, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%s must be a boolean, got %T", key, raw)
	}
	return v, nil
}
