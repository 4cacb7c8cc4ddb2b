// Package validation contains small helpers for pointer fields and wire
// formatting shared by the bridge layer.
package validation

import "time"

func StringPtr(s string) *string {
	return &s
}

// StringPtrIfNotEmpty returns a pointer to s when not empty, otherwise nil.
func StringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func BoolPtr(b bool) *bool {
	return &b
}

func IntPtr(i int) *int {
	return &i
}

func TimePtr(t time.Time) *time.Time {
	return &t
}

// GetStringOrEmpty returns the string value or an empty string if nil.
func GetStringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetBoolOrFalse returns the bool value or false if nil.
func GetBoolOrFalse(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

// GetTimeOrEmpty returns the time value or the zero time if nil.
func GetTimeOrEmpty(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// FormatTimeToString renders a timestamp as RFC3339 in UTC, the wire format
// for every timestamp this service emits.
func FormatTimeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatTimePtrToString renders a timestamp pointer as RFC3339 in UTC, or ""
// when nil.
func FormatTimePtrToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatTimeToString(*t)
}
