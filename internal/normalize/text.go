package normalize

import "strings"

// Text trims surrounding whitespace. Returns nil if the input is nil or
// the result is empty.
func Text(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}
