package normalize

import (
	"math"
	"strconv"
	"strings"
)

// Goals parses a goal count. Older feeds occasionally carry float forms
// such as "2.0"; anything that is not a whole, non-negative number yields nil.
func Goals(v *string) *int {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return nil
		}
		return &n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return nil
	}
	n := int(f)
	return &n
}
