package normalize

import (
	"strings"

	"github.com/gyeh/footstats/internal/model"
)

// ResultCode upper-cases a full-time result. Values other than H, A and D
// are kept as-is; the feed is trusted.
func ResultCode(s string) model.Result {
	return model.Result(strings.ToUpper(strings.TrimSpace(s)))
}
