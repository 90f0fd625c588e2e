package common

import (
	"fmt"
	"strings"
	"time"
)

func GetResponseTime(init time.Time) string {
	timeDiff := time.Since(init).Milliseconds()
	return fmt.Sprintf("%dms", timeDiff)
}

// NormalizeSearch lowercases and trims a search term for ILIKE-style
// matching.
func NormalizeSearch(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
