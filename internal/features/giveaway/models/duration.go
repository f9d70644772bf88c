package models

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var durationToken = regexp.MustCompile(`(?i)(\d+)\s*([dhms])`)

// ParseDuration sums every `<integer><unit>` token in s, with units d/h/m/s
// (case-insensitive, whitespace tolerant). Repeated units accumulate, so
// "1h 1h" is two hours. Returns false for empty, token-free or non-positive
// input.
func ParseDuration(s string) (time.Duration, bool) {
	var total time.Duration
	for _, m := range durationToken.FindAllStringSubmatch(s, -1) {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, false
		}
		switch strings.ToLower(m[2]) {
		case "d":
			total += time.Duration(n) * 24 * time.Hour
		case "h":
			total += time.Duration(n) * time.Hour
		case "m":
			total += time.Duration(n) * time.Minute
		case "s":
			total += time.Duration(n) * time.Second
		}
	}
	if total <= 0 {
		return 0, false
	}
	return total, true
}
