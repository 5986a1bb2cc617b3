// Package useragent classifies clients by their User-Agent header.
package useragent

import "regexp"

// applePattern matches iOS, iPadOS and macOS browsers. Messages can usually be
// launched from macOS as well.
var applePattern = regexp.MustCompile(`(?i)(iPhone|iPad|iPod|Macintosh)`)

// IsApple reports whether userAgent identifies an Apple platform.
func IsApple(userAgent string) bool {
	if userAgent == "" {
		return false
	}
	return applePattern.MatchString(userAgent)
}
