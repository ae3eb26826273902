package service

import "strings"

// Slugify derives a URL slug from a title: lowercase, whitespace runs
// become single hyphens, everything outside [a-z0-9-] is stripped.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == '-':
			b.WriteRune('-')
			lastHyphen = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if !lastHyphen && b.Len() > 0 {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
