package blogmark

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify converts a post title to a URL- and filesystem-safe slug:
// accented characters are folded to ASCII via NFKD decomposition,
// everything is lower-cased, and runs of non-alphanumeric characters
// collapse to single hyphens. Titles with no ASCII representation
// (e.g. fully CJK titles) yield ""; use FallbackSlug then.
func Slugify(title string) string {
	folded, _, err := transform.String(transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
	), title)
	if err != nil {
		folded = title
	}

	var sb strings.Builder
	prevHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.Trim(sb.String(), "-")
}

// FallbackSlug builds a deterministic-prefix slug for posts whose title
// slugifies to nothing: post-<UTC yyyymmdd-hhmm> plus a short random
// suffix to keep concurrent runs from colliding.
func FallbackSlug(now time.Time) string {
	return fmt.Sprintf("post-%s%03d", now.UTC().Format("20060102-1504"), 100+rand.Intn(900))
}
