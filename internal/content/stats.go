package content

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var numericPrefixPattern = regexp.MustCompile(`^[\d,]+`)

// SplitStatValue splits a stat value like "500,000+" into its leading integer
// (500000) and trailing suffix ("+") for counter rendering. The parse is
// best-effort: values with no digit prefix ("UNESCO") return ok=false and
// callers render the raw string instead.
func SplitStatValue(value string) (n int, suffix string, ok bool) {
	prefix := numericPrefixPattern.FindString(value)
	if prefix == "" {
		return 0, value, false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(prefix, ",", ""))
	if err != nil {
		return 0, value, false
	}
	return n, strings.TrimPrefix(value, prefix), true
}

// FormatDate formats an ISO publish date ("2006-01-02" or RFC 3339) for
// display as "January 2, 2006". Unparseable input passes through unchanged.
func FormatDate(iso string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return iso
}
