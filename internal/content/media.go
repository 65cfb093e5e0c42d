// Package content holds pure, stateless transforms over CMS content. Nothing
// here performs I/O, and malformed input always yields a documented fallback
// value rather than an error: a bad content field must never block a render.
package content

import (
	"strings"

	"github.com/thebigtalk/bigtalk/internal/strapi"
)

// MediaURL resolves a media reference to an absolute URL. Absolute URLs pass
// through unchanged; relative paths are prefixed with the CMS base URL. A nil
// or empty reference yields "".
func MediaURL(media *strapi.Media, baseURL string) string {
	if media == nil || media.URL == "" {
		return ""
	}
	if strings.HasPrefix(media.URL, "http") {
		return media.URL
	}
	return strings.TrimRight(baseURL, "/") + media.URL
}
