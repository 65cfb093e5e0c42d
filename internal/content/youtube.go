package content

import "regexp"

// ThumbnailQuality selects a YouTube thumbnail rendition.
type ThumbnailQuality string

const (
	QualityDefault ThumbnailQuality = "default"
	QualityMedium  ThumbnailQuality = "medium"
	QualityHigh    ThumbnailQuality = "high"
	QualityMaxRes  ThumbnailQuality = "maxres"
)

// FallbackThumbnail is returned when a video URL has no extractable ID.
const FallbackThumbnail = "/images/video-placeholder.jpg"

// videoIDPattern matches the conventional YouTube URL forms: youtu.be/ID,
// v/ID, u/{c}/ID, embed/ID, watch?v=ID and &v=ID.
var videoIDPattern = regexp.MustCompile(`(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*)`)

// YouTubeID extracts the 11-character video identifier from a YouTube URL.
// The second return value is false when the URL matches no recognized form;
// operator-entered URLs are routinely malformed, so callers must handle it.
func YouTubeID(url string) (string, bool) {
	m := videoIDPattern.FindStringSubmatch(url)
	if m == nil || len(m[2]) != 11 {
		return "", false
	}
	return m[2], true
}

var thumbnailNames = map[ThumbnailQuality]string{
	QualityDefault: "default",
	QualityMedium:  "mqdefault",
	QualityHigh:    "hqdefault",
	QualityMaxRes:  "maxresdefault",
}

// Thumbnail constructs the canonical YouTube thumbnail URL for a video at the
// requested quality. Returns FallbackThumbnail when no video ID can be
// extracted, and treats an unknown quality as QualityHigh.
func Thumbnail(url string, quality ThumbnailQuality) string {
	id, ok := YouTubeID(url)
	if !ok {
		return FallbackThumbnail
	}
	name, ok := thumbnailNames[quality]
	if !ok {
		name = thumbnailNames[QualityHigh]
	}
	return "https://img.youtube.com/vi/" + id + "/" + name + ".jpg"
}

// EmbedURL constructs the YouTube embed URL for a video, or "" when no ID can
// be extracted.
func EmbedURL(url string) string {
	id, ok := YouTubeID(url)
	if !ok {
		return ""
	}
	return "https://www.youtube.com/embed/" + id
}
