package content

import (
	"testing"

	"github.com/thebigtalk/bigtalk/internal/strapi"
)

func TestMediaURL(t *testing.T) {
	base := "https://cms.example.com"

	if got, want := MediaURL(&strapi.Media{URL: "/uploads/pic.jpg"}, base), "https://cms.example.com/uploads/pic.jpg"; got != want {
		t.Fatalf("relative path: got %q, want %q", got, want)
	}

	absolute := "https://cdn.example.com/pic.jpg"
	if got := MediaURL(&strapi.Media{URL: absolute}, base); got != absolute {
		t.Fatalf("absolute path: got %q, want unchanged %q", got, absolute)
	}

	if got := MediaURL(nil, base); got != "" {
		t.Fatalf("nil media: got %q, want empty fallback", got)
	}
	if got := MediaURL(&strapi.Media{}, base); got != "" {
		t.Fatalf("empty url: got %q, want empty fallback", got)
	}
}

func TestMediaURLTrailingSlashBase(t *testing.T) {
	got := MediaURL(&strapi.Media{URL: "/uploads/pic.jpg"}, "https://cms.example.com/")
	if want := "https://cms.example.com/uploads/pic.jpg"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
