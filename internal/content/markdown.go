package content

import (
	"html"
	"regexp"
	"strings"
)

// The renderer supports a deliberately small markdown subset: **bold**,
// *italic*, _italic_, ## and ### headers, "- " bullets and "1. " numbered
// items. It is a single sequential substitution pass, not a parser; nested or
// adjacent markup outside the subset renders partially (the bold pattern
// refuses to cross an inner asterisk) and re-rendering already-rendered HTML
// escapes it again.
var (
	boldPattern     = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern   = regexp.MustCompile(`\*([^*]+)\*`)
	emphasisPattern = regexp.MustCompile(`_([^_]+)_`)
	numberedPattern = regexp.MustCompile(`^(\d+)\.\s(.+)`)
)

// RenderInline renders the inline subset (bold/italic) of a single line of
// text to HTML. Input is HTML-escaped before substitution.
func RenderInline(text string) string {
	out := html.EscapeString(text)
	out = boldPattern.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicPattern.ReplaceAllString(out, "<em>$1</em>")
	out = emphasisPattern.ReplaceAllString(out, "<em>$1</em>")
	return out
}

// RenderBlocks renders multi-line article text to HTML, line by line. Blank
// lines separate blocks; consecutive list items are grouped into a single
// <ul> or <ol>.
func RenderBlocks(text string) string {
	var b strings.Builder
	listTag := "" // open list element, "" when none

	closeList := func() {
		if listTag != "" {
			b.WriteString("</" + listTag + ">\n")
			listTag = ""
		}
	}
	openList := func(tag string) {
		if listTag != tag {
			closeList()
			b.WriteString("<" + tag + ">\n")
			listTag = tag
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "## "):
			closeList()
			b.WriteString("<h2>" + RenderInline(strings.TrimPrefix(trimmed, "## ")) + "</h2>\n")
		case strings.HasPrefix(trimmed, "### "):
			closeList()
			b.WriteString("<h3>" + RenderInline(strings.TrimPrefix(trimmed, "### ")) + "</h3>\n")
		case strings.HasPrefix(trimmed, "- "):
			openList("ul")
			b.WriteString("<li>" + RenderInline(strings.TrimPrefix(trimmed, "- ")) + "</li>\n")
		default:
			if m := numberedPattern.FindStringSubmatch(trimmed); m != nil {
				openList("ol")
				b.WriteString("<li>" + RenderInline(m[2]) + "</li>\n")
				continue
			}
			closeList()
			b.WriteString("<p>" + RenderInline(trimmed) + "</p>\n")
		}
	}
	closeList()

	return b.String()
}
