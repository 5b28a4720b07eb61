package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// wordsPerMinute is the average reading speed for Russian text.
const wordsPerMinute = 200

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// entityReplacements is the fixed entity subset WordPress emits in titles
// and excerpts. The passes run in order, each over the output of the
// previous one, so double-escaped entities cascade: &amp;#8217; decodes to
// &#8217; and then to the apostrophe. Bracketed ellipsis markers sit before
// their plain forms so they are consumed whole.
var entityReplacements = [...]struct{ entity, text string }{
	{"&nbsp;", " "},
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#8217;", "'"},
	{"&#8216;", "'"},
	{"&#8220;", `"`},
	{"&#8221;", `"`},
	{"&#8230;", "..."},
	{"[&hellip;]", "..."},
	{"&hellip;", "..."},
	{"[…]", "..."},
	{"&mdash;", "—"},
	{"&ndash;", "–"},
	{"&laquo;", "«"},
	{"&raquo;", "»"},
}

// StripHTML removes markup and decodes the fixed entity table, returning
// plain text. It is total: any string in, a plain string out.
func StripHTML(html string) string {
	text := tagPattern.ReplaceAllString(html, "")
	for _, r := range entityReplacements {
		text = strings.ReplaceAll(text, r.entity, r.text)
	}
	return strings.TrimSpace(text)
}

// CalculateReadTime estimates reading time for HTML content at 200 words
// per minute, never reporting less than one minute.
func CalculateReadTime(content string) string {
	words := strings.Fields(StripHTML(content))
	minutes := (len(words) + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d мин", minutes)
}
