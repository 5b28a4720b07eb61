package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// tocSelectors are the structural blocks stripped from article HTML before
// rendering: the ez-toc plugin container, anything with "toc" in its class,
// and all navigation elements. The site renders its own table of contents.
var tocSelectors = []string{
	"#ez-toc-container",
	"[class*='toc']",
	"nav",
}

// ellipsisReplacer normalizes the ellipsis variants left in text after the
// HTML parse has decoded named entities.
var ellipsisReplacer = strings.NewReplacer(
	"[…]", "...",
	"…", "...",
)

// CleanHTMLContent removes unwanted structural subtrees from article HTML
// while preserving the rest of the markup. Removal goes through a tolerant
// HTML parse, so nested content inside a removed block disappears with it
// and malformed input degrades to parser repair instead of corruption.
func CleanHTMLContent(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// fail safe: hand back the document untouched
		return strings.TrimSpace(html)
	}

	for _, sel := range tocSelectors {
		doc.Find(sel).Remove()
	}

	out, err := doc.Find("body").Html()
	if err != nil {
		return strings.TrimSpace(html)
	}
	return strings.TrimSpace(ellipsisReplacer.Replace(out))
}
