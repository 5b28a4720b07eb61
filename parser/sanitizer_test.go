package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EISEC/spb-remont/parser"
)

func TestCleanHTMLContentRemovesEzToc(t *testing.T) {
	in := `<p>Вступление</p><div id="ez-toc-container"><ul><li><a href="#s1">Раздел 1</a></li></ul></div><p>Основной текст</p>`
	got := parser.CleanHTMLContent(in)
	assert.Equal(t, "<p>Вступление</p><p>Основной текст</p>", got)
}

func TestCleanHTMLContentRemovesTocByClass(t *testing.T) {
	in := `<div class="lwptoc_wrapper"><div class="inner">x</div></div><p>Текст</p>`
	got := parser.CleanHTMLContent(in)
	assert.Equal(t, "<p>Текст</p>", got)
}

func TestCleanHTMLContentRemovesNavWithNestedContent(t *testing.T) {
	in := `<nav class="menu"><ul><li><a href="#a">Оглавление</a></li></ul></nav><h2>Этапы ремонта</h2>`
	got := parser.CleanHTMLContent(in)
	assert.Equal(t, "<h2>Этапы ремонта</h2>", got)
	assert.NotContains(t, got, "Оглавление")
}

func TestCleanHTMLContentRemovesEveryOccurrence(t *testing.T) {
	block := `<div id="ez-toc-container"><p>toc</p></div>`
	in := block + "<p>A</p>" + `<nav>n1</nav>` + "<p>B</p>" + `<nav>n2</nav>`
	got := parser.CleanHTMLContent(in)
	assert.Equal(t, "<p>A</p><p>B</p>", got)
}

func TestCleanHTMLContentPreservesMarkup(t *testing.T) {
	in := `<h2>Сроки</h2><p>Косметический ремонт — <strong>2–4 недели</strong>.</p><img src="/images/work.jpg"/>`
	got := parser.CleanHTMLContent(in)
	assert.Contains(t, got, "<strong>2–4 недели</strong>")
	assert.Contains(t, got, "<h2>Сроки</h2>")
	assert.Contains(t, got, `src="/images/work.jpg"`)
}

func TestCleanHTMLContentNormalizesEllipsis(t *testing.T) {
	assert.Equal(t, "<p>Далее...</p>", parser.CleanHTMLContent("<p>Далее&hellip;</p>"))
	assert.Equal(t, "<p>Читать ...</p>", parser.CleanHTMLContent("<p>Читать […]</p>"))
}

func TestCleanHTMLContentToleratesMalformedInput(t *testing.T) {
	in := `<div><p>незакрытый абзац<div id="ez-toc-container">toc`
	got := parser.CleanHTMLContent(in)
	assert.Contains(t, got, "незакрытый абзац")
	assert.NotContains(t, got, "toc")
}

func TestCleanHTMLContentEmptyInput(t *testing.T) {
	assert.Equal(t, "", parser.CleanHTMLContent(""))
	assert.Equal(t, "", strings.TrimSpace(parser.CleanHTMLContent("   ")))
}
