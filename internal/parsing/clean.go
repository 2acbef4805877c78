package parsing

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	tagRe       = regexp.MustCompile(`<[a-zA-Z/!][^>]*>`)
	blankRunsRe = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes pasted notification text: CRLF line endings,
// HTML markup from rich-text paste, and runs of blank lines.
func CleanText(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	if tagRe.MatchString(text) {
		text = stripHTML(text)
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(strings.TrimSpace(line), "| ")
	}
	text = strings.Join(lines, "\n")
	text = blankRunsRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// stripHTML flattens markup to text while keeping rows and cells on
// separate, splittable lines.
func stripHTML(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return tagRe.ReplaceAllString(markup, " ")
	}

	doc.Find("script, style").Remove()
	doc.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithHtml("\n")
	})
	doc.Find("td, th").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" | ")
	})
	doc.Find("p, div, tr, li, h1, h2, h3, h4, table, ul, ol").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return doc.Text()
}
