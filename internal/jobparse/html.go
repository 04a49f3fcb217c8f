package jobparse

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// blockTags are HTML elements that introduce a line break in the extracted
// text, so headings and list items stay on their own lines for the
// segmenter.
var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true, "tr": true, "table": true,
	"br": true, "hr": true,
}

// StripHTML converts a job posting's HTML into plain text suitable for
// Parse. Script, style, and chrome elements are removed, and block
// elements become line breaks.
func StripHTML(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, iframe, form").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}

	var sb strings.Builder
	for _, node := range body.Nodes {
		writeNodeText(&sb, node)
	}

	return sb.String(), nil
}

// writeNodeText walks the node tree appending text content, emitting
// newlines around block-level elements.
func writeNodeText(sb *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	if n.Type != html.ElementNode && n.Type != html.DocumentNode {
		return
	}

	block := n.Type == html.ElementNode && blockTags[n.Data]
	if block {
		sb.WriteString("\n")
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		writeNodeText(sb, child)
	}
	if block {
		sb.WriteString("\n")
	}
}
