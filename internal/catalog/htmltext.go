package catalog

import (
	"strings"

	"golang.org/x/net/html"
)

// TextContent strips any markup from a rich-text fragment and collapses
// whitespace, returning the plain text. Plain strings pass through unchanged.
func TextContent(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(b.String()), " ")
}
