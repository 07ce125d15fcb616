package utils

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLToText renders status HTML as plain text. Paragraphs are separated by
// a blank line, <br> becomes a newline, and the spans instances use to
// shorten links are honoured ("invisible" is dropped, "ellipsis" gets "…").
// Malformed input is returned unchanged.
func HTMLToText(content string) string {
	if !strings.ContainsAny(content, "<&") {
		return content
	}

	nodes, err := html.ParseFragment(strings.NewReader(content), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return content
	}

	var b strings.Builder
	for i, n := range nodes {
		if i > 0 && n.DataAtom == atom.P {
			b.WriteString("\n\n")
		}
		writeText(&b, n)
	}

	return strings.TrimSpace(b.String())
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Br:
			b.WriteString("\n")
			return
		case atom.Span:
			if hasClass(n, "invisible") {
				return
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.P && c.PrevSibling != nil {
			b.WriteString("\n\n")
		}
		writeText(b, c)
	}

	if n.Type == html.ElementNode && n.DataAtom == atom.Span && hasClass(n, "ellipsis") {
		b.WriteString("…")
	}
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}
