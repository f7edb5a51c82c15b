package dom

import (
	"io"
	"strings"

	"github.com/heathj/eventoptions/webidl"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// ParseHTML builds a window whose document mirrors the parsed markup.
// Elements, their attributes and text are kept; comments and doctypes are
// dropped since nothing listens on them.
func ParseHTML(r io.Reader, features Features) (*Window, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}

	w := &Window{Features: features}
	w.Document = newNode(w, DocumentNode, "#document")
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		w.appendParsed(w.Document, c)
	}
	return w, nil
}

// ParseHTMLString is ParseHTML for in-memory markup.
func ParseHTMLString(markup string, features Features) (*Window, error) {
	return ParseHTML(strings.NewReader(markup), features)
}

func (w *Window) appendParsed(parent *Node, n *html.Node) {
	switch n.Type {
	case html.ElementNode:
		el := w.CreateElement(webidl.DOMString(n.Data))
		for _, attr := range n.Attr {
			el.Attributes[attr.Key] = attr.Val
		}
		parent.AppendChild(el)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.appendParsed(el, c)
		}
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return
		}
		text := newNode(w, TextNode, "#text")
		text.TextContent = n.Data
		parent.AppendChild(text)
	}
}
