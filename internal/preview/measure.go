package preview

import (
	"strings"

	"golang.org/x/net/html"
)

// Measurer estimates the rendered content height of a document
// fragment. The canvas has no layout engine, so hosts embed their own
// measurement strategy; the default is a deterministic structural
// estimate good enough for scroll sizing.
type Measurer interface {
	ContentHeight(root *html.Node) int
}

// estimator is the default Measurer. It charges a fixed line height
// per block-level element plus one line per wrapped text run.
type estimator struct {
	lineHeight int
}

func newEstimator() Measurer { return estimator{lineHeight: 24} }

var inlineTags = map[string]bool{
	"a": true, "span": true, "b": true, "strong": true, "i": true,
	"em": true, "u": true, "small": true, "code": true, "img": true,
	"input": true, "br": true,
}

func (e estimator) ContentHeight(root *html.Node) int {
	if root == nil {
		return 0
	}
	blocks := 0
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && !inlineTags[n.Data] && n != root {
			blocks++
		}
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) != "" {
			blocks++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(root)
	return blocks * e.lineHeight
}
