package markup

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/pagecraft/styler"
	"github.com/pagecraft/styler/internal/preview"
)

// typeForTag classifies imported elements into builder layer types.
var typeForTag = map[string]string{
	"p":       "paragraph",
	"h1":      "heading",
	"h2":      "heading",
	"h3":      "heading",
	"h4":      "heading",
	"h5":      "heading",
	"h6":      "heading",
	"a":       "link",
	"button":  "button",
	"img":     "image",
	"ul":      "list",
	"ol":      "list",
	"li":      "listItem",
	"section": "section",
	"form":    "form",
	"input":   "input",
}

// skippedTags are document plumbing that never becomes a layer.
var skippedTags = map[string]bool{
	"html": true, "head": true, "title": true, "meta": true,
	"link": true, "script": true, "style": true, "noscript": true,
}

// ImportFile lifts one HTML file into a builder layer tree. Every
// element becomes a layer with a fresh id; class attributes are kept
// verbatim and additionally lowered into a structured design so the
// style panel opens populated.
func ImportFile(path string) ([]*preview.Layer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Import(f)
}

// Import lifts an HTML document read from r into a layer tree.
func Import(r io.Reader) ([]*preview.Layer, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	body := findBody(doc)
	if body == nil {
		return nil, nil
	}
	var layers []*preview.Layer
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if layer := importNode(c); layer != nil {
			layers = append(layers, layer)
		}
	}
	return layers, nil
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}

func importNode(n *html.Node) *preview.Layer {
	if n.Type != html.ElementNode || skippedTags[n.Data] {
		return nil
	}

	layer := &preview.Layer{
		ID:   uuid.NewString(),
		Type: layerType(n.Data),
		Tag:  n.Data,
	}

	for _, attr := range n.Attr {
		switch attr.Key {
		case "class":
			layer.Classes = preview.StringList(strings.Fields(attr.Val))
			layer.Design = styler.ClassesToDesign(attr.Val)
		case "href":
			layer.URL = attr.Val
		case "src":
			layer.URL = attr.Val
		case "id":
			if layer.Settings == nil {
				layer.Settings = &preview.Settings{}
			}
			layer.Settings.HTMLID = attr.Val
		}
	}

	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			text.WriteString(c.Data)
		case html.ElementNode:
			if child := importNode(c); child != nil {
				layer.Children = append(layer.Children, child)
			}
		}
	}
	layer.Text = strings.TrimSpace(text.String())

	return layer
}

func layerType(tag string) string {
	if t, ok := typeForTag[tag]; ok {
		return t
	}
	return "block"
}
