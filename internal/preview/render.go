package preview

import (
	"sort"

	"golang.org/x/net/html"
)

// sortedKeys keeps attribute emission order stable across renders.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// tagForType maps a layer type to its default HTML tag when no
// explicit tag override is set.
var tagForType = map[string]string{
	"text":      "p",
	"paragraph": "p",
	"heading":   "h2",
	"link":      "a",
	"button":    "button",
	"image":     "img",
	"list":      "ul",
	"listItem":  "li",
	"section":   "section",
	"form":      "form",
	"input":     "input",
}

func (l *Layer) effectiveTag() string {
	if l.Tag != "" {
		return l.Tag
	}
	if tag, ok := tagForType[l.Type]; ok {
		return tag
	}
	return "div"
}

// rebuild replaces the whole canvas document from the current context.
// This is the UPDATE_LAYERS path and also runs after breakpoint, state
// and edit-session changes; selection and drop-zone changes go through
// the incremental class toggles instead.
func (r *Renderer) rebuild() {
	r.nodes = make(map[string]*html.Node)
	r.layersByID = make(map[string]*Layer)
	r.parents = make(map[string]*Layer)

	walk(r.ctx.layers, nil, func(layer, parent *Layer) {
		r.layersByID[layer.ID] = layer
		r.parents[layer.ID] = parent
	})

	root := createElement("div")
	setAttr(root, "class", "pc-canvas")

	if len(r.ctx.layers) == 0 {
		empty := createElement("div")
		setAttr(empty, "class", "pc-empty")
		appendText(empty, "This page has no layers yet.")
		root.AppendChild(empty)
	} else {
		for _, layer := range r.ctx.layers {
			r.renderLayer(root, layer, scope{})
		}
	}

	r.root = root
	r.queueHeight()
}

// renderLayer materializes one layer (and its subtree) under parent.
// The scope carries the record binding for field-variable resolution;
// it propagates to every descendant, not just immediate children.
func (r *Renderer) renderLayer(parent *html.Node, layer *Layer, sc scope) {
	if layer == nil || layer.IsHidden() {
		return
	}

	node := createElement(layer.effectiveTag())
	setAttr(node, "data-layer-id", layer.ID)

	classes := effectiveClasses(layer.ClassTokens(), r.ctx.breakpoint, r.ctx.uiState)
	if r.ctx.selected == layer.ID {
		classes = append(classes, "pc-selected")
	}
	if r.ctx.dropZone == layer.ID {
		classes = append(classes, "pc-drop-target")
	}
	if r.hovered == layer.ID {
		classes = append(classes, "pc-hover")
	}
	if len(classes) > 0 {
		setAttr(node, "class", joinClasses(classes))
	}

	r.applySettings(node, layer)
	r.applyTarget(node, layer, sc)

	if r.editingLayer == layer.ID {
		editor := createElement("input")
		setAttr(editor, "class", "pc-inline-editor")
		setAttr(editor, "value", resolveText(layer, sc))
		node.AppendChild(editor)
	} else {
		appendText(node, resolveText(layer, sc))
	}

	if layer.Collection != nil && len(layer.Children) > 0 {
		records := sortRecords(r.ctx.records[layer.Collection.ID], layer.Collection.Sort, r.rng)
		fields := r.ctx.fields[layer.Collection.ID]
		for _, record := range records {
			childScope := scope{fields: fields, values: record.Values}
			for _, child := range layer.Children {
				r.renderLayer(node, child, childScope)
			}
		}
	} else {
		for _, child := range layer.Children {
			r.renderLayer(node, child, sc)
		}
	}

	parent.AppendChild(node)

	// Collection repetition renders a layer several times; the first
	// instance is the one selection and hover target.
	if _, seen := r.nodes[layer.ID]; !seen {
		r.nodes[layer.ID] = node
	}
}

// applySettings copies the authored id, custom attributes and link
// attributes onto the node.
func (r *Renderer) applySettings(node *html.Node, layer *Layer) {
	s := layer.Settings
	if s == nil {
		return
	}
	if s.HTMLID != "" {
		setAttr(node, "id", s.HTMLID)
	}
	for _, key := range sortedKeys(s.Attributes) {
		if key == "class" || key == "data-layer-id" {
			continue
		}
		setAttr(node, key, s.Attributes[key])
	}
	if s.Link != nil && node.Data == "a" {
		if s.Link.Href != "" {
			setAttr(node, "href", s.Link.Href)
		}
		if s.Link.Target != "" {
			setAttr(node, "target", s.Link.Target)
		}
		if s.Link.Rel != "" {
			setAttr(node, "rel", s.Link.Rel)
		}
	}
}

// applyTarget resolves the layer's URL binding into href or src.
func (r *Renderer) applyTarget(node *html.Node, layer *Layer, sc scope) {
	url := resolveURL(layer, sc)
	if url == "" {
		return
	}
	switch node.Data {
	case "img":
		setAttr(node, "src", url)
	case "a":
		setAttr(node, "href", url)
	}
}
