// Package preview renders a serialized layer tree into an HTML document
// for the builder's canvas surface. It consumes layer, collection and
// viewport updates over a message port, filters class tokens down to the
// active breakpoint and interaction state, resolves field variables and
// collection repetition, and reports interaction events and content
// height back to the host.
package preview

import (
	"encoding/json"
	"strings"

	"github.com/pagecraft/styler"
)

// StringList accepts both a whitespace-separated class string and a
// JSON array of tokens, since hosts serialize either form.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = strings.Fields(one)
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = many
	return nil
}

func (s StringList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(s))
}

// Layer is one node of the content tree. The renderer treats layers as
// read-only input per render pass; children are exclusively owned by
// their parent, so the tree is acyclic.
type Layer struct {
	ID          string                  `json:"id"`
	Type        string                  `json:"type"`
	Tag         string                  `json:"tag,omitempty"`
	Classes     StringList              `json:"classes,omitempty"`
	Design      styler.DesignProperties `json:"design,omitempty"`
	Children    []*Layer                `json:"children,omitempty"`
	Text        string                  `json:"text,omitempty"`
	TextField   string                  `json:"textField,omitempty"`
	URL         string                  `json:"url,omitempty"`
	URLField    string                  `json:"urlField,omitempty"`
	Variables   *Variables              `json:"variables,omitempty"`
	Collection  *CollectionBinding      `json:"collection,omitempty"`
	Settings    *Settings               `json:"settings,omitempty"`
	ComponentID string                  `json:"componentId,omitempty"`
}

// Variables carries inline template content whose field markers are
// substituted at render time.
type Variables struct {
	Text string `json:"text,omitempty"`
}

// CollectionBinding binds a layer to a named collection; the layer's
// children are instantiated once per sorted record.
type CollectionBinding struct {
	ID   string   `json:"id"`
	Sort SortSpec `json:"sort"`
}

// SortSpec selects the record order for collection repetition.
type SortSpec struct {
	Mode      string `json:"mode"` // none, manual, random, field
	FieldID   string `json:"fieldId,omitempty"`
	Direction string `json:"direction,omitempty"` // asc, desc
}

const (
	SortNone   = "none"
	SortManual = "manual"
	SortRandom = "random"
	SortField  = "field"
)

// Settings holds per-layer presentation options authored in the host.
type Settings struct {
	HTMLID     string            `json:"htmlId,omitempty"`
	Hidden     bool              `json:"hidden,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Link       *Link             `json:"link,omitempty"`
}

// Link holds anchor attributes for linkable layers.
type Link struct {
	Href   string `json:"href,omitempty"`
	Target string `json:"target,omitempty"`
	Rel    string `json:"rel,omitempty"`
}

// Record is one row of a bound collection. Values are keyed by field
// id; ManualOrder drives the manual sort mode.
type Record struct {
	ID          string            `json:"id"`
	ManualOrder int               `json:"manual_order"`
	Values      map[string]string `json:"values"`
}

// Field describes one column of a collection's schema.
type Field struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Component identifies a reusable component definition an instance
// layer points at through its ComponentID.
type Component struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	RootID string `json:"rootId,omitempty"`
}

// IsHidden reports whether the layer is excluded from rendering.
func (l *Layer) IsHidden() bool {
	return l.Settings != nil && l.Settings.Hidden
}

// IsTextual reports whether the layer carries editable text content.
func (l *Layer) IsTextual() bool {
	if l.Type == "text" || l.Type == "heading" || l.Type == "paragraph" {
		return true
	}
	return l.Text != "" || l.TextField != "" || (l.Variables != nil && l.Variables.Text != "")
}

// ClassTokens returns the raw class tokens for a layer. The class list
// is authoritative when present; a structured design without classes
// is lowered through the codec.
func (l *Layer) ClassTokens() []string {
	if len(l.Classes) > 0 {
		return l.Classes
	}
	if l.Design != nil {
		return styler.DesignToClasses(l.Design)
	}
	return nil
}

// walk visits the layer and all descendants depth-first, passing the
// parent layer (nil at roots).
func walk(layers []*Layer, parent *Layer, visit func(layer, parent *Layer)) {
	for _, l := range layers {
		if l == nil {
			continue
		}
		visit(l, parent)
		walk(l.Children, l, visit)
	}
}
