package styler

import (
	"sort"
	"strings"
)

// Design category names. Every design property belongs to exactly one
// category; no two categories define the same property name.
const (
	CategoryLayout      = "layout"
	CategoryTypography  = "typography"
	CategorySpacing     = "spacing"
	CategorySizing      = "sizing"
	CategoryBorders     = "borders"
	CategoryBackgrounds = "backgrounds"
	CategoryEffects     = "effects"
	CategoryPositioning = "positioning"
)

// Categories lists all design categories in display order.
var Categories = []string{
	CategoryLayout,
	CategoryTypography,
	CategorySpacing,
	CategorySizing,
	CategoryBorders,
	CategoryBackgrounds,
	CategoryEffects,
	CategoryPositioning,
}

// CategoryProperties holds one category's property assignments.
type CategoryProperties struct {
	IsActive   bool              `json:"isActive"`
	Properties map[string]string `json:"properties"`
}

// DesignProperties maps category name to that category's properties.
// All eight categories are always present once constructed through
// NewDesign or ClassesToDesign.
type DesignProperties map[string]*CategoryProperties

// NewDesign returns an empty design with all eight categories present
// and inactive.
func NewDesign() DesignProperties {
	d := make(DesignProperties, len(Categories))
	for _, cat := range Categories {
		d[cat] = &CategoryProperties{Properties: make(map[string]string)}
	}
	return d
}

// Set assigns a property value, activating its category. Unknown
// property names are ignored and reported as false.
func (d DesignProperties) Set(property, value string) bool {
	def, ok := propertyDefs[property]
	if !ok {
		return false
	}
	cat := d[def.category]
	if cat == nil {
		cat = &CategoryProperties{Properties: make(map[string]string)}
		d[def.category] = cat
	}
	cat.Properties[property] = value
	cat.IsActive = true
	return true
}

// Get returns a property value or "" when absent.
func (d DesignProperties) Get(category, property string) string {
	cat := d[category]
	if cat == nil {
		return ""
	}
	return cat.Properties[property]
}

// MergeDesign overlays one design onto another and returns a new
// design. Overlay values win per property; a category is active in the
// result when it is active in either input.
func MergeDesign(base, overlay DesignProperties) DesignProperties {
	out := NewDesign()
	for _, src := range []DesignProperties{base, overlay} {
		for name, cat := range src {
			if cat == nil {
				continue
			}
			dst := out[name]
			if dst == nil {
				dst = &CategoryProperties{Properties: make(map[string]string)}
				out[name] = dst
			}
			dst.IsActive = dst.IsActive || cat.IsActive
			for prop, val := range cat.Properties {
				dst.Properties[prop] = val
			}
		}
	}
	return out
}

// propertyKind selects the construction rule PropertyToClass applies.
type propertyKind int

const (
	kindNamed propertyKind = iota
	kindMeasure
	kindColor
	kindFontSize
	kindFontWeight
	kindOpacity
	kindRadius
	kindShadow
	kindInteger
	kindBackgroundImage
	kindBorderWidth
)

// vocabEntry maps one design value to one class token. Vocabularies are
// ordered slices so that the reverse lookup is deterministic: the first
// entry for a token is its canonical design value.
type vocabEntry struct {
	value string
	token string
}

type propertyDef struct {
	category string
	kind     propertyKind
	prefix   string       // class prefix without the trailing dash
	keywords []string     // pass-through keywords for measurement kinds
	vocab    []vocabEntry // fixed vocabulary for named kinds
}

// propertyOrder fixes iteration order for pattern matching and class
// emission. Within a category it mirrors the editor panel's field
// order. fontSize must precede color so that named text- sizes are
// claimed before named text- colors.
var propertyOrder = []string{
	// layout
	"display", "flexDirection", "flexWrap", "justifyContent", "alignItems",
	"gap", "rowGap", "columnGap", "overflow",
	// typography
	"fontSize", "fontWeight", "fontStyle", "color", "textAlign",
	"textTransform", "textDecoration", "lineHeight", "letterSpacing",
	// spacing
	"margin", "marginTop", "marginRight", "marginBottom", "marginLeft",
	"padding", "paddingTop", "paddingRight", "paddingBottom", "paddingLeft",
	// sizing
	"width", "minWidth", "maxWidth", "height", "minHeight", "maxHeight",
	// borders
	"borderWidth", "borderStyle", "borderColor", "borderRadius",
	// backgrounds
	"backgroundColor", "backgroundImage", "backgroundSize",
	"backgroundPosition", "backgroundRepeat",
	// effects
	"opacity", "boxShadow", "cursor",
	// positioning
	"position", "top", "right", "bottom", "left", "zIndex",
}

var sizeKeywords = []string{"auto", "full", "screen", "min", "max", "fit"}

var fontSizeKeywords = []string{
	"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl",
	"7xl", "8xl", "9xl",
}

var radiusKeywords = []string{"none", "sm", "md", "lg", "xl", "2xl", "3xl", "full"}

var shadowKeywords = []string{"sm", "md", "lg", "xl", "2xl", "inner", "none"}

// fontWeights maps both CSS keyword and numeric weights onto the
// utility suffix. Ordered so the keyword spelling is canonical on the
// reverse path.
var fontWeights = []vocabEntry{
	{"thin", "font-thin"},
	{"100", "font-thin"},
	{"extralight", "font-extralight"},
	{"200", "font-extralight"},
	{"light", "font-light"},
	{"300", "font-light"},
	{"normal", "font-normal"},
	{"400", "font-normal"},
	{"medium", "font-medium"},
	{"500", "font-medium"},
	{"semibold", "font-semibold"},
	{"600", "font-semibold"},
	{"bold", "font-bold"},
	{"700", "font-bold"},
	{"extrabold", "font-extrabold"},
	{"800", "font-extrabold"},
	{"black", "font-black"},
	{"900", "font-black"},
}

// propertyDefs is the static table driving both directions of the
// codec and the conflict-pattern registry.
var propertyDefs = map[string]propertyDef{
	// layout
	"display": {category: CategoryLayout, kind: kindNamed, vocab: []vocabEntry{
		{"flex", "flex"},
		{"block", "block"},
		{"grid", "grid"},
		{"inline", "inline"},
		{"inline-block", "inline-block"},
		{"inline-flex", "inline-flex"},
		{"inline-grid", "inline-grid"},
		{"contents", "contents"},
		{"none", "hidden"},
	}},
	"flexDirection": {category: CategoryLayout, kind: kindNamed, vocab: []vocabEntry{
		{"row", "flex-row"},
		{"row-reverse", "flex-row-reverse"},
		{"column", "flex-col"},
		{"column-reverse", "flex-col-reverse"},
	}},
	"flexWrap": {category: CategoryLayout, kind: kindNamed, vocab: []vocabEntry{
		{"wrap", "flex-wrap"},
		{"wrap-reverse", "flex-wrap-reverse"},
		{"nowrap", "flex-nowrap"},
	}},
	"justifyContent": {category: CategoryLayout, kind: kindNamed, vocab: []vocabEntry{
		{"flex-start", "justify-start"},
		{"start", "justify-start"},
		{"flex-end", "justify-end"},
		{"end", "justify-end"},
		{"center", "justify-center"},
		{"space-between", "justify-between"},
		{"space-around", "justify-around"},
		{"space-evenly", "justify-evenly"},
		{"stretch", "justify-stretch"},
	}},
	"alignItems": {category: CategoryLayout, kind: kindNamed, vocab: []vocabEntry{
		{"flex-start", "items-start"},
		{"start", "items-start"},
		{"flex-end", "items-end"},
		{"end", "items-end"},
		{"center", "items-center"},
		{"baseline", "items-baseline"},
		{"stretch", "items-stretch"},
	}},
	"gap":       {category: CategoryLayout, kind: kindMeasure, prefix: "gap"},
	"rowGap":    {category: CategoryLayout, kind: kindMeasure, prefix: "gap-y"},
	"columnGap": {category: CategoryLayout, kind: kindMeasure, prefix: "gap-x"},
	"overflow": {category: CategoryLayout, kind: kindNamed, vocab: []vocabEntry{
		{"auto", "overflow-auto"},
		{"hidden", "overflow-hidden"},
		{"clip", "overflow-clip"},
		{"visible", "overflow-visible"},
		{"scroll", "overflow-scroll"},
	}},

	// typography
	"fontSize":   {category: CategoryTypography, kind: kindFontSize, prefix: "text", keywords: fontSizeKeywords},
	"fontWeight": {category: CategoryTypography, kind: kindFontWeight, prefix: "font", vocab: fontWeights},
	"fontStyle": {category: CategoryTypography, kind: kindNamed, vocab: []vocabEntry{
		{"italic", "italic"},
		{"normal", "not-italic"},
	}},
	"color": {category: CategoryTypography, kind: kindColor, prefix: "text"},
	"textAlign": {category: CategoryTypography, kind: kindNamed, vocab: []vocabEntry{
		{"left", "text-left"},
		{"center", "text-center"},
		{"right", "text-right"},
		{"justify", "text-justify"},
	}},
	"textTransform": {category: CategoryTypography, kind: kindNamed, vocab: []vocabEntry{
		{"uppercase", "uppercase"},
		{"lowercase", "lowercase"},
		{"capitalize", "capitalize"},
		{"none", "normal-case"},
	}},
	"textDecoration": {category: CategoryTypography, kind: kindNamed, vocab: []vocabEntry{
		{"underline", "underline"},
		{"overline", "overline"},
		{"line-through", "line-through"},
		{"none", "no-underline"},
	}},
	"lineHeight": {category: CategoryTypography, kind: kindMeasure, prefix: "leading",
		keywords: []string{"none", "tight", "snug", "normal", "relaxed", "loose"}},
	"letterSpacing": {category: CategoryTypography, kind: kindMeasure, prefix: "tracking",
		keywords: []string{"tighter", "tight", "normal", "wide", "wider", "widest"}},

	// spacing
	"margin":        {category: CategorySpacing, kind: kindMeasure, prefix: "m", keywords: []string{"auto"}},
	"marginTop":     {category: CategorySpacing, kind: kindMeasure, prefix: "mt", keywords: []string{"auto"}},
	"marginRight":   {category: CategorySpacing, kind: kindMeasure, prefix: "mr", keywords: []string{"auto"}},
	"marginBottom":  {category: CategorySpacing, kind: kindMeasure, prefix: "mb", keywords: []string{"auto"}},
	"marginLeft":    {category: CategorySpacing, kind: kindMeasure, prefix: "ml", keywords: []string{"auto"}},
	"padding":       {category: CategorySpacing, kind: kindMeasure, prefix: "p"},
	"paddingTop":    {category: CategorySpacing, kind: kindMeasure, prefix: "pt"},
	"paddingRight":  {category: CategorySpacing, kind: kindMeasure, prefix: "pr"},
	"paddingBottom": {category: CategorySpacing, kind: kindMeasure, prefix: "pb"},
	"paddingLeft":   {category: CategorySpacing, kind: kindMeasure, prefix: "pl"},

	// sizing
	"width":     {category: CategorySizing, kind: kindMeasure, prefix: "w", keywords: sizeKeywords},
	"minWidth":  {category: CategorySizing, kind: kindMeasure, prefix: "min-w", keywords: sizeKeywords},
	"maxWidth":  {category: CategorySizing, kind: kindMeasure, prefix: "max-w", keywords: append([]string{"none"}, sizeKeywords...)},
	"height":    {category: CategorySizing, kind: kindMeasure, prefix: "h", keywords: sizeKeywords},
	"minHeight": {category: CategorySizing, kind: kindMeasure, prefix: "min-h", keywords: sizeKeywords},
	"maxHeight": {category: CategorySizing, kind: kindMeasure, prefix: "max-h", keywords: append([]string{"none"}, sizeKeywords...)},

	// borders
	"borderWidth": {category: CategoryBorders, kind: kindBorderWidth, prefix: "border"},
	"borderStyle": {category: CategoryBorders, kind: kindNamed, vocab: []vocabEntry{
		{"solid", "border-solid"},
		{"dashed", "border-dashed"},
		{"dotted", "border-dotted"},
		{"double", "border-double"},
		{"none", "border-none"},
	}},
	"borderColor":  {category: CategoryBorders, kind: kindColor, prefix: "border"},
	"borderRadius": {category: CategoryBorders, kind: kindRadius, prefix: "rounded", keywords: radiusKeywords},

	// backgrounds
	"backgroundColor": {category: CategoryBackgrounds, kind: kindColor, prefix: "bg"},
	"backgroundImage": {category: CategoryBackgrounds, kind: kindBackgroundImage, prefix: "bg"},
	"backgroundSize": {category: CategoryBackgrounds, kind: kindNamed, vocab: []vocabEntry{
		{"auto", "bg-auto"},
		{"cover", "bg-cover"},
		{"contain", "bg-contain"},
	}},
	"backgroundPosition": {category: CategoryBackgrounds, kind: kindNamed, vocab: []vocabEntry{
		{"bottom", "bg-bottom"},
		{"center", "bg-center"},
		{"left", "bg-left"},
		{"left bottom", "bg-left-bottom"},
		{"left top", "bg-left-top"},
		{"right", "bg-right"},
		{"right bottom", "bg-right-bottom"},
		{"right top", "bg-right-top"},
		{"top", "bg-top"},
	}},
	"backgroundRepeat": {category: CategoryBackgrounds, kind: kindNamed, vocab: []vocabEntry{
		{"repeat", "bg-repeat"},
		{"no-repeat", "bg-no-repeat"},
		{"repeat-x", "bg-repeat-x"},
		{"repeat-y", "bg-repeat-y"},
		{"round", "bg-repeat-round"},
		{"space", "bg-repeat-space"},
	}},

	// effects
	"opacity": {category: CategoryEffects, kind: kindOpacity, prefix: "opacity"},
	"boxShadow": {category: CategoryEffects, kind: kindShadow, prefix: "shadow",
		keywords: shadowKeywords},
	"cursor": {category: CategoryEffects, kind: kindNamed, vocab: []vocabEntry{
		{"auto", "cursor-auto"},
		{"default", "cursor-default"},
		{"pointer", "cursor-pointer"},
		{"wait", "cursor-wait"},
		{"text", "cursor-text"},
		{"move", "cursor-move"},
		{"not-allowed", "cursor-not-allowed"},
		{"grab", "cursor-grab"},
		{"grabbing", "cursor-grabbing"},
	}},

	// positioning
	"position": {category: CategoryPositioning, kind: kindNamed, vocab: []vocabEntry{
		{"static", "static"},
		{"relative", "relative"},
		{"absolute", "absolute"},
		{"fixed", "fixed"},
		{"sticky", "sticky"},
	}},
	"top":    {category: CategoryPositioning, kind: kindMeasure, prefix: "top", keywords: []string{"auto", "full"}},
	"right":  {category: CategoryPositioning, kind: kindMeasure, prefix: "right", keywords: []string{"auto", "full"}},
	"bottom": {category: CategoryPositioning, kind: kindMeasure, prefix: "bottom", keywords: []string{"auto", "full"}},
	"left":   {category: CategoryPositioning, kind: kindMeasure, prefix: "left", keywords: []string{"auto", "full"}},
	"zIndex": {category: CategoryPositioning, kind: kindInteger, prefix: "z", keywords: []string{"auto"}},
}

// reverseVocab maps a literal class token back to its property and
// canonical design value. Built once from the ordered vocabularies so
// aliased values (flex-start/start) resolve to the first spelling.
var reverseVocab = buildReverseVocab()

type vocabHit struct {
	property string
	value    string
}

func buildReverseVocab() map[string]vocabHit {
	out := make(map[string]vocabHit)
	for _, prop := range propertyOrder {
		def := propertyDefs[prop]
		for _, entry := range def.vocab {
			if _, seen := out[entry.token]; !seen {
				out[entry.token] = vocabHit{property: prop, value: entry.value}
			}
		}
	}
	// Zero-suffix forms of the default-value utilities.
	out["border"] = vocabHit{property: "borderWidth", value: "1px"}
	out["rounded"] = vocabHit{property: "borderRadius", value: "sm"}
	out["shadow"] = vocabHit{property: "boxShadow", value: "md"}
	return out
}

// PropertyCategory returns the category a property belongs to, or ""
// for an unknown property.
func PropertyCategory(property string) string {
	def, ok := propertyDefs[property]
	if !ok {
		return ""
	}
	return def.category
}

// categoryProperties returns the property names of one category in
// panel order.
func categoryProperties(category string) []string {
	var props []string
	for _, prop := range propertyOrder {
		if propertyDefs[prop].category == category {
			props = append(props, prop)
		}
	}
	return props
}

// sortedProperties returns the property names of one assignment map in
// panel order, unknown names last and alphabetical.
func sortedProperties(assignments map[string]string) []string {
	rank := make(map[string]int, len(propertyOrder))
	for i, prop := range propertyOrder {
		rank[prop] = i
	}
	props := make([]string, 0, len(assignments))
	for prop := range assignments {
		props = append(props, prop)
	}
	sort.Slice(props, func(i, j int) bool {
		ri, iok := rank[props[i]]
		rj, jok := rank[props[j]]
		if iok != jok {
			return iok
		}
		if iok && jok && ri != rj {
			return ri < rj
		}
		return props[i] < props[j]
	})
	return props
}

func hasKeyword(keywords []string, value string) bool {
	for _, kw := range keywords {
		if kw == value {
			return true
		}
	}
	return false
}

// escapeArbitrary makes a CSS value safe inside a bracketed class
// token. Utility class tokens cannot contain whitespace, so spaces
// become underscores; a literal underscore in the value is escaped as
// \_ so the round trip cannot corrupt it.
func escapeArbitrary(value string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(value) {
		switch r {
		case ' ':
			b.WriteByte('_')
		case '_':
			b.WriteString(`\_`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// unescapeArbitrary is the inverse of escapeArbitrary: \_ restores a
// literal underscore, a bare underscore restores a space.
func unescapeArbitrary(value string) string {
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		switch {
		case value[i] == '\\' && i+1 < len(value) && value[i+1] == '_':
			b.WriteByte('_')
			i++
		case value[i] == '_':
			b.WriteByte(' ')
		default:
			b.WriteByte(value[i])
		}
	}
	return b.String()
}
