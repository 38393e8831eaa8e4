package styler

import (
	"regexp"
	"sort"
	"strings"
)

// ClassPattern recognizes the base-token family implementing one design
// property. Patterns are shape-only: the overlapping bracket families
// (text-[...], bg-[...], border-[...]) intentionally match for both of
// their properties, and callers disambiguate with the color/image
// heuristic. RE2 has no lookahead, so named-color families are matched
// by enumerating color token shapes instead of excluding keywords.
type ClassPattern struct {
	re *regexp.Regexp
}

// Matches reports whether a base token (no breakpoint or state prefix)
// belongs to this family.
func (p *ClassPattern) Matches(token string) bool {
	return p.re.MatchString(token)
}

// String returns the pattern source.
func (p *ClassPattern) String() string {
	return p.re.String()
}

// Shared pattern fragments. Scale covers the numeric spacing scale
// external markup uses alongside our bracketed values.
const (
	scaleShape = `(?:\d+(?:\.\d+)?|px)`
	anyBracket = `\[.+\]`
)

// colorShape covers every color suffix the codec can emit for a class
// family: the CSS keyword set the value heuristic owns (red, tomato),
// the inherit/current keywords, and the digit-suffixed theme palette
// shape (red-500, slate-50).
var colorShape = buildColorShape()

func buildColorShape() string {
	names := make([]string, 0, len(namedColors)+2)
	for name := range namedColors {
		names = append(names, name)
	}
	names = append(names, "inherit", "current")
	sort.Strings(names)
	return `(?:` + strings.Join(names, "|") + `|[a-z]+(?:-[a-z]+)?-(?:50|[1-9]\d{2}))`
}

// classPatternSources maps every design property to its family pattern.
var classPatternSources = map[string]string{
	"display":        `^(?:block|inline-block|inline-flex|inline-grid|inline|flex|grid|contents|hidden)$`,
	"flexDirection":  `^flex-(?:row|row-reverse|col|col-reverse)$`,
	"flexWrap":       `^flex-(?:wrap|wrap-reverse|nowrap)$`,
	"justifyContent": `^justify-(?:start|end|center|between|around|evenly|stretch)$`,
	"alignItems":     `^items-(?:start|end|center|baseline|stretch)$`,
	"gap":            `^gap-(?:` + scaleShape + `|` + anyBracket + `)$`,
	"rowGap":         `^gap-y-(?:` + scaleShape + `|` + anyBracket + `)$`,
	"columnGap":      `^gap-x-(?:` + scaleShape + `|` + anyBracket + `)$`,
	"overflow":       `^overflow-(?:auto|hidden|clip|visible|scroll)$`,

	"fontSize":       `^text-(?:xs|sm|base|lg|xl|[2-9]xl|` + anyBracket + `)$`,
	"fontWeight":     `^font-(?:thin|extralight|light|normal|medium|semibold|bold|extrabold|black|` + anyBracket + `)$`,
	"fontStyle":      `^(?:italic|not-italic)$`,
	"color":          `^text-(?:` + colorShape + `|` + anyBracket + `)$`,
	"textAlign":      `^text-(?:left|center|right|justify)$`,
	"textTransform":  `^(?:uppercase|lowercase|capitalize|normal-case)$`,
	"textDecoration": `^(?:underline|overline|line-through|no-underline)$`,
	"lineHeight":     `^leading-(?:none|tight|snug|normal|relaxed|loose|` + scaleShape + `|` + anyBracket + `)$`,
	"letterSpacing":  `^tracking-(?:tighter|tight|normal|wide|wider|widest|` + anyBracket + `)$`,

	"margin":        `^-?m-(?:auto|` + scaleShape + `|` + anyBracket + `)$`,
	"marginTop":     `^-?mt-(?:auto|` + scaleShape + `|` + anyBracket + `)$`,
	"marginRight":   `^-?mr-(?:auto|` + scaleShape + `|` + anyBracket + `)$`,
	"marginBottom":  `^-?mb-(?:auto|` + scaleShape + `|` + anyBracket + `)$`,
	"marginLeft":    `^-?ml-(?:auto|` + scaleShape + `|` + anyBracket + `)$`,
	"padding":       `^p-(?:` + scaleShape + `|` + anyBracket + `)$`,
	"paddingTop":    `^pt-(?:` + scaleShape + `|` + anyBracket + `)$`,
	"paddingRight":  `^pr-(?:` + scaleShape + `|` + anyBracket + `)$`,
	"paddingBottom": `^pb-(?:` + scaleShape + `|` + anyBracket + `)$`,
	"paddingLeft":   `^pl-(?:` + scaleShape + `|` + anyBracket + `)$`,

	"width":     `^w-(?:auto|full|screen|min|max|fit|` + scaleShape + `|` + anyBracket + `)$`,
	"minWidth":  `^min-w-(?:auto|full|screen|min|max|fit|` + scaleShape + `|` + anyBracket + `)$`,
	"maxWidth":  `^max-w-(?:none|auto|full|screen|min|max|fit|` + scaleShape + `|` + anyBracket + `)$`,
	"height":    `^h-(?:auto|full|screen|min|max|fit|` + scaleShape + `|` + anyBracket + `)$`,
	"minHeight": `^min-h-(?:auto|full|screen|min|max|fit|` + scaleShape + `|` + anyBracket + `)$`,
	"maxHeight": `^max-h-(?:none|auto|full|screen|min|max|fit|` + scaleShape + `|` + anyBracket + `)$`,

	"borderWidth":  `^border(?:-(?:0|2|4|8|` + anyBracket + `))?$`,
	"borderStyle":  `^border-(?:solid|dashed|dotted|double|none)$`,
	"borderColor":  `^border-(?:` + colorShape + `|` + anyBracket + `)$`,
	"borderRadius": `^rounded(?:-(?:none|sm|md|lg|xl|[23]xl|full|` + anyBracket + `))?$`,

	"backgroundColor":    `^bg-(?:` + colorShape + `|` + anyBracket + `)$`,
	"backgroundImage":    `^bg-(?:none|gradient-to-(?:t|tr|r|br|b|bl|l|tl)|` + anyBracket + `)$`,
	"backgroundSize":     `^bg-(?:auto|cover|contain)$`,
	"backgroundPosition": `^bg-(?:bottom|center|left|left-bottom|left-top|right|right-bottom|right-top|top)$`,
	"backgroundRepeat":   `^bg-(?:repeat|no-repeat|repeat-x|repeat-y|repeat-round|repeat-space)$`,

	"opacity":   `^opacity-(?:\d{1,3}|` + anyBracket + `)$`,
	"boxShadow": `^shadow(?:-(?:sm|md|lg|xl|2xl|inner|none|` + anyBracket + `))?$`,
	"cursor":    `^cursor-(?:auto|default|pointer|wait|text|move|not-allowed|grab|grabbing)$`,

	"position": `^(?:static|fixed|absolute|relative|sticky)$`,
	"top":      `^-?top-(?:auto|full|` + scaleShape + `|` + anyBracket + `)$`,
	"right":    `^-?right-(?:auto|full|` + scaleShape + `|` + anyBracket + `)$`,
	"bottom":   `^-?bottom-(?:auto|full|` + scaleShape + `|` + anyBracket + `)$`,
	"left":     `^-?left-(?:auto|full|` + scaleShape + `|` + anyBracket + `)$`,
	"zIndex":   `^z-(?:auto|\d+|` + anyBracket + `)$`,
}

var classPatterns = compileClassPatterns()

func compileClassPatterns() map[string]*ClassPattern {
	out := make(map[string]*ClassPattern, len(classPatternSources))
	for prop, src := range classPatternSources {
		out[prop] = &ClassPattern{re: regexp.MustCompile(src)}
	}
	return out
}

// PatternFor returns the recognizer pattern for a design property's
// utility-class family, or nil for an unknown property.
func PatternFor(property string) *ClassPattern {
	return classPatterns[property]
}

// overloadedBracketProperties maps a bracket-form class prefix to the
// two properties sharing that surface syntax. The first entry is the
// color branch; ClassifyBracketToken picks between them by inspecting
// the bracketed value, never the token shape.
var overloadedBracketProperties = map[string][2]string{
	"text":   {"color", "fontSize"},
	"bg":     {"backgroundColor", "backgroundImage"},
	"border": {"borderColor", "borderWidth"},
}

// splitArbitrary splits a bracket-form base token ("w-[100px]") into
// its prefix ("w") and inner value ("100px").
func splitArbitrary(token string) (prefix, inner string, ok bool) {
	if !strings.HasSuffix(token, "]") {
		return "", "", false
	}
	idx := strings.Index(token, "-[")
	if idx <= 0 {
		return "", "", false
	}
	return token[:idx], token[idx+2 : len(token)-1], true
}

// ClassifyBracketToken resolves which property an overloaded
// bracket-form token belongs to by inspecting its value. The second
// result is false when the token is not an overloaded bracket form.
func ClassifyBracketToken(token string) (string, bool) {
	prefix, inner, ok := splitArbitrary(token)
	if !ok {
		return "", false
	}
	pair, ok := overloadedBracketProperties[prefix]
	if !ok {
		return "", false
	}
	value := unescapeArbitrary(inner)
	if IsColorValue(value) {
		return pair[0], true
	}
	if prefix == "bg" && IsImageValue(value) {
		return "backgroundImage", true
	}
	return pair[1], true
}
