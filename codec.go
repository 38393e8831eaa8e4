package styler

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// PropertyToClass converts one (category, property, value) triple to a
// single base class token. Unknown pairs and empty values yield "";
// this function never fails.
func PropertyToClass(category, property, value string) string {
	def, ok := propertyDefs[property]
	if !ok || def.category != category {
		return ""
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	switch def.kind {
	case kindNamed:
		for _, entry := range def.vocab {
			if entry.value == value {
				return entry.token
			}
		}
		return ""
	case kindMeasure:
		return measureToken(def.prefix, value, def.keywords)
	case kindColor:
		return colorToken(def.prefix, value)
	case kindFontSize:
		if hasKeyword(def.keywords, value) {
			return "text-" + value
		}
		return measureToken("text", value, nil)
	case kindFontWeight:
		for _, entry := range def.vocab {
			if entry.value == value {
				return entry.token
			}
		}
		return "font-[" + escapeArbitrary(value) + "]"
	case kindOpacity:
		return opacityToken(value)
	case kindRadius:
		if hasKeyword(def.keywords, value) {
			return "rounded-" + value
		}
		return measureToken("rounded", value, nil)
	case kindShadow:
		if hasKeyword(def.keywords, value) {
			return "shadow-" + value
		}
		return "shadow-[" + escapeArbitrary(value) + "]"
	case kindInteger:
		if hasKeyword(def.keywords, value) {
			return def.prefix + "-" + value
		}
		if _, err := strconv.Atoi(value); err == nil {
			return def.prefix + "-" + value
		}
		return def.prefix + "-[" + escapeArbitrary(value) + "]"
	case kindBackgroundImage:
		return backgroundImageToken(value)
	case kindBorderWidth:
		switch value {
		case "0", "0px":
			return "border-0"
		case "1px":
			return "border"
		case "2px":
			return "border-2"
		case "4px":
			return "border-4"
		case "8px":
			return "border-8"
		}
		return measureToken("border", value, nil)
	}
	return ""
}

// measureToken applies the shared measurement rule: a recognized
// keyword passes through, a bare number gets an implicit pixel unit,
// anything else (unit-carrying or otherwise) is wrapped as an arbitrary
// bracketed value.
func measureToken(prefix, value string, keywords []string) string {
	if hasKeyword(keywords, value) {
		return prefix + "-" + value
	}
	if isBareNumber(value) {
		return prefix + "-[" + value + "px]"
	}
	return prefix + "-[" + escapeArbitrary(value) + "]"
}

// colorToken emits the named-class form for plain palette words and the
// arbitrary bracketed form for literal colors, decided by the leading
// #/rgb/hsl shape.
func colorToken(prefix, value string) string {
	if strings.HasPrefix(value, "#") ||
		strings.HasPrefix(value, "rgb") ||
		strings.HasPrefix(value, "hsl") {
		return prefix + "-[" + escapeArbitrary(value) + "]"
	}
	return prefix + "-" + value
}

// opacityToken converts 0-1 decimals to 0-100 integer percentage form.
// Values above 1 are treated as already being percentages.
func opacityToken(value string) string {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return ""
	}
	if f <= 1 {
		f *= 100
	}
	pct := int(math.Round(f))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return "opacity-" + strconv.Itoa(pct)
}

func backgroundImageToken(value string) string {
	if value == "none" {
		return "bg-none"
	}
	if strings.HasPrefix(value, "url(") || gradientRe.MatchString(value) {
		return "bg-[" + escapeArbitrary(value) + "]"
	}
	// A bare URL or data URI still needs the url() wrapper to be a
	// valid background-image value.
	return "bg-[url(" + escapeArbitrary(value) + ")]"
}

// DesignToClasses derives the class tokens for every property of every
// active category, in stable panel order.
func DesignToClasses(design DesignProperties) []string {
	var tokens []string
	for _, category := range Categories {
		cat := design[category]
		if cat == nil || !cat.IsActive {
			continue
		}
		for _, prop := range sortedProperties(cat.Properties) {
			if token := PropertyToClass(category, prop, cat.Properties[prop]); token != "" {
				tokens = append(tokens, token)
			}
		}
	}
	return tokens
}

// DesignToClassString derives the authoritative class string for a
// design object.
func DesignToClassString(design DesignProperties) string {
	return strings.Join(DesignToClasses(design), " ")
}

// ClassesToDesign reconstructs a structured design snapshot from class
// tokens. Each argument may itself be a whitespace-separated class
// string. State-prefixed tokens (bare or breakpoint-combined) are
// excluded entirely: state-specific values never populate the base
// snapshot. A breakpoint-only prefix is stripped and its base token
// parsed. All eight categories are present in the result.
func ClassesToDesign(classOrClasses ...string) DesignProperties {
	design := NewDesign()
	for _, chunk := range classOrClasses {
		for _, token := range strings.Fields(chunk) {
			parsed := ParseFullClass(token)
			if parsed.UIState != StateNeutral {
				continue
			}
			if property, value, ok := parseBaseToken(parsed.Base); ok {
				design.Set(property, value)
			}
		}
	}
	return design
}

// parseBaseToken parses one base token (no breakpoint or state prefix)
// into a (property, value) assignment. Unrecognized tokens report
// ok=false and are skipped by callers.
func parseBaseToken(base string) (property, value string, ok bool) {
	// Fixed vocabulary first: display keywords, flex-row, justify-*,
	// text-left and friends.
	if hit, found := reverseVocab[base]; found {
		return hit.property, hit.value, true
	}

	// Arbitrary bracket forms. Overloaded shapes are classified by the
	// value heuristic before any generic rule sees them: once a token
	// is a color it is never also tested as a size.
	if prefix, inner, isArb := splitArbitrary(base); isArb {
		if property, overloaded := ClassifyBracketToken(base); overloaded {
			return property, unescapeArbitrary(inner), true
		}
		if property, found := bracketPrefixProperties[prefix]; found {
			return property, bracketValue(property, inner), true
		}
		return "", "", false
	}

	// Named and scale forms, in fixed property order.
	for _, prop := range propertyOrder {
		def := propertyDefs[prop]
		if def.prefix == "" || !strings.HasPrefix(base, def.prefix+"-") {
			continue
		}
		rest := base[len(def.prefix)+1:]
		if value, matched := parseNamedRest(prop, def, rest); matched {
			return prop, value, true
		}
	}
	return "", "", false
}

// bracketPrefixProperties maps the non-overloaded bracket prefixes to
// their property. The overloaded prefixes (text, bg, border) are
// handled by ClassifyBracketToken.
var bracketPrefixProperties = map[string]string{
	"gap": "gap", "gap-y": "rowGap", "gap-x": "columnGap",
	"leading": "lineHeight", "tracking": "letterSpacing",
	"font": "fontWeight",
	"m":    "margin", "mt": "marginTop", "mr": "marginRight",
	"mb": "marginBottom", "ml": "marginLeft",
	"p": "padding", "pt": "paddingTop", "pr": "paddingRight",
	"pb": "paddingBottom", "pl": "paddingLeft",
	"w": "width", "min-w": "minWidth", "max-w": "maxWidth",
	"h": "height", "min-h": "minHeight", "max-h": "maxHeight",
	"rounded": "borderRadius",
	"opacity": "opacity", "shadow": "boxShadow",
	"top": "top", "right": "right", "bottom": "bottom", "left": "left",
	"z": "zIndex",
}

// bracketValue recovers the design value from a bracket token's inner
// text, normalizing opacity back to its 0-1 form.
func bracketValue(property, inner string) string {
	value := unescapeArbitrary(inner)
	if property == "opacity" {
		return normalizeOpacity(value)
	}
	return value
}

// parseNamedRest interprets the suffix of a prefixed named or scale
// token for one property.
func parseNamedRest(prop string, def propertyDef, rest string) (string, bool) {
	switch def.kind {
	case kindColor:
		if isThemeColorName(rest) {
			return rest, true
		}
	case kindFontSize:
		if hasKeyword(def.keywords, rest) {
			return rest, true
		}
	case kindFontWeight:
		for _, entry := range def.vocab {
			if entry.token == "font-"+rest {
				return entry.value, true
			}
		}
	case kindMeasure:
		if hasKeyword(def.keywords, rest) {
			return rest, true
		}
		if scaled, ok := scaleValue(rest); ok {
			return scaled, true
		}
	case kindInteger:
		if hasKeyword(def.keywords, rest) {
			return rest, true
		}
		if _, err := strconv.Atoi(rest); err == nil {
			return rest, true
		}
	case kindOpacity:
		if _, err := strconv.Atoi(rest); err == nil {
			return normalizeOpacity(rest), true
		}
	case kindRadius, kindShadow:
		if hasKeyword(def.keywords, rest) {
			return rest, true
		}
	case kindBorderWidth:
		switch rest {
		case "0", "2", "4", "8":
			return rest + "px", true
		}
	case kindBackgroundImage:
		if rest == "none" || strings.HasPrefix(rest, "gradient-to-") {
			return rest, true
		}
	}
	return "", false
}

var themeColorNameRe = regexp.MustCompile(`^` + colorShape + `$`)

func isThemeColorName(rest string) bool {
	return themeColorNameRe.MatchString(rest)
}

// scaleValue converts a numeric spacing-scale suffix to its CSS length
// (scale unit is 0.25rem; "px" is the literal one-pixel step).
func scaleValue(rest string) (string, bool) {
	if rest == "px" {
		return "1px", true
	}
	n, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return "", false
	}
	rem := n * 0.25
	if rem == math.Trunc(rem) {
		return fmt.Sprintf("%drem", int(rem)), true
	}
	return strconv.FormatFloat(rem, 'f', -1, 64) + "rem", true
}

// normalizeOpacity converts a 0-100 integer percentage back to the 0-1
// decimal form the design model stores.
func normalizeOpacity(pct string) string {
	n, err := strconv.ParseFloat(pct, 64)
	if err != nil {
		return pct
	}
	return strconv.FormatFloat(n/100, 'f', -1, 64)
}
