package styler

import "strings"

// Breakpoint identifies one of the three preview viewports. Styling is
// desktop-first: desktop is the unprefixed baseline, tablet and mobile
// are expressed as max-width overrides.
type Breakpoint string

const (
	BreakpointDesktop Breakpoint = "desktop"
	BreakpointTablet  Breakpoint = "tablet"
	BreakpointMobile  Breakpoint = "mobile"
)

// UIState identifies the interaction state a token is scoped to. The
// neutral state carries no prefix; "current" maps onto the visited:
// prefix.
type UIState string

const (
	StateNeutral  UIState = "neutral"
	StateHover    UIState = "hover"
	StateFocus    UIState = "focus"
	StateActive   UIState = "active"
	StateDisabled UIState = "disabled"
	StateCurrent  UIState = "current"
)

const (
	tabletPrefix = "max-lg:"
	mobilePrefix = "max-md:"
)

// statePrefixes is ordered so ParseFullClass strips prefixes
// deterministically.
var statePrefixes = []struct {
	state  UIState
	prefix string
}{
	{StateHover, "hover:"},
	{StateFocus, "focus:"},
	{StateActive, "active:"},
	{StateDisabled, "disabled:"},
	{StateCurrent, "visited:"},
}

// GetBreakpointPrefix returns the class prefix for a breakpoint;
// desktop is unprefixed.
func GetBreakpointPrefix(bp Breakpoint) string {
	switch bp {
	case BreakpointTablet:
		return tabletPrefix
	case BreakpointMobile:
		return mobilePrefix
	default:
		return ""
	}
}

// GetUIStatePrefix returns the class prefix for an interaction state;
// neutral is unprefixed.
func GetUIStatePrefix(state UIState) string {
	for _, sp := range statePrefixes {
		if sp.state == state {
			return sp.prefix
		}
	}
	return ""
}

// ParsedClass is the decomposition of one compound token.
type ParsedClass struct {
	Breakpoint Breakpoint
	UIState    UIState
	Base       string
}

// ParseFullClass strips at most one breakpoint prefix and then at most
// one state prefix, defaulting to desktop and neutral when absent. The
// prefix order is always breakpoint then state.
func ParseFullClass(token string) ParsedClass {
	parsed := ParsedClass{
		Breakpoint: BreakpointDesktop,
		UIState:    StateNeutral,
		Base:       token,
	}
	switch {
	case strings.HasPrefix(parsed.Base, tabletPrefix):
		parsed.Breakpoint = BreakpointTablet
		parsed.Base = parsed.Base[len(tabletPrefix):]
	case strings.HasPrefix(parsed.Base, mobilePrefix):
		parsed.Breakpoint = BreakpointMobile
		parsed.Base = parsed.Base[len(mobilePrefix):]
	}
	for _, sp := range statePrefixes {
		if strings.HasPrefix(parsed.Base, sp.prefix) {
			parsed.UIState = sp.state
			parsed.Base = parsed.Base[len(sp.prefix):]
			break
		}
	}
	return parsed
}

// ParseBreakpointClass strips only the breakpoint prefix, leaving any
// state prefix on the remainder.
func ParseBreakpointClass(token string) (Breakpoint, string) {
	switch {
	case strings.HasPrefix(token, tabletPrefix):
		return BreakpointTablet, token[len(tabletPrefix):]
	case strings.HasPrefix(token, mobilePrefix):
		return BreakpointMobile, token[len(mobilePrefix):]
	default:
		return BreakpointDesktop, token
	}
}

// AddBreakpointPrefix prefixes a token for a breakpoint; desktop
// returns the token unchanged.
func AddBreakpointPrefix(token string, bp Breakpoint) string {
	return GetBreakpointPrefix(bp) + token
}

// GetBreakpointClasses filters tokens to the ones scoped exactly to one
// breakpoint, with the breakpoint prefix stripped and any state prefix
// retained. This is the renderer's flat per-viewport filter; the style
// panel's cascade lookup is GetInheritedValue.
func GetBreakpointClasses(tokens []string, bp Breakpoint) []string {
	var out []string
	for _, token := range tokens {
		tokenBp, rest := ParseBreakpointClass(token)
		if tokenBp == bp {
			out = append(out, rest)
		}
	}
	return out
}

// matchesProperty reports whether a base token writes to the property,
// overload-aware.
func matchesProperty(base, property string) bool {
	for _, affected := range GetAffectedProperties(base) {
		if affected == property {
			return true
		}
	}
	return false
}

// RemoveConflictingClassesForBreakpoint removes every token whose
// parsed (breakpoint, uiState) matches the target and whose base token
// classifies under the property. Tokens scoped to other breakpoints or
// states are preserved untouched.
func RemoveConflictingClassesForBreakpoint(tokens []string, property string, bp Breakpoint, state UIState) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		parsed := ParseFullClass(token)
		if parsed.Breakpoint == bp && parsed.UIState == state && matchesProperty(parsed.Base, property) {
			continue
		}
		out = append(out, token)
	}
	return out
}

// SetBreakpointClass replaces the property's token at one
// breakpoint/state scope. An empty newToken only removes. newToken is
// a base token; the breakpoint and state prefixes are applied here.
func SetBreakpointClass(tokens []string, property, newToken string, bp Breakpoint, state UIState) []string {
	out := RemoveConflictingClassesForBreakpoint(tokens, property, bp, state)
	if newToken != "" {
		out = append(out, GetBreakpointPrefix(bp)+GetUIStatePrefix(state)+newToken)
	}
	return out
}

// InheritedValue is the result of a cascade lookup: the effective
// design value and the breakpoint it was inherited from.
type InheritedValue struct {
	Value  string
	Source Breakpoint
}

// breakpointChain builds the desktop-first lookup chain ending at the
// target breakpoint.
func breakpointChain(bp Breakpoint) []Breakpoint {
	switch bp {
	case BreakpointMobile:
		return []Breakpoint{BreakpointDesktop, BreakpointTablet, BreakpointMobile}
	case BreakpointTablet:
		return []Breakpoint{BreakpointDesktop, BreakpointTablet}
	default:
		return []Breakpoint{BreakpointDesktop}
	}
}

// GetInheritedValue resolves the effective value of a property at a
// breakpoint/state using the desktop-first cascade. Walking the chain
// from desktop down, a later breakpoint always overrides an earlier
// one. Within the state dimension the rule is asymmetric and must stay
// that way: in neutral mode a neutral token always wins, but in a
// non-neutral mode a neutral token only fills the gap until the first
// state-specific value is found — it never overrides one. Returns nil
// when no token matches anywhere on the chain.
func GetInheritedValue(tokens []string, property string, bp Breakpoint, state UIState) *InheritedValue {
	var result *InheritedValue
	foundState := false

	for _, step := range breakpointChain(bp) {
		if state != StateNeutral {
			for _, token := range tokens {
				parsed := ParseFullClass(token)
				if parsed.Breakpoint != step || parsed.UIState != state {
					continue
				}
				if !matchesProperty(parsed.Base, property) {
					continue
				}
				if value, ok := tokenValue(parsed.Base); ok {
					result = &InheritedValue{Value: value, Source: step}
					foundState = true
				}
			}
		}
		for _, token := range tokens {
			parsed := ParseFullClass(token)
			if parsed.Breakpoint != step || parsed.UIState != StateNeutral {
				continue
			}
			if !matchesProperty(parsed.Base, property) {
				continue
			}
			if state != StateNeutral && foundState {
				continue
			}
			if value, ok := tokenValue(parsed.Base); ok {
				result = &InheritedValue{Value: value, Source: step}
			}
		}
	}
	return result
}

// tokenValue recovers the raw class-facing value of a base token:
// "w-[50px]" yields "50px", "bg-red-500" yields "red-500". Bracket
// values are unescaped but otherwise kept verbatim; named suffixes are
// returned as written rather than normalized, since the style panel
// displays what the class says.
func tokenValue(base string) (string, bool) {
	if _, inner, ok := splitArbitrary(base); ok {
		return unescapeArbitrary(inner), true
	}
	if idx := strings.LastIndex(base, "-"); idx > 0 {
		// Named palette values keep their full suffix (red-500), so
		// split on the family prefix, not the last dash.
		for _, prefix := range []string{
			"max-lg", "max-md", "min-w", "max-w", "min-h", "max-h",
			"gap-x", "gap-y",
		} {
			if strings.HasPrefix(base, prefix+"-") {
				return base[len(prefix)+1:], true
			}
		}
		return base[strings.Index(base, "-")+1:], true
	}
	return base, true
}
