package preview

import (
	"strings"

	"github.com/pagecraft/styler"
)

// effectiveClasses filters raw class tokens down to what is live at one
// breakpoint and interaction state.
//
// The breakpoint filter is an exact match: at mobile neither desktop
// nor tablet tokens apply here (the cascade lookup belongs to the host
// panel, not the canvas). The state overlay then either drops every
// state-prefixed token (neutral), or activates the current state's
// tokens by stripping their prefix, suppressing other states entirely
// and suppressing neutral tokens whose class family collides with an
// activated token.
func effectiveClasses(tokens []string, bp styler.Breakpoint, state styler.UIState) []string {
	scoped := styler.GetBreakpointClasses(tokens, bp)

	if state == styler.StateNeutral {
		var out []string
		for _, token := range scoped {
			if parsed := styler.ParseFullClass(token); parsed.UIState == styler.StateNeutral {
				out = append(out, token)
			}
		}
		return out
	}

	activated := map[string]bool{}
	for _, token := range scoped {
		parsed := styler.ParseFullClass(token)
		if parsed.UIState == state {
			for _, key := range familyKeys(parsed.Base) {
				activated[key] = true
			}
		}
	}

	var out []string
	for _, token := range scoped {
		parsed := styler.ParseFullClass(token)
		switch parsed.UIState {
		case state:
			out = append(out, parsed.Base)
		case styler.StateNeutral:
			if !collides(parsed.Base, activated) {
				out = append(out, token)
			}
		}
	}
	return out
}

// familyKeys groups a base token by the design properties it writes
// to, so that e.g. all display keywords share one key and a hover
// background suppresses the neutral background. Tokens outside the
// styling vocabulary group only with their own literal text.
func familyKeys(base string) []string {
	if props := styler.GetAffectedProperties(base); len(props) > 0 {
		return props
	}
	return []string{"token:" + base}
}

func collides(base string, activated map[string]bool) bool {
	for _, key := range familyKeys(base) {
		if activated[key] {
			return true
		}
	}
	return false
}

func joinClasses(tokens []string) string {
	return strings.Join(tokens, " ")
}
