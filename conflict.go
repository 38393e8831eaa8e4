package styler

// GetConflictingClassPattern returns the recognizer pattern used for
// conflict detection on one property, or nil for an unknown property.
func GetConflictingClassPattern(property string) *ClassPattern {
	return PatternFor(property)
}

// RemoveConflictingClasses removes every unprefixed token belonging to
// the property's class family. Tokens carrying a breakpoint or state
// prefix are scoped writes and are left alone (use
// RemoveConflictingClassesForBreakpoint for those).
//
// The overloaded bracket shapes are the exception to plain pattern
// matching: removing a fontSize token must never collaterally remove a
// co-located color token that happens to share the text-[...] shape,
// so a bracket token whose value classifies under the overload's other
// property is preserved.
func RemoveConflictingClasses(tokens []string, property string) []string {
	pattern := PatternFor(property)
	if pattern == nil {
		return append([]string(nil), tokens...)
	}

	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		parsed := ParseFullClass(token)
		if parsed.Breakpoint != BreakpointDesktop || parsed.UIState != StateNeutral {
			out = append(out, token)
			continue
		}
		if !pattern.Matches(parsed.Base) {
			out = append(out, token)
			continue
		}
		if owner, overloaded := ClassifyBracketToken(parsed.Base); overloaded && owner != property {
			out = append(out, token)
			continue
		}
	}
	return out
}

// GetAffectedProperties returns the properties a base token writes to.
// For the overloaded bracket shapes exactly one property is returned,
// decided by the value heuristic; for all other tokens every matching
// family is returned (normally exactly one).
func GetAffectedProperties(token string) []string {
	parsed := ParseFullClass(token)
	if owner, overloaded := ClassifyBracketToken(parsed.Base); overloaded {
		return []string{owner}
	}

	var affected []string
	for _, property := range propertyOrder {
		if pattern := classPatterns[property]; pattern != nil && pattern.Matches(parsed.Base) {
			affected = append(affected, property)
		}
	}
	return affected
}

// RemoveConflictsForClass removes every token that would conflict with
// newToken, leaving unrelated tokens untouched. Applying it twice with
// the same newToken yields the same result as applying it once.
func RemoveConflictsForClass(tokens []string, newToken string) []string {
	out := append([]string(nil), tokens...)
	for _, property := range GetAffectedProperties(newToken) {
		out = RemoveConflictingClasses(out, property)
	}
	return out
}

// ReplaceConflictingClasses removes everything conflicting with
// newToken and appends it.
func ReplaceConflictingClasses(tokens []string, newToken string) []string {
	if newToken == "" {
		return append([]string(nil), tokens...)
	}
	return append(RemoveConflictsForClass(tokens, newToken), newToken)
}
