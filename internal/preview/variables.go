package preview

import "regexp"

// fieldMarkerRe matches one inline field placeholder of the form
// {{field:ID}} inside template text.
var fieldMarkerRe = regexp.MustCompile(`\{\{field:([^{}]+)\}\}`)

// ResolveTemplate substitutes every field placeholder in template text
// with the record's value for that field. A placeholder whose field is
// missing from the schema, or whose value is absent from the record,
// resolves to the empty string; the raw marker never survives into
// rendered output.
func ResolveTemplate(template string, fields []Field, values map[string]string) string {
	return fieldMarkerRe.ReplaceAllStringFunc(template, func(marker string) string {
		id := fieldMarkerRe.FindStringSubmatch(marker)[1]
		if !fieldExists(fields, id) {
			return ""
		}
		return values[id]
	})
}

func fieldExists(fields []Field, id string) bool {
	for _, f := range fields {
		if f.ID == id {
			return true
		}
	}
	return false
}

// scope carries the active record binding down a render subtree. The
// zero scope resolves every field reference to empty string.
type scope struct {
	fields []Field
	values map[string]string
}

// fieldValue resolves one field reference against the scope.
func (sc scope) fieldValue(fieldID string) string {
	if fieldID == "" || sc.values == nil {
		return ""
	}
	if !fieldExists(sc.fields, fieldID) {
		return ""
	}
	return sc.values[fieldID]
}

// resolveText computes the textual content of a layer under a scope.
// Inline template content wins over a direct field binding, which wins
// over static text.
func resolveText(l *Layer, sc scope) string {
	if l.Variables != nil && l.Variables.Text != "" {
		return ResolveTemplate(l.Variables.Text, sc.fields, sc.values)
	}
	if l.TextField != "" {
		return sc.fieldValue(l.TextField)
	}
	return l.Text
}

// resolveURL computes the link or source target of a layer under a
// scope, preferring a field binding over the static URL.
func resolveURL(l *Layer, sc scope) string {
	if l.URLField != "" {
		return sc.fieldValue(l.URLField)
	}
	return l.URL
}
