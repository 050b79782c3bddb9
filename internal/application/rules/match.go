// Package rules holds the engine's rule records and lookup tables: hard-stop
// triggers, clinical-flag rules, safety rules, and the scoring/dosing
// lookups. Rules reference catalog ids and property tags, never display
// names, so a supplement rename cannot silently break a rule.
package rules

import "strings"

// MatchesKeyword reports whether the free-text flag matches the trigger
// keyword. Matching is case-insensitive substring containment on the raw
// text. This is the extensibility mechanism for the whole rule surface and
// is intentionally fuzzy: "COVID-19 kidney involvement" matches "kidney".
func MatchesKeyword(flagText, keyword string) bool {
	if keyword == "" {
		return false
	}
	return strings.Contains(strings.ToLower(flagText), strings.ToLower(keyword))
}

// MatchesAny reports whether the flag text matches any of the keywords.
func MatchesAny(flagText string, keywords []string) bool {
	for _, kw := range keywords {
		if MatchesKeyword(flagText, kw) {
			return true
		}
	}
	return false
}
