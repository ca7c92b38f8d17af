// Package verbs defines the closed verb vocabulary for compact messages.
//
// Every action token accepted by a strict parse must come from this table.
// The set is fixed at build time; protocol participants cannot extend it,
// which is what keeps the compact format machine-checkable across agents.
package verbs

import (
	"sort"
	"strings"
)

// vocabulary maps verb codes to one-line descriptions. Closed set —
// changing it is a protocol revision, not a configuration tweak.
var vocabulary = map[string]string{
	"ANLY":  "Analyze input data or content",
	"XTRCT": "Extract specific fields or values",
	"SUMM":  "Summarize content into a shorter form",
	"EXEC":  "Execute an action or command",
	"VALD":  "Validate output against a schema or rule",
	"ESCL":  "Escalate to human or manager agent",
	"ROUT":  "Route message or payload to another agent",
	"STOR":  "Save data to context store or memory",
	"FETCH": "Retrieve data from a URL or source",
	"CMPX":  "Compare two values and return diff",
	"FLTR":  "Filter a dataset by given criteria",
	"TRNSF": "Transform data format (e.g., JSON to CSV)",
	"NTFY":  "Notify agent or system of an event",
	"RETRY": "Retry the previous failed task",
	"HALT":  "Stop pipeline execution immediately",
}

// IsValid reports whether verb belongs to the vocabulary. Case-insensitive.
func IsValid(verb string) bool {
	_, ok := vocabulary[strings.ToUpper(verb)]
	return ok
}

// Describe returns the description for verb, or "Unknown verb" if it is
// not part of the vocabulary. Case-insensitive, never fails.
func Describe(verb string) string {
	if desc, ok := vocabulary[strings.ToUpper(verb)]; ok {
		return desc
	}
	return "Unknown verb"
}

// All returns every verb code in sorted order.
func All() []string {
	codes := make([]string, 0, len(vocabulary))
	for code := range vocabulary {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Search returns the verbs whose code or description contains keyword,
// case-insensitive, keyed by code.
func Search(keyword string) map[string]string {
	keyword = strings.ToLower(keyword)
	found := make(map[string]string)
	for code, desc := range vocabulary {
		if strings.Contains(strings.ToLower(code), keyword) ||
			strings.Contains(strings.ToLower(desc), keyword) {
			found[code] = desc
		}
	}
	return found
}

// Count returns the size of the vocabulary.
func Count() int {
	return len(vocabulary)
}
