// Package convert maps between the compact and structured message formats
// and detects which one a raw message is in.
//
// The two formats use different closed sets for type and priority, so
// conversion goes through fixed lookup tables and is lossy by design:
// compact→structured→compact is not guaranteed to reproduce the original
// text. The tables are data, not heuristics, so the loss is auditable.
package convert

import (
	"strings"

	"github.com/drixl-io/drixl-go/internal/compact"
	"github.com/drixl-io/drixl-go/internal/drixlerr"
	"github.com/drixl-io/drixl-go/internal/structured"
)

// Format tags the wire encoding of a raw message.
type Format string

const (
	FormatCompact    Format = "compact"
	FormatStructured Format = "structured"
)

// FallbackVerb is substituted when StructuredToCompact gets no action list:
// actions cannot be reliably recovered from free-text content, so the
// converter emits this single sentinel instead of failing. Documented
// lossy-recovery policy, not an error path.
const FallbackVerb = "EXEC"

// Fixed mapping tables. One-directional and many-to-one where noted:
// CRITIQUE, DELEGATE, ACK, and BLOCKING have no compact equivalent.
var (
	typeToStructured = map[string]string{
		"REQ": "REQUEST",
		"RES": "RESPONSE",
		"ERR": "ESCALATE",
		"FIN": "FINALIZE",
	}
	typeToCompact = map[string]string{
		"REQUEST":  "REQ",
		"RESPONSE": "RES",
		"CRITIQUE": "RES",
		"DELEGATE": "REQ",
		"ACK":      "RES",
		"ESCALATE": "ERR",
		"FINALIZE": "FIN",
	}
	priorityToStructured = map[string]string{
		"HIGH": "HIGH",
		"MED":  "NORMAL",
		"LOW":  "LOW",
	}
	priorityToCompact = map[string]string{
		"HIGH":     "HIGH",
		"NORMAL":   "MED",
		"LOW":      "LOW",
		"BLOCKING": "HIGH",
	}
)

// Options carries optional overrides for CompactToStructured. Zero values
// mean "synthesize or default".
type Options struct {
	MsgID      string
	ThreadID   string
	Intent     string
	Status     string
	NextAction string
}

// CompactToStructured parses compactText leniently (compact messages may
// carry non-vocabulary tokens that are not validated at this boundary) and
// lifts it into the structured format. Intent is synthesized from the
// action list when not supplied; content is the actions and params as
// labeled lines.
func CompactToStructured(compactText string, opts *Options) (*structured.Message, error) {
	if opts == nil {
		opts = &Options{}
	}

	parsed, err := compact.Parse(compactText, false)
	if err != nil {
		return nil, err
	}

	msgType, ok := typeToStructured[parsed.Envelope.Type]
	if !ok {
		msgType = "REQUEST"
	}
	priority, ok := priorityToStructured[parsed.Envelope.Priority]
	if !ok {
		priority = "NORMAL"
	}

	intent := opts.Intent
	if intent == "" {
		intent = "Execute actions: " + strings.Join(parsed.Actions, ", ")
	}

	contentLines := []string{"Actions: " + strings.Join(parsed.Actions, ", ")}
	if len(parsed.Params) > 0 {
		contentLines = append(contentLines, "Parameters: "+strings.Join(parsed.Params, ", "))
	}

	return structured.New(structured.Message{
		MsgID:      opts.MsgID,
		ThreadID:   opts.ThreadID,
		Priority:   priority,
		To:         parsed.Envelope.To,
		From:       parsed.Envelope.From,
		Type:       msgType,
		Intent:     intent,
		Content:    strings.Join(contentLines, "\n"),
		Status:     opts.Status,
		NextAction: opts.NextAction,
	})
}

// StructuredToCompact collapses a structured message onto the compact
// format. The 7-way type and 4-way priority fold through the fixed tables.
// With no explicit actions the single FallbackVerb is used; params default
// to empty.
func StructuredToCompact(m *structured.Message, actions, params []string) (string, error) {
	msgType, ok := typeToCompact[m.Type]
	if !ok {
		msgType = "REQ"
	}
	priority, ok := priorityToCompact[m.Priority]
	if !ok {
		priority = "MED"
	}
	if len(actions) == 0 {
		actions = []string{FallbackVerb}
	}
	return compact.Build(m.To, m.From, msgType, priority, actions, params, "")
}

// Detect classifies raw message text by prefix only, never a full parse:
// `@to:` means compact, `<message>` or an XML prolog means structured.
// Anything else is an unrecognized-format error.
func Detect(text string) (Format, error) {
	trimmed := strings.TrimLeft(text, " \t\r\n")
	switch {
	case strings.HasPrefix(trimmed, "@to:"):
		return FormatCompact, nil
	case strings.HasPrefix(trimmed, "<message>"), strings.HasPrefix(trimmed, "<?xml"):
		return FormatStructured, nil
	}
	return "", &drixlerr.FormatError{Reason: "unable to detect message format: must start with '@to:' (compact) or '<message>' (XML)"}
}
