// Package compact implements the two-line compact wire format for
// inter-agent messages.
//
// Line 1 is the envelope: `@to:AGT2 @fr:AGT1 @t:REQ @p:HIGH`.
// Line 2 is the body: vocabulary verbs, then bracketed parameters, with an
// optional trailing `[ctx:<id>]` context store reference.
package compact

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/drixl-io/drixl-go/internal/drixlerr"
	"github.com/drixl-io/drixl-go/internal/verbs"
)

// Closed envelope sets. Order here is the order reported in errors.
var (
	MessageTypes = []string{"REQ", "RES", "ERR", "FIN"}
	Priorities   = []string{"HIGH", "MED", "LOW"}
)

// Message is a compact message in struct form, convenient for building,
// replying, and JSON round-trips. The wire form comes from Encode.
type Message struct {
	To       string   `json:"to"`
	From     string   `json:"fr"`
	Type     string   `json:"msg_type"`
	Priority string   `json:"priority"`
	Actions  []string `json:"actions"`
	Params   []string `json:"params,omitempty"`
	CtxRef   string   `json:"ctx_ref,omitempty"`
}

// Envelope holds the four routing fields of the first line. Fields missing
// from the input are left empty; use Validate when all four are required.
type Envelope struct {
	To       string `json:"to"`
	From     string `json:"fr"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
}

// Parsed is the result of Parse: the envelope plus the body split into
// action tokens and bracketed parameters, both in input order.
type Parsed struct {
	Envelope Envelope `json:"envelope"`
	Actions  []string `json:"actions"`
	Params   []string `json:"params"`
}

var (
	envTagRe = regexp.MustCompile(`@(to|fr|t|p):(\S+)`)
	paramRe  = regexp.MustCompile(`\[([^\]]+)\]`)
)

// Build assembles a compact message string.
//
// msgType and priority are validated against their closed sets and
// uppercased; every action must be a vocabulary verb. to, from, params,
// and ctxRef are opaque and pass through untouched.
func Build(to, from, msgType, priority string, actions, params []string, ctxRef string) (string, error) {
	upperType := strings.ToUpper(msgType)
	if !member(MessageTypes, upperType) {
		return "", &drixlerr.InvalidEnumError{Field: "message type", Value: msgType, Allowed: MessageTypes}
	}
	upperPriority := strings.ToUpper(priority)
	if !member(Priorities, upperPriority) {
		return "", &drixlerr.InvalidEnumError{Field: "priority", Value: priority, Allowed: Priorities}
	}
	for _, verb := range actions {
		if !verbs.IsValid(verb) {
			return "", &drixlerr.InvalidVerbError{Verb: verb}
		}
	}

	tokens := make([]string, 0, len(actions)+len(params)+1)
	for _, verb := range actions {
		tokens = append(tokens, strings.ToUpper(verb))
	}
	for _, param := range params {
		tokens = append(tokens, "["+param+"]")
	}
	if ctxRef != "" {
		tokens = append(tokens, "[ctx:"+ctxRef+"]")
	}

	envelope := fmt.Sprintf("@to:%s @fr:%s @t:%s @p:%s", to, from, upperType, upperPriority)
	return envelope + "\n" + strings.Join(tokens, " "), nil
}

// Parse splits raw compact text into envelope, actions, and params.
//
// Envelope extraction is permissive: a missing tag yields an empty field,
// and downstream consumers decide whether that is fatal. Bracketed params
// are pulled out of the body before action tokenization, so parameter text
// containing verb-like words is never misclassified as an action.
//
// In strict mode the first action token outside the vocabulary aborts the
// parse. Lenient mode accepts every token uppercased — freeform escalation
// text travels through the action slot without tripping verb validation.
func Parse(raw string, strict bool) (*Parsed, error) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) < 2 {
		return nil, &drixlerr.ParseError{Reason: "compact message needs an envelope line and at least one body line"}
	}

	envelope := Envelope{}
	for _, m := range envTagRe.FindAllStringSubmatch(lines[0], -1) {
		switch m[1] {
		case "to":
			if envelope.To == "" {
				envelope.To = m[2]
			}
		case "fr":
			if envelope.From == "" {
				envelope.From = m[2]
			}
		case "t":
			if envelope.Type == "" {
				envelope.Type = m[2]
			}
		case "p":
			if envelope.Priority == "" {
				envelope.Priority = m[2]
			}
		}
	}

	body := strings.Join(lines[1:], " ")

	var params []string
	for _, m := range paramRe.FindAllStringSubmatch(body, -1) {
		params = append(params, m[1])
	}

	var actions []string
	for _, token := range strings.Fields(paramRe.ReplaceAllString(body, " ")) {
		if strict && !verbs.IsValid(token) {
			return nil, &drixlerr.InvalidVerbError{Verb: token}
		}
		actions = append(actions, strings.ToUpper(token))
	}

	return &Parsed{Envelope: envelope, Actions: actions, Params: params}, nil
}

// Encode renders the message to its wire form via Build.
func (m *Message) Encode() (string, error) {
	return Build(m.To, m.From, m.Type, m.Priority, m.Actions, m.Params, m.CtxRef)
}

// Reply builds the response message: to/from swapped, type RES, priority
// and context reference carried over from the original.
func (m *Message) Reply(actions, params []string) *Message {
	return &Message{
		To:       m.From,
		From:     m.To,
		Type:     "RES",
		Priority: m.Priority,
		Actions:  actions,
		Params:   params,
		CtxRef:   m.CtxRef,
	}
}

// NewError builds the conventional error message: type ERR, priority HIGH,
// a single ESCL action, and code/detail as parameters.
func NewError(to, from, code, detail string) *Message {
	return &Message{
		To:       to,
		From:     from,
		Type:     "ERR",
		Priority: "HIGH",
		Actions:  []string{"ESCL"},
		Params:   []string{"code:" + code, "detail:" + detail},
	}
}

// Validate checks that all four envelope fields are present and that type
// and priority belong to their closed sets. Parse does not enforce this;
// callers that need a complete envelope do.
func (e *Envelope) Validate() error {
	if e.To == "" || e.From == "" || e.Type == "" || e.Priority == "" {
		return &drixlerr.ParseError{Reason: "envelope requires @to, @fr, @t, and @p"}
	}
	if !member(MessageTypes, strings.ToUpper(e.Type)) {
		return &drixlerr.InvalidEnumError{Field: "message type", Value: e.Type, Allowed: MessageTypes}
	}
	if !member(Priorities, strings.ToUpper(e.Priority)) {
		return &drixlerr.InvalidEnumError{Field: "priority", Value: e.Priority, Allowed: Priorities}
	}
	return nil
}

// CtxRef returns the context store reference carried in the params
// (the `ctx:` prefixed one), or "" if the message has none.
func (p *Parsed) CtxRef() string {
	for _, param := range p.Params {
		if id, ok := strings.CutPrefix(param, "ctx:"); ok {
			return id
		}
	}
	return ""
}

func member(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
