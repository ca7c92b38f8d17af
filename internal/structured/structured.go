// Package structured implements the verbose XML message format.
//
// Where the compact format optimizes for token count, this one carries the
// metadata needed for traceability: message and thread ids, reply chains,
// timestamps, artifacts, and status tracking. Use it for debugging,
// auditing, and critique workflows.
package structured

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/drixl-io/drixl-go/internal/drixlerr"
)

// Closed sets for the structured format. Wider than the compact sets on
// purpose; the converter collapses them lossily.
var (
	MessageTypes = []string{"REQUEST", "RESPONSE", "CRITIQUE", "DELEGATE", "ACK", "ESCALATE", "FINALIZE"}
	Priorities   = []string{"LOW", "NORMAL", "HIGH", "BLOCKING"}
	Statuses     = []string{"PENDING", "IN_PROGRESS", "COMPLETE", "BLOCKED", "ESCALATED"}
)

// ReplyToNone is the sentinel for a message that replies to nothing.
const ReplyToNone = "NULL"

// Artifact is a typed content attachment (code, data, test, doc, plan).
// Artifacts belong to exactly one message and have no lifecycle of their own.
type Artifact struct {
	Type    string `xml:"type,attr" json:"type"`
	ID      string `xml:"id,attr" json:"id"`
	Content string `xml:",chardata" json:"content"`
}

// Message is a structured message. Construct through New so that ids,
// defaults, and closed-set validation are applied uniformly whether the
// instance comes from code or from parsed XML.
type Message struct {
	MsgID      string     `json:"msg_id"`
	ThreadID   string     `json:"thread_id"`
	ReplyTo    string     `json:"reply_to"`
	Timestamp  string     `json:"timestamp"`
	Priority   string     `json:"priority"`
	To         string     `json:"to"`
	From       string     `json:"fr"`
	Type       string     `json:"msg_type"`
	Intent     string     `json:"intent"`
	Content    string     `json:"content"`
	Status     string     `json:"status"`
	NextAction string     `json:"next_action"`
	Artifacts  []Artifact `json:"artifacts"`
}

// New fills generated ids and defaults on m and validates the closed sets.
// Zero-value fields mean "generate or default": ids get fresh MSG-/THREAD-
// values, ReplyTo becomes the NULL sentinel, Timestamp becomes now (UTC),
// Priority NORMAL, Status PENDING.
func New(m Message) (*Message, error) {
	if m.MsgID == "" {
		m.MsgID = newID("MSG")
	}
	if m.ThreadID == "" {
		m.ThreadID = newID("THREAD")
	}
	if m.ReplyTo == "" {
		m.ReplyTo = ReplyToNone
	}
	if m.Timestamp == "" {
		m.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	if m.Priority == "" {
		m.Priority = "NORMAL"
	}
	if m.Status == "" {
		m.Status = "PENDING"
	}
	m.Type = strings.ToUpper(m.Type)
	m.Priority = strings.ToUpper(m.Priority)
	m.Status = strings.ToUpper(m.Status)

	if !member(MessageTypes, m.Type) {
		return nil, &drixlerr.InvalidEnumError{Field: "message type", Value: m.Type, Allowed: MessageTypes}
	}
	if !member(Priorities, m.Priority) {
		return nil, &drixlerr.InvalidEnumError{Field: "priority", Value: m.Priority, Allowed: Priorities}
	}
	if !member(Statuses, m.Status) {
		return nil, &drixlerr.InvalidEnumError{Field: "status", Value: m.Status, Allowed: Statuses}
	}
	return &m, nil
}

// AddArtifact appends an artifact, assigning a sequential zero-padded
// ART-NNN id when none is given, and returns it.
func (m *Message) AddArtifact(kind, content, id string) *Artifact {
	if id == "" {
		id = fmt.Sprintf("ART-%03d", len(m.Artifacts)+1)
	}
	m.Artifacts = append(m.Artifacts, Artifact{Type: kind, ID: id, Content: content})
	return &m.Artifacts[len(m.Artifacts)-1]
}

// wire form: message > meta / envelope / content / artifacts / status / next_action

type xmlMeta struct {
	MsgID     string `xml:"msg_id"`
	ThreadID  string `xml:"thread_id"`
	ReplyTo   string `xml:"reply_to"`
	Timestamp string `xml:"timestamp"`
	Priority  string `xml:"priority"`
}

type xmlEnvelope struct {
	To     string `xml:"to"`
	From   string `xml:"from"`
	Type   string `xml:"type"`
	Intent string `xml:"intent"`
}

type xmlArtifacts struct {
	Artifacts []Artifact `xml:"artifact"`
}

type xmlMessage struct {
	XMLName    xml.Name     `xml:"message"`
	Meta       xmlMeta      `xml:"meta"`
	Envelope   xmlEnvelope  `xml:"envelope"`
	Content    string       `xml:"content"`
	Artifacts  xmlArtifacts `xml:"artifacts"`
	Status     string       `xml:"status"`
	NextAction string       `xml:"next_action"`
}

// inbound variant: pointers distinguish a missing section from an empty one.
type xmlMessageIn struct {
	XMLName    xml.Name
	Meta       *xmlMeta      `xml:"meta"`
	Envelope   *xmlEnvelope  `xml:"envelope"`
	Content    string        `xml:"content"`
	Artifacts  *xmlArtifacts `xml:"artifacts"`
	Status     string        `xml:"status"`
	NextAction string        `xml:"next_action"`
}

// ToXML serializes the message. pretty controls indentation only.
func (m *Message) ToXML(pretty bool) (string, error) {
	wire := xmlMessage{
		Meta: xmlMeta{
			MsgID:     m.MsgID,
			ThreadID:  m.ThreadID,
			ReplyTo:   m.ReplyTo,
			Timestamp: m.Timestamp,
			Priority:  m.Priority,
		},
		Envelope: xmlEnvelope{
			To:     m.To,
			From:   m.From,
			Type:   m.Type,
			Intent: m.Intent,
		},
		Content:    m.Content,
		Artifacts:  xmlArtifacts{Artifacts: m.Artifacts},
		Status:     m.Status,
		NextAction: m.NextAction,
	}

	var data []byte
	var err error
	if pretty {
		data, err = xml.MarshalIndent(wire, "", "  ")
	} else {
		data, err = xml.Marshal(wire)
	}
	if err != nil {
		return "", fmt.Errorf("marshal structured message: %w", err)
	}
	return string(data), nil
}

// FromXML parses XML text into a Message.
//
// Structure is strict: malformed markup, a root other than <message>, or a
// missing <meta>/<envelope> section is a parse error. Leaf fields are
// lenient with documented defaults, so partially hand-written messages
// still parse. Closed-set validation applies to the parsed values.
func FromXML(text string) (*Message, error) {
	var wire xmlMessageIn
	if err := xml.Unmarshal([]byte(text), &wire); err != nil {
		return nil, &drixlerr.ParseError{Reason: fmt.Sprintf("invalid XML: %v", err)}
	}
	if wire.XMLName.Local != "message" {
		return nil, &drixlerr.ParseError{Reason: fmt.Sprintf("root element must be <message>, got <%s>", wire.XMLName.Local)}
	}
	if wire.Meta == nil {
		return nil, &drixlerr.ParseError{Reason: "missing <meta> section"}
	}
	if wire.Envelope == nil {
		return nil, &drixlerr.ParseError{Reason: "missing <envelope> section"}
	}

	m := Message{
		MsgID:      fallback(wire.Meta.MsgID, "MSG-UNKNOWN"),
		ThreadID:   fallback(wire.Meta.ThreadID, "THREAD-UNKNOWN"),
		ReplyTo:    wire.Meta.ReplyTo,
		Timestamp:  wire.Meta.Timestamp,
		Priority:   wire.Meta.Priority,
		To:         fallback(wire.Envelope.To, "UNKNOWN"),
		From:       fallback(wire.Envelope.From, "UNKNOWN"),
		Type:       fallback(wire.Envelope.Type, "REQUEST"),
		Intent:     wire.Envelope.Intent,
		Content:    wire.Content,
		Status:     wire.Status,
		NextAction: wire.NextAction,
	}
	if wire.Artifacts != nil {
		for _, a := range wire.Artifacts.Artifacts {
			m.Artifacts = append(m.Artifacts, Artifact{
				Type:    fallback(a.Type, "unknown"),
				ID:      fallback(a.ID, "ART-UNKNOWN"),
				Content: a.Content,
			})
		}
	}
	return New(m)
}

func (m *Message) String() string {
	return fmt.Sprintf("StructuredMessage(id=%s, type=%s, to=%s, from=%s)", m.MsgID, m.Type, m.To, m.From)
}

func newID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(hex[:8])
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func member(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
