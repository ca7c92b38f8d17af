package structured

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drixl-io/drixl-go/internal/drixlerr"
)

func newTestMessage(t *testing.T) *Message {
	t.Helper()
	m, err := New(Message{
		To:      "AGT2",
		From:    "AGT1",
		Type:    "REQUEST",
		Intent:  "Analyze firewall logs",
		Content: "Check the attached log for denied connections.",
	})
	require.NoError(t, err)
	return m
}

func TestNew_GeneratesIDs(t *testing.T) {
	m := newTestMessage(t)
	assert.True(t, strings.HasPrefix(m.MsgID, "MSG-"))
	assert.True(t, strings.HasPrefix(m.ThreadID, "THREAD-"))
	assert.Len(t, m.MsgID, len("MSG-")+8)

	other := newTestMessage(t)
	assert.NotEqual(t, m.MsgID, other.MsgID)
}

func TestNew_AppliesDefaults(t *testing.T) {
	m := newTestMessage(t)
	assert.Equal(t, ReplyToNone, m.ReplyTo)
	assert.Equal(t, "NORMAL", m.Priority)
	assert.Equal(t, "PENDING", m.Status)
	assert.NotEmpty(t, m.Timestamp)
	assert.Empty(t, m.Artifacts)
}

func TestNew_KeepsSuppliedFields(t *testing.T) {
	m, err := New(Message{
		MsgID: "MSG-FIXED", ThreadID: "THREAD-FIXED", ReplyTo: "MSG-PREV",
		Timestamp: "2026-08-27T00:00:00Z", Priority: "blocking",
		To: "A", From: "B", Type: "ack", Status: "complete",
	})
	require.NoError(t, err)
	assert.Equal(t, "MSG-FIXED", m.MsgID)
	assert.Equal(t, "MSG-PREV", m.ReplyTo)
	assert.Equal(t, "BLOCKING", m.Priority)
	assert.Equal(t, "ACK", m.Type)
	assert.Equal(t, "COMPLETE", m.Status)
}

func TestNew_RejectsInvalidEnums(t *testing.T) {
	var enumErr *drixlerr.InvalidEnumError

	_, err := New(Message{To: "A", From: "B", Type: "SHOUT"})
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "SHOUT", enumErr.Value)
	assert.Equal(t, MessageTypes, enumErr.Allowed)

	_, err = New(Message{To: "A", From: "B", Type: "ACK", Priority: "URGENT"})
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, Priorities, enumErr.Allowed)

	_, err = New(Message{To: "A", From: "B", Type: "ACK", Status: "DONE"})
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, Statuses, enumErr.Allowed)
}

func TestAddArtifact_AutoIDs(t *testing.T) {
	m := newTestMessage(t)
	first := m.AddArtifact("code", "print('hi')", "")
	second := m.AddArtifact("data", "{}", "")
	third := m.AddArtifact("test", "assert True", "")

	assert.Equal(t, "ART-001", first.ID)
	assert.Equal(t, "ART-002", second.ID)
	assert.Equal(t, "ART-003", third.ID)

	custom := m.AddArtifact("doc", "notes", "ART-CUSTOM")
	assert.Equal(t, "ART-CUSTOM", custom.ID)
	assert.Len(t, m.Artifacts, 4)
}

func TestXML_RoundTripAllFields(t *testing.T) {
	m := newTestMessage(t)
	m.NextAction = "Report back to orchestrator"
	m.AddArtifact("code", "grep DENY firewall.log", "")
	m.AddArtifact("plan", "1. scan 2. report", "")

	for _, pretty := range []bool{false, true} {
		text, err := m.ToXML(pretty)
		require.NoError(t, err)

		back, err := FromXML(text)
		require.NoError(t, err)
		assert.Equal(t, m, back)
	}
}

func TestXML_RoundTripNoArtifacts(t *testing.T) {
	m := newTestMessage(t)
	text, err := m.ToXML(false)
	require.NoError(t, err)

	back, err := FromXML(text)
	require.NoError(t, err)
	assert.Equal(t, m, back)
	assert.Empty(t, back.Artifacts)
}

func TestFromXML_MalformedInput(t *testing.T) {
	var parseErr *drixlerr.ParseError
	_, err := FromXML("not xml at all <<<")
	assert.ErrorAs(t, err, &parseErr)
}

func TestFromXML_WrongRoot(t *testing.T) {
	var parseErr *drixlerr.ParseError
	_, err := FromXML("<note><meta></meta><envelope></envelope></note>")
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, "<note>")
}

func TestFromXML_MissingRequiredSections(t *testing.T) {
	var parseErr *drixlerr.ParseError

	_, err := FromXML("<message><envelope><to>A</to></envelope></message>")
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, "<meta>")

	_, err = FromXML("<message><meta><msg_id>M</msg_id></meta></message>")
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, "<envelope>")
}

func TestFromXML_LeafDefaults(t *testing.T) {
	text := "<message><meta></meta><envelope></envelope></message>"
	m, err := FromXML(text)
	require.NoError(t, err)

	assert.Equal(t, "MSG-UNKNOWN", m.MsgID)
	assert.Equal(t, "THREAD-UNKNOWN", m.ThreadID)
	assert.Equal(t, ReplyToNone, m.ReplyTo)
	assert.NotEmpty(t, m.Timestamp)
	assert.Equal(t, "NORMAL", m.Priority)
	assert.Equal(t, "UNKNOWN", m.To)
	assert.Equal(t, "UNKNOWN", m.From)
	assert.Equal(t, "REQUEST", m.Type)
	assert.Equal(t, "PENDING", m.Status)
	assert.Empty(t, m.Artifacts)
}

func TestFromXML_ValidatesParsedEnums(t *testing.T) {
	text := "<message><meta><priority>URGENT</priority></meta><envelope><type>REQUEST</type></envelope></message>"
	_, err := FromXML(text)
	var enumErr *drixlerr.InvalidEnumError
	assert.ErrorAs(t, err, &enumErr)
}

func TestFromXML_AcceptsXMLProlog(t *testing.T) {
	text := `<?xml version="1.0"?><message><meta><msg_id>M1</msg_id></meta><envelope><to>A</to><from>B</from><type>ACK</type></envelope></message>`
	m, err := FromXML(text)
	require.NoError(t, err)
	assert.Equal(t, "M1", m.MsgID)
	assert.Equal(t, "ACK", m.Type)
}

func TestToXML_SectionOrder(t *testing.T) {
	m := newTestMessage(t)
	text, err := m.ToXML(false)
	require.NoError(t, err)

	meta := strings.Index(text, "<meta>")
	envelope := strings.Index(text, "<envelope>")
	content := strings.Index(text, "<content>")
	artifacts := strings.Index(text, "<artifacts>")
	status := strings.Index(text, "<status>")
	next := strings.Index(text, "<next_action>")

	assert.True(t, meta < envelope && envelope < content && content < artifacts && artifacts < status && status < next)
}
