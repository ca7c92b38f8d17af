// Package bench compares the footprint of one logical message across
// encodings: compact, JSON, XML, and natural language. Pure reporting over
// the codec outputs — nothing here touches protocol semantics.
package bench

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/drixl-io/drixl-go/internal/compact"
	"github.com/drixl-io/drixl-go/internal/convert"
)

// Result is one encoding's footprint.
type Result struct {
	Format string
	Text   string
	Tokens int
	Bytes  int
}

// EstimateTokens approximates a tokenizer count by whitespace words.
// Coarse, but consistent across the compared formats.
func EstimateTokens(text string) int {
	return len(strings.Fields(text))
}

// Savings returns the percentage saved by tokens relative to baseline.
func Savings(baseline, tokens int) float64 {
	if baseline == 0 {
		return 0
	}
	return 100 * float64(baseline-tokens) / float64(baseline)
}

// Compare renders msg in every supported encoding and measures each.
// The natural-language baseline is synthesized from the same fields, so
// the comparison stays apples-to-apples. Results are ordered compact,
// JSON, XML, natural language.
func Compare(msg *compact.Message) ([]Result, error) {
	compactText, err := msg.Encode()
	if err != nil {
		return nil, err
	}

	jsonBytes, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	sm, err := convert.CompactToStructured(compactText, nil)
	if err != nil {
		return nil, err
	}
	xmlText, err := sm.ToXML(false)
	if err != nil {
		return nil, err
	}

	natural := naturalText(msg)

	texts := []struct {
		format string
		text   string
	}{
		{"compact", compactText},
		{"json", string(jsonBytes)},
		{"xml", xmlText},
		{"natural", natural},
	}

	results := make([]Result, 0, len(texts))
	for _, t := range texts {
		results = append(results, Result{
			Format: t.format,
			Text:   t.text,
			Tokens: EstimateTokens(t.text),
			Bytes:  len(t.text),
		})
	}
	return results, nil
}

// naturalText spells the message out the way a person would write it.
func naturalText(msg *compact.Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Agent %s to agent %s (%s priority): please perform %s",
		msg.From, msg.To, strings.ToLower(msg.Priority), strings.Join(msg.Actions, ", then "))
	if len(msg.Params) > 0 {
		fmt.Fprintf(&b, " using parameters %s", strings.Join(msg.Params, ", "))
	}
	if msg.CtxRef != "" {
		fmt.Fprintf(&b, ". The shared project context is stored under reference %s", msg.CtxRef)
	}
	b.WriteString(".")
	return b.String()
}
