package verbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid_KnownVerbs(t *testing.T) {
	assert.True(t, IsValid("ANLY"))
	assert.True(t, IsValid("HALT"))
	assert.True(t, IsValid("XTRCT"))
}

func TestIsValid_CaseInsensitive(t *testing.T) {
	assert.True(t, IsValid("anly"))
	assert.True(t, IsValid("Fetch"))
}

func TestIsValid_UnknownVerb(t *testing.T) {
	assert.False(t, IsValid("NOPE"))
	assert.False(t, IsValid(""))
}

func TestDescribe_KnownVerb(t *testing.T) {
	assert.Equal(t, "Analyze input data or content", Describe("ANLY"))
	assert.Equal(t, "Analyze input data or content", Describe("anly"))
}

func TestDescribe_UnknownVerbSentinel(t *testing.T) {
	assert.Equal(t, "Unknown verb", Describe("NOPE"))
}

func TestAll_SortedAndComplete(t *testing.T) {
	all := All()
	assert.Len(t, all, Count())
	assert.Equal(t, 15, len(all))
	assert.True(t, sortedAsc(all))
	assert.Contains(t, all, "ANLY")
	assert.Contains(t, all, "TRNSF")
}

func TestSearch_MatchesCodeAndDescription(t *testing.T) {
	byCode := Search("anly")
	assert.Contains(t, byCode, "ANLY")

	byDesc := Search("escalate")
	assert.Contains(t, byDesc, "ESCL")

	assert.Empty(t, Search("zzzz"))
}

func sortedAsc(items []string) bool {
	for i := 1; i < len(items); i++ {
		if items[i-1] > items[i] {
			return false
		}
	}
	return true
}
