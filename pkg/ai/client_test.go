package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
)

func TestNewClientWithoutKey(t *testing.T) {
	_, err := NewClient(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `["a","b"]`, cleanJSONBlock("```json\n[\"a\",\"b\"]\n```"))
	assert.Equal(t, `["a"]`, cleanJSONBlock("```\n[\"a\"]\n```"))
	assert.Equal(t, "plain", cleanJSONBlock("  plain  "))
}

func TestStripProse(t *testing.T) {
	assert.Equal(t, "A polished summary.", stripProse("\"A polished summary.\"\n"))
	assert.Equal(t, "Summary text", stripProse("```\nSummary text\n```"))
}

func TestParseBullets(t *testing.T) {
	got := parseBullets(`["Led the migration", "Cut costs by 30%"]`)
	assert.Equal(t, []string{"Led the migration", "Cut costs by 30%"}, got)
}

func TestParseBulletsWithWrapper(t *testing.T) {
	got := parseBullets("Here you go:\n```json\n[\"One\", \"Two\"]\n```")
	assert.Equal(t, []string{"One", "Two"}, got)
}

func TestParseBulletsNonArray(t *testing.T) {
	// unusable provider output degrades to an empty list, never an error
	assert.Empty(t, parseBullets(`{"bullets": "nope"}`))
	assert.Empty(t, parseBullets("I cannot help with that."))
	assert.NotNil(t, parseBullets("garbage"))
}

func TestParseBulletsCapsOverlongLists(t *testing.T) {
	got := parseBullets(`["1","2","3","4","5","6","7","8","9","10","11","12"]`)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, got)
}

func TestParseBulletsCapCountsNonBlankOnly(t *testing.T) {
	got := parseBullets(`["", "1", " ", "2", "3", "4", "5", "6"]`)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, got)
}

func TestParseBulletsDropsBlankEntries(t *testing.T) {
	got := parseBullets(`["Kept", "  ", ""]`)
	assert.Equal(t, []string{"Kept"}, got)
}

func TestSummaryPromptIncludesContext(t *testing.T) {
	doc := model.DefaultDocument()
	doc.PersonalInfo.Name = "Jane Doe"
	doc.Skills = []string{"Go", ""}
	doc.Experience = []model.Experience{
		{ID: "e1", Company: "Acme", Role: "Engineer", Date: "2020", BulletPoints: []string{"Shipped it"}},
		{ID: "e2"},
	}

	prompt := summaryPrompt(doc, "Senior Go engineer role")
	assert.Contains(t, prompt, "Jane Doe")
	assert.Contains(t, prompt, "Engineer at Acme")
	assert.Contains(t, prompt, "Shipped it")
	assert.Contains(t, prompt, "Senior Go engineer role")
	assert.Contains(t, prompt, "Skills: Go\n")
}

func TestBulletsPromptAsksForJSONArray(t *testing.T) {
	entry := model.Experience{Company: "Acme", Role: "Engineer", BulletPoints: []string{"old bullet"}}
	prompt := bulletsPrompt(entry, "")

	require.Contains(t, prompt, "Acme")
	assert.Contains(t, prompt, "old bullet")
	assert.Contains(t, prompt, "JSON array")
}
