package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSkillsPreservesEmptyTokens(t *testing.T) {
	got := SplitSkills("React, TypeScript,")
	assert.Equal(t, []string{"React", "TypeScript", ""}, got)
}

func TestSplitSkillsTrimsTokens(t *testing.T) {
	got := SplitSkills("  Go ,  Postgres,Docker  ")
	assert.Equal(t, []string{"Go", "Postgres", "Docker"}, got)
}

func TestSplitSkillsEmptyInput(t *testing.T) {
	got := SplitSkills("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSkillsRoundTrip(t *testing.T) {
	// the trailing empty token must survive a split/join cycle so the
	// text input can end in a comma while the user is typing
	stored := SplitSkills("React, TypeScript,")
	assert.Equal(t, "React, TypeScript, ", JoinSkills(stored))
	assert.Equal(t, stored, SplitSkills(JoinSkills(stored)))
}

func TestRenderSkillsFiltersBlanks(t *testing.T) {
	got := RenderSkills([]string{"React", "", "TypeScript", "  "})
	assert.Equal(t, []string{"React", "TypeScript"}, got)
}
