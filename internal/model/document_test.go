package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDocumentHasNonNilLists(t *testing.T) {
	doc := DefaultDocument()
	assert.NotNil(t, doc.Experience)
	assert.NotNil(t, doc.Internships)
	assert.NotNil(t, doc.Projects)
	assert.NotNil(t, doc.Education)
	assert.NotNil(t, doc.Skills)
	assert.NotNil(t, doc.CustomSections)
}

func TestCloneIsIndependent(t *testing.T) {
	doc := DefaultDocument()
	doc.Experience = []Experience{{ID: "e1", Company: "Acme", BulletPoints: []string{"shipped"}}}
	doc.Skills = []string{"Go"}

	clone := doc.Clone()
	clone.Experience[0].Company = "Other"
	clone.Experience[0].BulletPoints[0] = "changed"
	clone.Skills[0] = "Rust"

	assert.Equal(t, "Acme", doc.Experience[0].Company)
	assert.Equal(t, "shipped", doc.Experience[0].BulletPoints[0])
	assert.Equal(t, "Go", doc.Skills[0])
}

func TestNormalizeAssignsMissingIDsOnly(t *testing.T) {
	doc := Document{
		Experience: []Experience{
			{ID: "exp1", Company: "A"},
			{Company: "B"},
			{ID: "exp3", Company: "C"},
		},
	}

	out := Normalize(doc)
	require.Len(t, out.Experience, 3)
	assert.Equal(t, "exp1", out.Experience[0].ID)
	assert.NotEmpty(t, out.Experience[1].ID)
	assert.Equal(t, "exp3", out.Experience[2].ID)
}

func TestNormalizeFillsNilLists(t *testing.T) {
	out := Normalize(Document{})
	assert.NotNil(t, out.Experience)
	assert.NotNil(t, out.Internships)
	assert.NotNil(t, out.Projects)
	assert.NotNil(t, out.Education)
	assert.NotNil(t, out.Skills)
	assert.NotNil(t, out.CustomSections)
}

func TestRemovalKeepsOtherIDsStable(t *testing.T) {
	// deleting the middle entry must not renumber the survivors
	list := []Experience{{ID: "exp1"}, {ID: "exp2"}, {ID: "exp3"}}

	kept := make([]Experience, 0, len(list))
	for _, e := range list {
		if e.ID != "exp2" {
			kept = append(kept, e)
		}
	}

	require.Len(t, kept, 2)
	assert.Equal(t, "exp1", kept[0].ID)
	assert.Equal(t, "exp3", kept[1].ID)
}
