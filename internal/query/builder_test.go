package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSkills_AllTermsUnprefixedInInputOrder(t *testing.T) {
	got := FromSkills([]string{"go", "kubernetes", "postgresql"})

	assert.Equal(t, "go kubernetes postgresql", got)
}

func TestFromSkills_Idempotent(t *testing.T) {
	skills := []string{"terraform", "aws", "ci/cd"}

	first := FromSkills(skills)
	second := FromSkills(skills)

	assert.Equal(t, first, second)
}

func TestFromSkills_Empty(t *testing.T) {
	assert.Equal(t, "", FromSkills(nil))
}
