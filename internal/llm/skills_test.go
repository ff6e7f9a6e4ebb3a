package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	response string
	err      error
	system   string
	user     string
	calls    int
}

func (f *fakeClient) Generate(_ context.Context, system, user string) (string, error) {
	f.calls++
	f.system = system
	f.user = user
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) Close() error { return nil }

func TestSkillExtractor_SplitsAndTrims(t *testing.T) {
	client := &fakeClient{response: "Go, Kubernetes ,PostgreSQL,  Terraform"}
	extractor := NewSkillExtractor(client)

	skills, err := extractor.Extract(context.Background(), "cv text")

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Kubernetes", "PostgreSQL", "Terraform"}, skills)
}

func TestSkillExtractor_DropsEmptyTerms(t *testing.T) {
	client := &fakeClient{response: "Go,, ,Docker"}
	extractor := NewSkillExtractor(client)

	skills, err := extractor.Extract(context.Background(), "cv text")

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Docker"}, skills)
}

func TestSkillExtractor_SendsCVTextWithFixedInstruction(t *testing.T) {
	client := &fakeClient{response: "Go"}
	extractor := NewSkillExtractor(client)

	_, err := extractor.Extract(context.Background(), "the cv text")

	require.NoError(t, err)
	assert.Equal(t, "the cv text", client.user)
	assert.Contains(t, client.system, "comma-separated list only")
	assert.Contains(t, client.system, "255 characters")
}

func TestSkillExtractor_PropagatesUpstreamError(t *testing.T) {
	upstream := &UpstreamError{Err: errors.New("service unavailable")}
	client := &fakeClient{err: upstream}
	extractor := NewSkillExtractor(client)

	skills, err := extractor.Extract(context.Background(), "cv text")

	assert.Nil(t, skills)
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
}

func TestTruncateSkills_UnderBudgetUnchanged(t *testing.T) {
	skills := []string{"Go", "Kubernetes", "PostgreSQL"}

	assert.Equal(t, skills, TruncateSkills(skills))
}

func TestTruncateSkills_DropsTrailingTermsFirst(t *testing.T) {
	var skills []string
	for i := 0; i < 50; i++ {
		skills = append(skills, "terraform")
	}

	kept := TruncateSkills(skills)

	joined := strings.Join(kept, ", ")
	assert.LessOrEqual(t, len(joined), MaxSkillListLength)
	assert.NotEmpty(t, kept)
	// Strict prefix-by-terms of the input.
	assert.Less(t, len(kept), len(skills))
	assert.Equal(t, skills[:len(kept)], kept)
}

func TestTruncateSkills_ExactBudgetKept(t *testing.T) {
	// Two 126-char terms plus ", " join to exactly 254 characters.
	long := strings.Repeat("x", 126)
	skills := []string{long, long}

	kept := TruncateSkills(skills)

	assert.Len(t, kept, 2)
	assert.Equal(t, 254, len(strings.Join(kept, ", ")))
}

func TestTruncateSkills_OversizedLeadingTermIsCutNotDropped(t *testing.T) {
	long := strings.Repeat("x", 300)

	kept := TruncateSkills([]string{long, "go"})

	require.Len(t, kept, 1)
	assert.Equal(t, strings.Repeat("x", MaxSkillListLength), kept[0])
}

func TestTruncateSkills_Empty(t *testing.T) {
	assert.Empty(t, TruncateSkills(nil))
}
