package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTailorer_ReturnsAdviceVerbatim(t *testing.T) {
	client := &fakeClient{response: "## Skills alignment\nLead with Go."}
	tailorer := NewTailorer(client)

	result, err := tailorer.Tailor(context.Background(), TailorRequest{
		CVText:         "cv body",
		JobTitle:       "Backend Engineer",
		JobDescription: "We need Go developers.",
	})

	require.NoError(t, err)
	assert.Equal(t, "## Skills alignment\nLead with Go.", result)
}

func TestTailorer_EmbedsJobAndCVInUserMessage(t *testing.T) {
	client := &fakeClient{response: "advice"}
	tailorer := NewTailorer(client)

	_, err := tailorer.Tailor(context.Background(), TailorRequest{
		CVText:         "the cv body",
		JobTitle:       "Backend Engineer",
		JobDescription: "We need Go developers.",
	})

	require.NoError(t, err)
	assert.Contains(t, client.user, "Backend Engineer")
	assert.Contains(t, client.user, "We need Go developers.")
	assert.Contains(t, client.user, "the cv body")
}

func TestTailorer_SystemInstructionRequestsFourSections(t *testing.T) {
	client := &fakeClient{response: "advice"}
	tailorer := NewTailorer(client)

	_, err := tailorer.Tailor(context.Background(), TailorRequest{})

	require.NoError(t, err)
	assert.Contains(t, client.system, "Skills alignment")
	assert.Contains(t, client.system, "Experience highlighting")
	assert.Contains(t, client.system, "Sections to modify")
	assert.Contains(t, client.system, "Keywords")
}

func TestTailorer_PropagatesUpstreamError(t *testing.T) {
	client := &fakeClient{err: &UpstreamError{Err: errors.New("timeout")}}
	tailorer := NewTailorer(client)

	result, err := tailorer.Tailor(context.Background(), TailorRequest{})

	assert.Empty(t, result)
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
}
