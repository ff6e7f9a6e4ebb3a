package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/cv-jobmatch/internal/jobs"
	"github.com/jonathan/cv-jobmatch/internal/llm"
	"github.com/jonathan/cv-jobmatch/internal/search"
)

type stubSkills struct {
	skills  []string
	err     error
	calls   int
	gotText string
}

func (s *stubSkills) Extract(_ context.Context, cvText string) ([]string, error) {
	s.calls++
	s.gotText = cvText
	return s.skills, s.err
}

type stubTailorer struct {
	result string
	err    error
	calls  int
	gotReq llm.TailorRequest
}

func (s *stubTailorer) Tailor(_ context.Context, req llm.TailorRequest) (string, error) {
	s.calls++
	s.gotReq = req
	return s.result, s.err
}

type stubSearcher struct {
	result    *search.Result
	err       error
	calls     int
	gotParams search.Params
}

func (s *stubSearcher) Search(_ context.Context, params search.Params) (*search.Result, error) {
	s.calls++
	s.gotParams = params
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubLookup struct {
	job   *jobs.SavedJob
	err   error
	calls int
	gotID string
}

func (s *stubLookup) Get(_ context.Context, id string) (*jobs.SavedJob, error) {
	s.calls++
	s.gotID = id
	return s.job, s.err
}

// testPipeline builds a pipeline with stub collaborators and a text
// extractor that records whether it ran.
type testPipeline struct {
	*Pipeline
	skills    *stubSkills
	tailorer  *stubTailorer
	searcher  *stubSearcher
	lookup    *stubLookup
	extracted *bool
}

func newTestPipeline(t *testing.T, text string, extractErr error) *testPipeline {
	t.Helper()

	tp := &testPipeline{
		skills:    &stubSkills{skills: []string{"go", "docker"}},
		tailorer:  &stubTailorer{result: "advice"},
		searcher:  &stubSearcher{result: &search.Result{Total: 0}},
		lookup:    &stubLookup{job: &jobs.SavedJob{ID: "j1", Headline: "Backend Engineer", Description: "Go services"}},
		extracted: new(bool),
	}
	tp.Pipeline = New(zap.NewNop(), tp.skills, tp.tailorer, tp.searcher, tp.lookup)
	tp.Pipeline.extractText = func([]byte) (string, error) {
		*tp.extracted = true
		if extractErr != nil {
			return "", extractErr
		}
		return text, nil
	}
	return tp
}

func requireKind(t *testing.T, err error, kind Kind, status int) *Error {
	t.Helper()
	var pipelineErr *Error
	require.ErrorAs(t, err, &pipelineErr)
	require.Equal(t, kind, pipelineErr.Kind)
	require.Equal(t, status, pipelineErr.HTTPStatus())
	return pipelineErr
}
