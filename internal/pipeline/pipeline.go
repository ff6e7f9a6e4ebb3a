package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/cv-jobmatch/internal/extract"
	"github.com/jonathan/cv-jobmatch/internal/jobs"
	"github.com/jonathan/cv-jobmatch/internal/llm"
	"github.com/jonathan/cv-jobmatch/internal/search"
)

const (
	pdfContentType = "application/pdf"

	// Flow A forwards at most this many hits to the caller.
	maxMatchResults = 25

	// Completion calls carry an explicit deadline instead of inheriting
	// an unbounded transport default.
	llmCallTimeout = 60 * time.Second
)

// SkillExtractor is the skill-extraction collaborator.
type SkillExtractor interface {
	Extract(ctx context.Context, cvText string) ([]string, error)
}

// Tailorer is the CV-tailoring collaborator.
type Tailorer interface {
	Tailor(ctx context.Context, req llm.TailorRequest) (string, error)
}

// Searcher is the job-index collaborator.
type Searcher interface {
	Search(ctx context.Context, params search.Params) (*search.Result, error)
}

// JobLookup resolves a saved job id to its stored posting.
type JobLookup interface {
	Get(ctx context.Context, id string) (*jobs.SavedJob, error)
}

// Pipeline sequences the two request flows. Each invocation is a linear
// sequence with no shared mutable state between concurrent requests.
type Pipeline struct {
	logger      *zap.Logger
	extractText func([]byte) (string, error)
	skills      SkillExtractor
	tailorer    Tailorer
	searcher    Searcher
	jobs        JobLookup
}

// New wires the pipeline from its collaborators.
func New(logger *zap.Logger, skills SkillExtractor, tailorer Tailorer, searcher Searcher, lookup JobLookup) *Pipeline {
	return &Pipeline{
		logger:      logger,
		extractText: extract.Text,
		skills:      skills,
		tailorer:    tailorer,
		searcher:    searcher,
		jobs:        lookup,
	}
}
