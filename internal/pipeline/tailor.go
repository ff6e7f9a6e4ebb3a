package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/cv-jobmatch/internal/llm"
)

// TailorInput is the raw Flow B request: an uploaded CV document plus the
// id of a saved job posting.
type TailorInput struct {
	Document []byte
	JobID    string
}

// TailorResult is the Flow B outcome.
type TailorResult struct {
	Result   string
	JobTitle string
}

// Tailor runs CV + job id → job lookup → tailoring advice. The lookup runs
// before document extraction so an unknown job id fails fast.
func (p *Pipeline) Tailor(ctx context.Context, in TailorInput) (*TailorResult, error) {
	if in.JobID == "" {
		return nil, &Error{Kind: KindValidation, Message: "jobId is required"}
	}
	if len(in.Document) == 0 {
		return nil, &Error{Kind: KindValidation, Message: "cv document is required"}
	}

	job, err := p.jobs.Get(ctx, in.JobID)
	if err != nil {
		return nil, classify(err)
	}

	text, err := p.extractText(in.Document)
	if err != nil {
		return nil, classify(err)
	}

	llmCtx, cancel := context.WithTimeout(ctx, llmCallTimeout)
	defer cancel()
	advice, err := p.tailorer.Tailor(llmCtx, llm.TailorRequest{
		CVText:         text,
		JobTitle:       job.Headline,
		JobDescription: job.Description,
	})
	if err != nil {
		return nil, classify(err)
	}

	p.logger.Info("tailor pipeline completed", zap.String("job_id", in.JobID))

	return &TailorResult{Result: advice, JobTitle: job.Headline}, nil
}
