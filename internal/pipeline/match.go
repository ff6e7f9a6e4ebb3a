package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/cv-jobmatch/internal/query"
	"github.com/jonathan/cv-jobmatch/internal/search"
)

// MatchInput is the raw Flow A request: an uploaded CV document.
type MatchInput struct {
	Document    []byte
	ContentType string
}

// MatchResult is the Flow A outcome: the extracted skills and the matching
// postings from the index.
type MatchResult struct {
	Skills []string
	Jobs   []search.JobListing
	Total  int
}

// Match runs CV → skills → query → job matches. The first failing stage
// short-circuits the flow; nothing is retried here.
func (p *Pipeline) Match(ctx context.Context, in MatchInput) (*MatchResult, error) {
	if len(in.Document) == 0 {
		return nil, &Error{Kind: KindValidation, Message: "cv document is required"}
	}
	if in.ContentType != "" && in.ContentType != pdfContentType {
		return nil, &Error{
			Kind:    KindValidation,
			Message: fmt.Sprintf("unsupported content type %q, expected %s", in.ContentType, pdfContentType),
		}
	}

	text, err := p.extractText(in.Document)
	if err != nil {
		return nil, classify(err)
	}

	llmCtx, cancel := context.WithTimeout(ctx, llmCallTimeout)
	defer cancel()
	skills, err := p.skills.Extract(llmCtx, text)
	if err != nil {
		return nil, classify(err)
	}

	result, err := p.searcher.Search(ctx, search.Params{
		Query:  query.FromSkills(skills),
		Offset: 0,
		Limit:  maxMatchResults,
		Mode:   search.ModeOr,
	})
	if err != nil {
		return nil, classify(err)
	}

	p.logger.Info("match pipeline completed",
		zap.Int("skills", len(skills)),
		zap.Int("hits", len(result.Hits)),
		zap.Int("total", result.Total))

	return &MatchResult{Skills: skills, Jobs: result.Hits, Total: result.Total}, nil
}
