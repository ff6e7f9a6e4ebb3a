package llm

import (
	"context"
	"fmt"
)

const tailorSystemInstruction = `You are an experienced CV reviewer helping a candidate apply for a specific job.
Give concrete, actionable advice for adapting the CV to the posting.
Structure your answer in exactly four sections:
1. Skills alignment - which of the candidate's skills match the posting and should be emphasized.
2. Experience highlighting - which experiences to move forward or expand.
3. Sections to modify - concrete CV sections to rewrite, reorder or cut.
4. Keywords - terms from the posting the CV should contain.`

// TailorRequest carries everything the tailoring stage needs for one job.
type TailorRequest struct {
	CVText         string
	JobTitle       string
	JobDescription string
}

// Tailorer asks the completion service for free-form tailoring advice.
type Tailorer struct {
	client Client
}

// NewTailorer creates a tailoring stage on top of a client.
func NewTailorer(client Client) *Tailorer {
	return &Tailorer{client: client}
}

// Tailor returns the model's advice verbatim; no further parsing is applied.
func (t *Tailorer) Tailor(ctx context.Context, req TailorRequest) (string, error) {
	user := fmt.Sprintf("Job title: %s\n\nJob description:\n%s\n\nCandidate CV:\n%s",
		req.JobTitle, req.JobDescription, req.CVText)

	return t.client.Generate(ctx, tailorSystemInstruction, user)
}
