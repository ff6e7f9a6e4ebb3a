package llm

import (
	"context"
	"strings"
)

// MaxSkillListLength is the hard budget for the comma+space joined skill
// list. When the model overruns it, trailing (lowest-priority) terms are
// dropped first.
const MaxSkillListLength = 255

const skillSystemInstruction = `You extract professional skills from CV text for job searching.
Respond with a comma-separated list only, no other text.
Use canonical skill names (e.g. "PostgreSQL", not "postgres databases").
Order terms by relevance and frequency, most important first.
List hard technical skills first, then job titles, then niche competencies.
Exclude soft skills and generic office tools.
Do not invent skills that are not present in the text.
The full list must not exceed 255 characters; drop the least important trailing terms to fit.`

// SkillExtractor asks the completion service for a ranked skill list.
type SkillExtractor struct {
	client Client
}

// NewSkillExtractor creates a skill extraction stage on top of a client.
func NewSkillExtractor(client Client) *SkillExtractor {
	return &SkillExtractor{client: client}
}

// Extract sends the CV text and parses the returned comma-separated list.
// The result is re-truncated to the 255-character budget in case the model
// ignored it.
func (e *SkillExtractor) Extract(ctx context.Context, cvText string) ([]string, error) {
	raw, err := e.client.Generate(ctx, skillSystemInstruction, cvText)
	if err != nil {
		return nil, err
	}

	var skills []string
	for _, part := range strings.Split(raw, ",") {
		if term := strings.TrimSpace(part); term != "" {
			skills = append(skills, term)
		}
	}

	return TruncateSkills(skills), nil
}

// TruncateSkills drops trailing terms until the comma+space joined list fits
// within MaxSkillListLength. Leading terms are never dropped; a single
// leading term that alone overruns the budget is cut to fit instead.
func TruncateSkills(skills []string) []string {
	var kept []string
	total := 0
	for i, skill := range skills {
		n := len(skill)
		if i > 0 {
			n += len(", ")
		}
		if total+n > MaxSkillListLength {
			break
		}
		total += n
		kept = append(kept, skill)
	}
	if kept == nil && len(skills) > 0 {
		return []string{skills[0][:MaxSkillListLength]}
	}
	return kept
}
