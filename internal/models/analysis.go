package models

type AnalysisKind string

const (
	KindMatch   AnalysisKind = "match"
	KindGeneral AnalysisKind = "general"
)

// MatchAnalysis is the response shape returned when a job description was
// submitted alongside the resume.
type MatchAnalysis struct {
	MatchScore           int      `json:"match_score"`
	Summary              string   `json:"summary"`
	MissingKeywords      []string `json:"missing_keywords"`
	TailoringSuggestions []string `json:"tailoring_suggestions"`
}

// GeneralAnalysis is the response shape for a resume-only analysis.
type GeneralAnalysis struct {
	ATSScore       *int     `json:"ats_score,omitempty"`
	Strengths      []string `json:"strengths"`
	Feedback       []string `json:"feedback"`
	JobSuggestions []string `json:"job_suggestions"`
}

// Analysis is the union of both response shapes. The analysis endpoint
// returns one or the other; the presence of match_score picks the branch.
type Analysis struct {
	MatchScore           *int     `json:"match_score"`
	Summary              string   `json:"summary"`
	MissingKeywords      []string `json:"missing_keywords"`
	TailoringSuggestions []string `json:"tailoring_suggestions"`
	ATSScore             *int     `json:"ats_score"`
	Strengths            []string `json:"strengths"`
	Feedback             []string `json:"feedback"`
	JobSuggestions       []string `json:"job_suggestions"`
}

func (a *Analysis) Kind() AnalysisKind {
	if a.MatchScore != nil {
		return KindMatch
	}
	return KindGeneral
}

func (a *Analysis) Match() *MatchAnalysis {
	score := 0
	if a.MatchScore != nil {
		score = *a.MatchScore
	}
	return &MatchAnalysis{
		MatchScore:           score,
		Summary:              a.Summary,
		MissingKeywords:      a.MissingKeywords,
		TailoringSuggestions: a.TailoringSuggestions,
	}
}

func (a *Analysis) General() *GeneralAnalysis {
	return &GeneralAnalysis{
		ATSScore:       a.ATSScore,
		Strengths:      a.Strengths,
		Feedback:       a.Feedback,
		JobSuggestions: a.JobSuggestions,
	}
}
