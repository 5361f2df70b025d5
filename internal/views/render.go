package views

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"

	"resumeinsight/resume-analyzer/internal/models"
)

const (
	// FilenamePlaceholder is shown under the file input before a file is
	// chosen and restored when the form resets.
	FilenamePlaceholder = "No file chosen"

	// ParseFailureMessage explains a 2xx reply whose body was not valid
	// JSON. Oversized resumes can truncate the model's reply.
	ParseFailureMessage = "The analysis response could not be read. This can happen with very large resumes, where the reply gets cut off before it is complete. Please try again with a shorter resume."

	// ErrorBoxTitle and ErrorBoxHint frame every rendered error message.
	ErrorBoxTitle = "Analysis Failed"
	ErrorBoxHint  = "Please try again with a different file or a shorter job description."

	jobSearchBaseURL  = "https://www.linkedin.com/jobs/search/"
	jobSearchLocation = "Worldwide"
)

type errorBox struct {
	Title   string
	Message string
	Hint    string
}

type jobSuggestion struct {
	Role string
	URL  string
}

type generalView struct {
	ATSScore    *int
	Strengths   []string
	Feedback    []string
	Suggestions []jobSuggestion
}

type resultsPage struct {
	Error   *errorBox
	Match   *models.MatchAnalysis
	General *generalView
}

type indexPage struct {
	FilenamePlaceholder string
}

// RenderIndex produces the upload page.
func RenderIndex() (string, error) {
	return render(indexPageTmpl, indexPage{FilenamePlaceholder: FilenamePlaceholder})
}

// RenderAnalysis produces the results page for either analysis shape,
// branching on the presence of a match score.
func RenderAnalysis(analysis *models.Analysis) (string, error) {
	if analysis.Kind() == models.KindMatch {
		return render(resultsPageTmpl, resultsPage{Match: analysis.Match()})
	}

	general := analysis.General()
	view := &generalView{
		ATSScore:  general.ATSScore,
		Strengths: general.Strengths,
		Feedback:  general.Feedback,
	}
	for _, role := range general.JobSuggestions {
		view.Suggestions = append(view.Suggestions, jobSuggestion{
			Role: role,
			URL:  BuildJobSearchLink(role),
		})
	}

	return render(resultsPageTmpl, resultsPage{General: view})
}

// RenderError produces the results page with an error box.
func RenderError(message string) (string, error) {
	return render(resultsPageTmpl, resultsPage{
		Error: &errorBox{
			Title:   ErrorBoxTitle,
			Message: message,
			Hint:    ErrorBoxHint,
		},
	})
}

// BuildJobSearchLink builds an external job-search URL for a suggested role.
// The role is query-encoded; the location parameter is fixed.
func BuildJobSearchLink(role string) string {
	return fmt.Sprintf("%s?keywords=%s&location=%s",
		jobSearchBaseURL, url.QueryEscape(role), url.QueryEscape(jobSearchLocation))
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}
