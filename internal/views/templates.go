package views

import "html/template"

var indexPageTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Resume Analyzer</title>
    <style>
      :root {
        --bg: #f4f6fb;
        --panel: #ffffff;
        --text: #1f2937;
        --muted: #6b7280;
        --accent: #4f46e5;
        --border: #e5e7eb;
        --bad: #dc2626;
      }
      * { box-sizing: border-box; }
      body {
        margin: 0;
        font-family: system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif;
        color: var(--text);
        background: var(--bg);
      }
      .container { max-width: 720px; margin: 48px auto; padding: 0 16px; }
      .panel {
        background: var(--panel);
        border: 1px solid var(--border);
        border-radius: 12px;
        padding: 28px;
        box-shadow: 0 4px 16px rgba(0, 0, 0, 0.06);
      }
      h1 { margin-top: 0; }
      .hint { color: var(--muted); font-size: 0.9rem; }
      label { display: block; margin: 18px 0 6px; font-weight: 600; }
      input[type="file"] { width: 100%; }
      .filename { color: var(--muted); font-size: 0.9rem; margin-top: 6px; }
      textarea {
        width: 100%;
        min-height: 140px;
        border: 1px solid var(--border);
        border-radius: 8px;
        padding: 10px;
        font: inherit;
      }
      button {
        margin-top: 22px;
        background: var(--accent);
        color: #fff;
        border: 0;
        border-radius: 8px;
        padding: 12px 22px;
        font-size: 1rem;
        cursor: pointer;
      }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="panel">
        <h1>Resume Analyzer</h1>
        <p class="hint">Upload your resume as a PDF. Add a job description to get a match analysis instead of a general review.</p>
        <form action="/analyze" method="post" enctype="multipart/form-data">
          <label for="resume">Resume (PDF)</label>
          <input type="file" id="resume" name="resume" accept=".pdf" required />
          <p class="filename">{{.FilenamePlaceholder}}</p>
          <label for="job_description">Job Description (optional)</label>
          <textarea id="job_description" name="job_description" placeholder="Paste the job description here..."></textarea>
          <button type="submit">Analyze Resume</button>
        </form>
      </div>
    </div>
  </body>
</html>
`))

var resultsPageTmpl = template.Must(template.New("results").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Analysis Results — Resume Analyzer</title>
    <style>
      :root {
        --bg: #f4f6fb;
        --panel: #ffffff;
        --text: #1f2937;
        --muted: #6b7280;
        --accent: #4f46e5;
        --border: #e5e7eb;
        --good: #059669;
        --bad: #dc2626;
      }
      * { box-sizing: border-box; }
      body {
        margin: 0;
        font-family: system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif;
        color: var(--text);
        background: var(--bg);
      }
      .container { max-width: 720px; margin: 48px auto; padding: 0 16px; }
      .panel {
        background: var(--panel);
        border: 1px solid var(--border);
        border-radius: 12px;
        padding: 28px;
        box-shadow: 0 4px 16px rgba(0, 0, 0, 0.06);
        margin-bottom: 20px;
      }
      h1, h2 { margin-top: 0; }
      .score { font-size: 2.4rem; font-weight: 700; color: var(--accent); }
      .score-label { color: var(--muted); font-size: 0.9rem; }
      ul { padding-left: 20px; }
      li { margin: 6px 0; }
      .error-box {
        border: 1px solid var(--bad);
        border-radius: 12px;
        background: #fef2f2;
        padding: 22px 28px;
      }
      .error-box h2 { color: var(--bad); }
      .error-hint { color: var(--muted); font-size: 0.9rem; }
      .again {
        display: inline-block;
        margin-top: 8px;
        background: var(--accent);
        color: #fff;
        border-radius: 8px;
        padding: 12px 22px;
        text-decoration: none;
      }
      a.job-link { color: var(--accent); }
    </style>
  </head>
  <body>
    <div class="container">
      <div id="results">
        {{if .Error}}
        <div class="error-box">
          <h2>{{.Error.Title}}</h2>
          <p>{{.Error.Message}}</p>
          <p class="error-hint">{{.Error.Hint}}</p>
        </div>
        {{end}}
        {{if .Match}}
        <div class="panel">
          <h1>Job Match Analysis</h1>
          <div class="score">{{.Match.MatchScore}}/100</div>
          <div class="score-label">Match Score</div>
          <h2>Summary</h2>
          <p>{{.Match.Summary}}</p>
          <h2>Missing Keywords</h2>
          <ul>
            {{range .Match.MissingKeywords}}<li>{{.}}</li>{{end}}
          </ul>
          <h2>Tailoring Suggestions</h2>
          <ul>
            {{range .Match.TailoringSuggestions}}<li>{{.}}</li>{{end}}
          </ul>
        </div>
        {{end}}
        {{if .General}}
        <div class="panel">
          <h1>Resume Analysis</h1>
          <div class="score">{{if .General.ATSScore}}{{.General.ATSScore}}/100{{else}}N/A{{end}}</div>
          <div class="score-label">ATS Score</div>
          <h2>Strengths</h2>
          <ul>
            {{range .General.Strengths}}<li>{{.}}</li>{{end}}
          </ul>
          <h2>Feedback</h2>
          <ul>
            {{range .General.Feedback}}<li>{{.}}</li>{{end}}
          </ul>
          <h2>Suggested Roles</h2>
          <ul>
            {{range .General.Suggestions}}<li><a class="job-link" href="{{.URL}}" target="_blank" rel="noopener">{{.Role}}</a></li>{{end}}
          </ul>
        </div>
        {{end}}
      </div>
      <a class="again" href="/">Analyze Another Resume</a>
    </div>
  </body>
</html>
`))
