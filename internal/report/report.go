package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/fatih/color"

	tt "github.com/gnolang/formal/internal/types"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	passStyle    = color.New(color.FgGreen, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	noteStyle    = color.New(color.FgWhite)
)

const findingTemplate = `{{header .}}
{{location .}}
{{- range $i, $msg := .Failures}}
{{failure $i $msg}}
{{- end}}
{{- if .Note}}
{{note .Note}}
{{- end}}

`

var tmpl = template.Must(template.New("finding").Funcs(template.FuncMap{
	"header":   header,
	"location": location,
	"failure":  failure,
	"note":     note,
}).Parse(findingTemplate))

type findingData struct {
	tt.Finding
	Note string
}

// Text writes one block per finding that did not pass, followed by a
// summary line. Passing rules are listed only when verbose is set.
func Text(w io.Writer, findings []tt.Finding, verbose bool) error {
	var buf bytes.Buffer
	for _, f := range findings {
		if f.Verdict == "pass" && !verbose {
			continue
		}
		if err := tmpl.Execute(&buf, findingData{Finding: f, Note: noteFor(f)}); err != nil {
			return fmt.Errorf("error formatting finding %s: %w", f.Rule, err)
		}
	}
	buf.WriteString(Summarize(findings).String())
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	return err
}

func header(d findingData) string {
	var s string
	switch {
	case d.Verdict == "pass":
		s = passStyle.Sprint("pass: ")
	case d.Verdict == "vacuous" || d.Severity == tt.SeverityWarning:
		s = warningStyle.Sprint("warning: ")
	default:
		s = errorStyle.Sprint("error: ")
	}
	return s + ruleStyle.Sprint(d.Rule)
}

func location(d findingData) string {
	s := lineStyle.Sprint(" --> ")
	if d.Failed() {
		return s + fmt.Sprintf("%s at iteration %d of %d (session %s)", d.Verdict, d.Iteration, d.Iterations, d.Session)
	}
	return s + fmt.Sprintf("%s after %d iterations, %d pruned, %d assertions", d.Verdict, d.Iterations, d.Pruned, d.Assertions)
}

func failure(i int, msg string) string {
	return lineStyle.Sprintf("%3d | ", i+1) + messageStyle.Sprint(msg)
}

func note(s string) string {
	return lineStyle.Sprint("    = ") + noteStyle.Sprint(s)
}

func noteFor(f tt.Finding) string {
	if f.Verdict == "vacuous" {
		return "every generated context was excluded by the precondition"
	}
	return ""
}

// JSON writes the findings grouped by verdict.
func JSON(w io.Writer, findings []tt.Finding) error {
	byVerdict := make(map[string][]tt.Finding)
	for _, f := range findings {
		byVerdict[f.Verdict] = append(byVerdict[f.Verdict], f)
	}
	d, err := json.Marshal(byVerdict)
	if err != nil {
		return fmt.Errorf("error marshalling findings to JSON: %w", err)
	}
	_, err = w.Write(append(d, '\n'))
	return err
}

// Summary counts findings by verdict.
type Summary struct {
	Passed  int
	Failed  int
	Vacuous int
	// Errors counts failed findings with error severity.
	Errors int
}

func Summarize(findings []tt.Finding) Summary {
	var s Summary
	for _, f := range findings {
		switch f.Verdict {
		case "pass":
			s.Passed++
		case "fail":
			s.Failed++
			if f.Severity == tt.SeverityError {
				s.Errors++
			}
		case "vacuous":
			s.Vacuous++
		}
	}
	return s
}

func (s Summary) String() string {
	parts := []string{passStyle.Sprintf("%d passed", s.Passed)}
	if s.Failed > 0 {
		parts = append(parts, errorStyle.Sprintf("%d failed", s.Failed))
	} else {
		parts = append(parts, fmt.Sprintf("%d failed", s.Failed))
	}
	if s.Vacuous > 0 {
		parts = append(parts, warningStyle.Sprintf("%d vacuous", s.Vacuous))
	}
	return strings.Join(parts, ", ")
}
